package reader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapRespectsWidth(t *testing.T) {
	paragraphs := []string{
		"the quick brown fox jumps over the lazy dog",
		"short",
	}

	lines := Wrap(paragraphs, 12)

	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 12, "line %q exceeds wrap width", line)
	}
	assert.Contains(t, lines, "", "paragraphs are separated by a blank line")
	assert.Equal(t, "short", lines[len(lines)-1])
}

func TestWrapKeepsWords(t *testing.T) {
	lines := Wrap([]string{"alpha beta gamma delta"}, 11)

	joined := strings.Join(lines, " ")
	assert.Equal(t, "alpha beta gamma delta", joined)
}

func TestWrapEmptyParagraph(t *testing.T) {
	lines := Wrap([]string{""}, 40)
	assert.Equal(t, []string{""}, lines)
}

func TestScaledWidth(t *testing.T) {
	assert.Equal(t, 80, ScaledWidth(80, 1.0))
	assert.Equal(t, 40, ScaledWidth(80, 2.0))
	assert.Equal(t, 80, ScaledWidth(80, 0.5), "scale below 1 never widens past the base")
	assert.Equal(t, 20, ScaledWidth(24, 2.0), "narrow terminals keep a readable floor")
}

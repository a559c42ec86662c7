package importer

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBook(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestImportFileSplitsOnHeadings(t *testing.T) {
	path := writeBook(t, "voyage.txt", `# Setting Sail

The harbor was quiet that morning.

We left before dawn.

# Open Water

Nothing but waves in every direction.
`)

	book, chapters, err := ImportFile(path)
	require.NoError(t, err)

	assert.Equal(t, "voyage", book.Title)
	assert.NotEmpty(t, book.ID)

	require.Len(t, chapters, 2)
	assert.Equal(t, "Setting Sail", chapters[0].Title)
	assert.Equal(t, 0, chapters[0].Index)
	assert.Len(t, chapters[0].Paragraphs, 2)
	assert.Equal(t, "Open Water", chapters[1].Title)
	assert.Equal(t, 1, chapters[1].Index)
}

func TestImportFileChapterNumberHeadings(t *testing.T) {
	path := writeBook(t, "novel.txt", `Chapter 1

It begins.

CHAPTER II

It continues.
`)

	_, chapters, err := ImportFile(path)
	require.NoError(t, err)

	require.Len(t, chapters, 2)
	assert.Equal(t, "Chapter 1", chapters[0].Title)
	assert.Equal(t, "CHAPTER II", chapters[1].Title)
}

func TestImportFileJoinsWrappedLines(t *testing.T) {
	path := writeBook(t, "wrapped.txt", `# One

This sentence was
hard-wrapped in the
source file.
`)

	_, chapters, err := ImportFile(path)
	require.NoError(t, err)

	require.Len(t, chapters, 1)
	require.Len(t, chapters[0].Paragraphs, 1)
	assert.Equal(t, "This sentence was hard-wrapped in the source file.", chapters[0].Paragraphs[0])
}

func TestImportFileWithoutHeadings(t *testing.T) {
	path := writeBook(t, "plain.txt", `Just some text.

And more text.
`)

	book, chapters, err := ImportFile(path)
	require.NoError(t, err)

	require.Len(t, chapters, 1)
	assert.Equal(t, book.Title, chapters[0].Title)
	assert.Len(t, chapters[0].Paragraphs, 2)
}

func TestImportFileEmpty(t *testing.T) {
	path := writeBook(t, "empty.txt", "\n\n")

	_, _, err := ImportFile(path)
	assert.Error(t, err)
}

func TestImportFileMissing(t *testing.T) {
	_, _, err := ImportFile(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Error(t, err)
}

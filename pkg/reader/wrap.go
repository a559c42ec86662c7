package reader

import "strings"

// ScaledWidth maps a font scale onto a wrap width: a larger scale means
// fewer characters per line, which reads as bigger text in a terminal.
func ScaledWidth(base int, scale float64) int {
	if scale <= 0 {
		scale = 1
	}
	width := int(float64(base) / scale)
	if width < 20 {
		width = 20
	}
	if width > base {
		width = base
	}
	return width
}

// Wrap word-wraps paragraphs to the given width, separating paragraphs
// with a blank line.
func Wrap(paragraphs []string, width int) []string {
	if width < 1 {
		width = 1
	}

	var lines []string
	for i, paragraph := range paragraphs {
		if i > 0 {
			lines = append(lines, "")
		}

		words := strings.Fields(paragraph)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}

		var current strings.Builder
		for _, word := range words {
			switch {
			case current.Len() == 0:
				current.WriteString(word)
			case current.Len()+1+len(word) <= width:
				current.WriteString(" ")
				current.WriteString(word)
			default:
				lines = append(lines, current.String())
				current.Reset()
				current.WriteString(word)
			}
		}
		if current.Len() > 0 {
			lines = append(lines, current.String())
		}
	}
	return lines
}

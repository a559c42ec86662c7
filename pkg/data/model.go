package data

import "strings"

type Book struct {
	ID     string
	Title  string
	Author string
}

type Chapter struct {
	BookID     string
	Index      int
	Title      string
	Paragraphs []string
}

// Body joins the chapter paragraphs with blank lines, the form the
// chapter body is stored in.
func (c *Chapter) Body() string {
	return strings.Join(c.Paragraphs, "\n\n")
}

// SplitBody turns a stored chapter body back into paragraphs.
func SplitBody(body string) []string {
	if body == "" {
		return nil
	}
	parts := strings.Split(body, "\n\n")
	paragraphs := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			paragraphs = append(paragraphs, p)
		}
	}
	return paragraphs
}

package integrations

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-shiori/go-epub"

	"github.com/kjaer/folio/pkg/data"
)

type EPubBuilder struct {
	outputDir string
}

func NewEPubBuilder(outputDir string) *EPubBuilder {
	return &EPubBuilder{outputDir: outputDir}
}

// CreateEPub compiles a book's chapters into a single EPub file and
// returns the written path.
func (p *EPubBuilder) CreateEPub(book *data.Book, chapters []*data.Chapter) (string, error) {
	if len(chapters) == 0 {
		return "", fmt.Errorf("no chapters to compile")
	}

	if err := os.MkdirAll(p.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	e, err := epub.NewEpub(book.Title)
	if err != nil {
		return "", fmt.Errorf("failed to create EPub: %w", err)
	}

	if book.Author != "" {
		e.SetAuthor(book.Author)
	}
	e.SetLang("en")

	for _, chapter := range chapters {
		if err := addChapterToEPub(e, chapter); err != nil {
			return "", fmt.Errorf("failed to add chapter %d: %w", chapter.Index, err)
		}
	}

	safeTitle := sanitizeFilename(book.Title)
	outputPath := filepath.Join(p.outputDir, safeTitle+".epub")

	if err := e.Write(outputPath); err != nil {
		return "", fmt.Errorf("failed to write EPub: %w", err)
	}

	return outputPath, nil
}

// addChapterToEPub renders a chapter's paragraphs as an XHTML section.
func addChapterToEPub(e *epub.Epub, chapter *data.Chapter) error {
	title := chapter.Title
	if title == "" {
		title = fmt.Sprintf("Chapter %d", chapter.Index+1)
	}

	var htmlContent strings.Builder
	htmlContent.WriteString(fmt.Sprintf("<h1>%s</h1>\n", html.EscapeString(title)))
	for _, paragraph := range chapter.Paragraphs {
		htmlContent.WriteString(fmt.Sprintf("<p>%s</p>\n", html.EscapeString(paragraph)))
	}

	_, err := e.AddSection(htmlContent.String(), title, "", "")
	if err != nil {
		return fmt.Errorf("failed to add section: %w", err)
	}
	return nil
}

// sanitizeFilename removes characters that are invalid in filenames
func sanitizeFilename(name string) string {
	invalid := []string{"/", "\\", ":", "*", "?", "\"", "<", ">", "|"}
	result := name
	for _, char := range invalid {
		result = strings.ReplaceAll(result, char, "_")
	}
	result = strings.TrimSpace(result)
	result = strings.Trim(result, ".")
	if result == "" {
		result = "book"
	}
	return result
}

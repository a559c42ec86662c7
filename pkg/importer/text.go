package importer

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/kjaer/folio/pkg/data"
)

// chapterHeading matches lines that open a new chapter in plain-text
// books: markdown headings and the conventional "Chapter N" line.
var chapterHeading = regexp.MustCompile(`^(#{1,2}\s+.+|(?i:chapter)\s+[0-9IVXLC]+.*)$`)

// ImportFile reads a plain-text or markdown file and splits it into a
// book with chapters. Text before the first heading becomes a chapter
// titled after the file.
func ImportFile(path string) (*data.Book, []*data.Chapter, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	book := &data.Book{
		ID:    uuid.NewString(),
		Title: title,
	}

	var chapters []*data.Chapter
	var current *data.Chapter
	var paragraph []string

	flushParagraph := func() {
		if len(paragraph) == 0 {
			return
		}
		if current == nil {
			current = &data.Chapter{BookID: book.ID, Index: 0, Title: title}
		}
		current.Paragraphs = append(current.Paragraphs, strings.Join(paragraph, " "))
		paragraph = nil
	}
	flushChapter := func() {
		flushParagraph()
		if current != nil && len(current.Paragraphs) > 0 {
			chapters = append(chapters, current)
		}
		current = nil
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), " \t")

		if chapterHeading.MatchString(line) {
			flushChapter()
			current = &data.Chapter{
				BookID: book.ID,
				Index:  len(chapters),
				Title:  headingTitle(line),
			}
			continue
		}

		if strings.TrimSpace(line) == "" {
			flushParagraph()
			continue
		}

		paragraph = append(paragraph, strings.TrimSpace(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", path, err)
	}
	flushChapter()

	if len(chapters) == 0 {
		return nil, nil, fmt.Errorf("%s contains no readable text", path)
	}

	return book, chapters, nil
}

func headingTitle(line string) string {
	return strings.TrimSpace(strings.TrimLeft(line, "# "))
}

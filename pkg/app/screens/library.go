package screens

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kjaer/folio/pkg/app/components"
	"github.com/kjaer/folio/pkg/app/styles"
	"github.com/kjaer/folio/pkg/config"
	"github.com/kjaer/folio/pkg/data"
	"github.com/kjaer/folio/pkg/integrations"
	"github.com/kjaer/folio/pkg/reader"
)

type LibraryScreen struct {
	repo     *data.Repository
	cfg      *config.Config
	bookList *components.BookList
	status   string
	width    int
	height   int
	err      error
}

func NewLibraryScreen(repo *data.Repository, cfg *config.Config) *LibraryScreen {
	return &LibraryScreen{
		repo:     repo,
		cfg:      cfg,
		bookList: components.NewBookList(),
	}
}

func (s *LibraryScreen) Init() tea.Cmd {
	return s.loadLibrary
}

func (s *LibraryScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.bookList.Width = msg.Width - 4
		s.bookList.Height = msg.Height - 8

	case tea.KeyMsg:
		s.status = ""
		switch msg.String() {
		case "up", "k":
			s.bookList.Prev()
		case "down", "j":
			s.bookList.Next()
		case "r":
			return s, s.loadLibrary
		case "d":
			if selected := s.bookList.Selected(); selected != nil {
				return s, s.deleteBook(selected.Book.ID)
			}
		case "e":
			if selected := s.bookList.Selected(); selected != nil {
				return s, s.exportBook(selected.Book.ID)
			}
		case "enter":
			if selected := s.bookList.Selected(); selected != nil {
				bookID := selected.Book.ID
				return s, func() tea.Msg {
					return SwitchScreenMsg{Screen: "reader", Data: bookID}
				}
			}
		}

	case libraryLoadedMsg:
		s.bookList.SetItems(msg.items)
		s.err = msg.err

	case bookExportedMsg:
		if msg.err != nil {
			s.err = msg.err
		} else {
			s.status = fmt.Sprintf("Exported to %s", msg.path)
		}

	case bookDeletedMsg:
		s.err = msg.err
		return s, s.loadLibrary
	}

	return s, nil
}

func (s *LibraryScreen) View() string {
	if s.width == 0 {
		return "Loading..."
	}

	header := styles.TitleStyle.Render("Library")

	var errorMsg string
	if s.err != nil {
		errorMsg = styles.ErrorStyle.Render(fmt.Sprintf("Error: %s", s.err)) + "\n\n"
	}

	var statusMsg string
	if s.status != "" {
		statusMsg = styles.StatusStyle.Render(s.status) + "\n"
	}

	listView := s.bookList.View()

	help := styles.HelpStyle.Render(
		"↑/k ↓/j: navigate • enter: read • e: export EPUB • d: delete • r: refresh • q: quit",
	)

	return fmt.Sprintf("%s\n\n%s%s%s\n%s", header, errorMsg, statusMsg, listView, help)
}

// Messages
type libraryLoadedMsg struct {
	items []components.BookListItem
	err   error
}

type bookExportedMsg struct {
	path string
	err  error
}

type bookDeletedMsg struct {
	err error
}

// Commands
func (s *LibraryScreen) loadLibrary() tea.Msg {
	books, err := s.repo.ListBooks()
	if err != nil {
		return libraryLoadedMsg{err: err}
	}

	items := make([]components.BookListItem, len(books))
	for i, book := range books {
		count, _ := s.repo.ChapterCount(book.ID)
		items[i] = components.BookListItem{
			Book:         book,
			ChapterCount: count,
			Percent:      bookPercent(s.repo, book.ID, count),
		}
	}

	return libraryLoadedMsg{items: items}
}

// bookPercent approximates how far through a book the reader is from the
// persisted chapter index alone.
func bookPercent(repo *data.Repository, bookID string, chapterCount int) int {
	if chapterCount == 0 {
		return 0
	}
	raw, ok := repo.Setting(bookID, reader.KeyChapterIndex)
	if !ok {
		return 0
	}
	idx, err := strconv.Atoi(raw)
	if err != nil || idx < 0 {
		return 0
	}
	return idx * 100 / chapterCount
}

func (s *LibraryScreen) exportBook(bookID string) tea.Cmd {
	return func() tea.Msg {
		book, err := s.repo.GetBook(bookID)
		if err != nil || book == nil {
			return bookExportedMsg{err: fmt.Errorf("load book: %w", err)}
		}
		chapters, err := s.repo.GetChapters(bookID)
		if err != nil {
			return bookExportedMsg{err: err}
		}

		builder := integrations.NewEPubBuilder(s.cfg.Library.ExportDir)
		path, err := builder.CreateEPub(book, chapters)
		return bookExportedMsg{path: path, err: err}
	}
}

func (s *LibraryScreen) deleteBook(bookID string) tea.Cmd {
	return func() tea.Msg {
		return bookDeletedMsg{err: s.repo.DeleteBook(bookID)}
	}
}

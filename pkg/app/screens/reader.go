package screens

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kjaer/folio/pkg/app/components"
	"github.com/kjaer/folio/pkg/app/styles"
	"github.com/kjaer/folio/pkg/data"
	"github.com/kjaer/folio/pkg/reader"
)

// ReaderScreen renders one book and owns its reading session.
type ReaderScreen struct {
	repo         *data.Repository
	bookID       string
	defaultTheme string

	book    *data.Book
	session *reader.Session
	lines   []string

	status string

	showChapters  bool
	chapterCursor int

	showBookmarks  bool
	bookmarkCursor int

	width  int
	height int
	err    error
}

func NewReaderScreen(repo *data.Repository, bookID, defaultTheme string) *ReaderScreen {
	return &ReaderScreen{
		repo:         repo,
		bookID:       bookID,
		defaultTheme: defaultTheme,
		width:        80,
		height:       24,
	}
}

// Messages
type bookLoadedMsg struct {
	book     *data.Book
	chapters []*data.Chapter
	err      error
}

// chapterRenderedMsg arrives one update cycle after a chapter render,
// when the new layout is known. Deferred scroll restores hook onto it.
type chapterRenderedMsg struct{}

func (s *ReaderScreen) Init() tea.Cmd {
	return s.loadBook
}

func (s *ReaderScreen) SetSize(width, height int) {
	if width > 0 {
		s.width = width
	}
	if height > 0 {
		s.height = height
	}
}

func (s *ReaderScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.SetSize(msg.Width, msg.Height)
		if s.session != nil {
			s.renderChapter()
		}

	case tea.KeyMsg:
		s.status = ""
		return s.handleKey(msg)

	case bookLoadedMsg:
		if msg.err != nil {
			s.err = msg.err
			return s, nil
		}
		s.book = msg.book
		settings := data.NewBookSettings(s.repo, s.bookID)
		if _, ok := settings.Get(reader.KeyTheme); !ok {
			// First open of this book: start from the configured theme.
			if s.defaultTheme == reader.ThemeLight || s.defaultTheme == reader.ThemeDark {
				_ = settings.Set(reader.KeyTheme, s.defaultTheme)
			}
		}
		s.session = reader.NewSession(msg.chapters, settings)
		// Re-apply the persisted theme before anything is drawn.
		styles.SetCurrentTheme(s.session.Theme())
		s.renderChapter()
		return s, emitChapterRendered

	case chapterRenderedMsg:
		if s.session != nil && s.session.ApplyPendingOffset() {
			s.status = fmt.Sprintf("Position restored at %d%%", s.session.Progress())
		}
	}

	return s, nil
}

func (s *ReaderScreen) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if s.session == nil {
		if msg.String() == "q" || msg.String() == "esc" {
			return s, backToLibrary
		}
		return s, nil
	}
	if s.showChapters {
		return s.handleChapterKey(msg)
	}
	if s.showBookmarks {
		return s.handleBookmarkKey(msg)
	}

	switch msg.String() {
	case "q", "esc":
		return s, backToLibrary
	case "j", "down":
		s.session.Scroll(1)
	case "k", "up":
		s.session.Scroll(-1)
	case "ctrl+d", "pgdown", " ":
		s.session.Scroll(s.visibleLines())
	case "ctrl+u", "pgup":
		s.session.Scroll(-s.visibleLines())
	case "g", "home":
		s.session.SetOffset(0)
	case "G", "end":
		s.session.Scroll(len(s.lines))
	case "n", "l", "right":
		return s.goToChapter(s.session.Current() + 1)
	case "p", "h", "left":
		return s.goToChapter(s.session.Current() - 1)
	case "c":
		s.showChapters = true
		s.chapterCursor = s.session.Current()
	case "+", "=":
		s.session.IncreaseFont()
		s.renderChapter()
	case "-", "_":
		s.session.DecreaseFont()
		s.renderChapter()
	case "t":
		theme := s.session.ToggleTheme()
		styles.SetCurrentTheme(theme)
		s.status = fmt.Sprintf("Theme: %s", theme)
	case "m":
		_, status := s.session.SaveBookmark(time.Now())
		s.status = status
	case "b":
		s.showBookmarks = true
		s.bookmarkCursor = 0
	}
	return s, nil
}

// goToChapter switches chapters and schedules the post-render pass.
func (s *ReaderScreen) goToChapter(index int) (tea.Model, tea.Cmd) {
	if !s.session.GoToChapter(index) {
		return s, nil
	}
	s.renderChapter()
	return s, emitChapterRendered
}

func (s *ReaderScreen) handleChapterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	chapters := s.session.Chapters()

	switch msg.String() {
	case "esc", "c", "q":
		s.showChapters = false
	case "j", "down":
		if s.chapterCursor < len(chapters)-1 {
			s.chapterCursor++
		}
	case "k", "up":
		if s.chapterCursor > 0 {
			s.chapterCursor--
		}
	case "enter":
		s.showChapters = false
		return s.goToChapter(s.chapterCursor)
	}
	return s, nil
}

func (s *ReaderScreen) handleBookmarkKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	bookmarks := s.session.BookmarksNewestFirst()

	switch msg.String() {
	case "esc", "b", "q":
		s.showBookmarks = false
	case "j", "down":
		if s.bookmarkCursor < len(bookmarks)-1 {
			s.bookmarkCursor++
		}
	case "k", "up":
		if s.bookmarkCursor > 0 {
			s.bookmarkCursor--
		}
	case "enter":
		if s.bookmarkCursor < len(bookmarks) {
			s.showBookmarks = false
			status, ok := s.session.RestoreBookmark(bookmarks[s.bookmarkCursor].ID)
			s.status = status
			if !ok {
				return s, nil
			}
			// The chapter switch re-renders with the scroll at the
			// top; the saved offset lands on the rendered message.
			s.renderChapter()
			return s, emitChapterRendered
		}
	}
	return s, nil
}

// renderChapter wraps the current chapter for the present width and font
// scale and reports the layout back to the session.
func (s *ReaderScreen) renderChapter() {
	ch := s.session.CurrentChapter()
	if ch == nil {
		s.lines = nil
		s.session.SetViewport(0, s.visibleLines())
		return
	}
	width := reader.ScaledWidth(s.width-4, s.session.FontScale())
	s.lines = reader.Wrap(ch.Paragraphs, width)
	s.session.SetViewport(len(s.lines), s.visibleLines())
}

func (s *ReaderScreen) visibleLines() int {
	lines := s.height - 5 // header, status, footer
	if lines < 1 {
		lines = 1
	}
	return lines
}

func (s *ReaderScreen) View() string {
	if s.err != nil {
		return styles.ErrorStyle.Render("Error: " + s.err.Error())
	}
	if s.session == nil {
		return styles.MutedStyle.Render("Loading...")
	}
	if s.showChapters {
		return s.renderChapterList()
	}
	if s.showBookmarks {
		return s.renderBookmarkList()
	}

	var b strings.Builder
	b.WriteString(s.renderHeader() + "\n\n")

	offset := s.session.Offset()
	visible := s.visibleLines()
	for i := offset; i < offset+visible && i < len(s.lines); i++ {
		b.WriteString(styles.TextStyle.Render(s.lines[i]) + "\n")
	}

	b.WriteString("\n")
	if s.status != "" {
		b.WriteString(styles.StatusStyle.Render(s.status) + "\n")
	}
	b.WriteString(s.renderFooter())
	return b.String()
}

func (s *ReaderScreen) renderHeader() string {
	chapters := s.session.Chapters()
	ch := s.session.CurrentChapter()

	title := ""
	if s.book != nil {
		title = s.book.Title
	}
	left := styles.HeaderStyle.Render(" " + title + " ")
	if ch != nil {
		left += styles.MutedStyle.Render(fmt.Sprintf(" %d/%d %s",
			s.session.Current()+1, len(chapters), ch.Title))
	}

	right := components.ProgressLabel(s.session.Progress(), 12)

	gap := s.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}

func (s *ReaderScreen) renderFooter() string {
	help := []string{
		styles.HelpKeyStyle.Render("j/k") + styles.HelpStyle.Render(" scroll"),
		styles.HelpKeyStyle.Render("h/l") + styles.HelpStyle.Render(" chapter"),
		styles.HelpKeyStyle.Render("c") + styles.HelpStyle.Render(" contents"),
		styles.HelpKeyStyle.Render("m/b") + styles.HelpStyle.Render(" marks"),
		styles.HelpKeyStyle.Render("+/-") + styles.HelpStyle.Render(fmt.Sprintf(" %.0f%%", s.session.FontScale()*100)),
		styles.HelpKeyStyle.Render("t") + styles.HelpStyle.Render(" "+s.session.Theme()),
		styles.HelpKeyStyle.Render("q") + styles.HelpStyle.Render(" back"),
	}
	return strings.Join(help, "  ")
}

func (s *ReaderScreen) renderChapterList() string {
	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render("Contents") + "\n\n")

	for i, ch := range s.session.Chapters() {
		line := fmt.Sprintf("%d. %s", i+1, ch.Title)
		switch {
		case i == s.chapterCursor:
			b.WriteString(styles.ListItemActive.Render("▸ "+line) + "\n")
		case i == s.session.Current():
			b.WriteString(styles.SelectedStyle.Render("  "+line+" (current)") + "\n")
		default:
			b.WriteString(styles.ListItem.Render("  "+line) + "\n")
		}
	}

	b.WriteString("\n" + styles.HelpStyle.Render("j/k navigate • enter select • esc close"))
	dialog := styles.DialogStyle.Width(min(60, s.width-4)).Render(b.String())
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, dialog)
}

func (s *ReaderScreen) renderBookmarkList() string {
	var b strings.Builder
	b.WriteString(styles.DialogTitle.Render("Bookmarks") + "\n\n")

	bookmarks := s.session.BookmarksNewestFirst()
	if len(bookmarks) == 0 {
		b.WriteString(styles.MutedStyle.Render("No bookmarks yet. Press m while reading to add one."))
	} else {
		for i, bm := range bookmarks {
			line := fmt.Sprintf("%s [%d%%] • %s", bm.ChapterTitle, bm.Percent, bm.CreatedAt)
			if i == s.bookmarkCursor {
				b.WriteString(styles.ListItemActive.Render("▸ "+line) + "\n")
			} else {
				b.WriteString(styles.ListItem.Render("  "+line) + "\n")
			}
		}
	}

	b.WriteString("\n" + styles.HelpStyle.Render("j/k navigate • enter jump • esc close"))
	dialog := styles.DialogStyle.Width(min(60, s.width-4)).Render(b.String())
	return lipgloss.Place(s.width, s.height, lipgloss.Center, lipgloss.Center, dialog)
}

// Commands
func (s *ReaderScreen) loadBook() tea.Msg {
	book, err := s.repo.GetBook(s.bookID)
	if err != nil {
		return bookLoadedMsg{err: err}
	}
	if book == nil {
		return bookLoadedMsg{err: fmt.Errorf("book %s not found", s.bookID)}
	}
	chapters, err := s.repo.GetChapters(s.bookID)
	if err != nil {
		return bookLoadedMsg{err: err}
	}
	return bookLoadedMsg{book: book, chapters: chapters}
}

func emitChapterRendered() tea.Msg {
	return chapterRenderedMsg{}
}

func backToLibrary() tea.Msg {
	return SwitchScreenMsg{Screen: "library", Data: nil}
}

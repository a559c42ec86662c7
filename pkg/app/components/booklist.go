package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kjaer/folio/pkg/app/styles"
	"github.com/kjaer/folio/pkg/data"
)

type BookListItem struct {
	Book         *data.Book
	ChapterCount int
	Percent      int // overall reading progress snapshot
}

type BookList struct {
	Items         []BookListItem
	SelectedIndex int
	Width         int
	Height        int
}

func NewBookList() *BookList {
	return &BookList{
		Items:  []BookListItem{},
		Width:  80,
		Height: 20,
	}
}

func (l *BookList) SetItems(items []BookListItem) {
	l.Items = items
	if l.SelectedIndex >= len(items) && len(items) > 0 {
		l.SelectedIndex = len(items) - 1
	}
	if len(items) == 0 {
		l.SelectedIndex = 0
	}
}

func (l *BookList) Next() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex++
	if l.SelectedIndex >= len(l.Items) {
		l.SelectedIndex = 0
	}
}

func (l *BookList) Prev() {
	if len(l.Items) == 0 {
		return
	}
	l.SelectedIndex--
	if l.SelectedIndex < 0 {
		l.SelectedIndex = len(l.Items) - 1
	}
}

func (l *BookList) Selected() *BookListItem {
	if len(l.Items) == 0 || l.SelectedIndex >= len(l.Items) {
		return nil
	}
	return &l.Items[l.SelectedIndex]
}

func (l *BookList) View() string {
	if len(l.Items) == 0 {
		emptyMsg := styles.MutedStyle.Render("No books in library. Use 'folio add <file>' to import one.")
		return lipgloss.Place(l.Width, l.Height, lipgloss.Center, lipgloss.Center, emptyMsg)
	}

	var b strings.Builder

	for i, item := range l.Items {
		cardStyle := styles.CardStyle
		if i == l.SelectedIndex {
			cardStyle = styles.ActiveCardStyle
		}

		title := styles.TitleStyle.Render(item.Book.Title)

		author := item.Book.Author
		if author == "" {
			author = "Unknown author"
		}
		authorLine := styles.SubtitleStyle.Render(author)

		chapterInfo := styles.MutedStyle.Render(
			fmt.Sprintf("%d chapters", item.ChapterCount),
		)
		progress := ProgressLabel(item.Percent, 20)

		cardContent := lipgloss.JoinVertical(
			lipgloss.Left,
			title,
			authorLine,
			"",
			chapterInfo,
			progress,
		)

		card := cardStyle.Width(l.Width - 4).Render(cardContent)
		b.WriteString(card)
		b.WriteString("\n")
	}

	return b.String()
}

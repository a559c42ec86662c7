package components

import (
	"strings"
	"testing"

	"github.com/kjaer/folio/pkg/data"
)

func sampleItems() []BookListItem {
	return []BookListItem{
		{Book: &data.Book{ID: "a", Title: "Alpha"}, ChapterCount: 3, Percent: 10},
		{Book: &data.Book{ID: "b", Title: "Beta", Author: "Someone"}, ChapterCount: 5, Percent: 50},
		{Book: &data.Book{ID: "c", Title: "Gamma"}, ChapterCount: 1, Percent: 100},
	}
}

func TestBookListNavigationWraps(t *testing.T) {
	list := NewBookList()
	list.SetItems(sampleItems())

	list.Prev()
	if list.SelectedIndex != 2 {
		t.Errorf("Expected wrap to last item, got %d", list.SelectedIndex)
	}

	list.Next()
	if list.SelectedIndex != 0 {
		t.Errorf("Expected wrap to first item, got %d", list.SelectedIndex)
	}
}

func TestBookListSelected(t *testing.T) {
	list := NewBookList()
	list.SetItems(sampleItems())
	list.Next()

	selected := list.Selected()
	if selected == nil {
		t.Fatal("Expected a selection")
	}
	if selected.Book.ID != "b" {
		t.Errorf("Expected book 'b', got %q", selected.Book.ID)
	}
}

func TestBookListSelectedEmpty(t *testing.T) {
	list := NewBookList()

	if list.Selected() != nil {
		t.Error("Expected nil selection for empty list")
	}

	list.Next()
	list.Prev()
	if list.SelectedIndex != 0 {
		t.Error("Navigation on empty list should be a no-op")
	}
}

func TestBookListSetItemsClampsSelection(t *testing.T) {
	list := NewBookList()
	list.SetItems(sampleItems())
	list.SelectedIndex = 2

	list.SetItems(sampleItems()[:1])
	if list.SelectedIndex != 0 {
		t.Errorf("Expected selection clamped to 0, got %d", list.SelectedIndex)
	}
}

func TestBookListViewShowsTitles(t *testing.T) {
	list := NewBookList()
	list.SetItems(sampleItems())

	view := list.View()
	for _, title := range []string{"Alpha", "Beta", "Gamma"} {
		if !strings.Contains(view, title) {
			t.Errorf("Expected view to contain %q", title)
		}
	}
}

func TestBookListViewEmpty(t *testing.T) {
	list := NewBookList()

	view := list.View()
	if !strings.Contains(view, "No books") {
		t.Error("Expected empty-library message")
	}
}

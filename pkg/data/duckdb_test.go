package data

import (
	"path/filepath"
	"testing"
)

func setupTestDB(t *testing.T) *Repository {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := InitDuckDB(dbPath)
	if err != nil {
		t.Fatalf("Failed to init DB: %v", err)
	}

	repo := NewRepository(db)
	t.Cleanup(func() { repo.Close() })

	return repo
}

func TestSaveAndGetBook(t *testing.T) {
	repo := setupTestDB(t)

	book := &Book{
		ID:     "book-1",
		Title:  "A Test Book",
		Author: "Anonymous",
	}

	if err := repo.SaveBook(book); err != nil {
		t.Fatalf("Failed to save book: %v", err)
	}

	retrieved, err := repo.GetBook("book-1")
	if err != nil {
		t.Fatalf("Failed to get book: %v", err)
	}
	if retrieved == nil {
		t.Fatal("Expected book to be found")
	}
	if retrieved.Title != book.Title {
		t.Errorf("Expected Title %q, got %q", book.Title, retrieved.Title)
	}
	if retrieved.Author != book.Author {
		t.Errorf("Expected Author %q, got %q", book.Author, retrieved.Author)
	}
}

func TestGetNonExistentBook(t *testing.T) {
	repo := setupTestDB(t)

	book, err := repo.GetBook("missing")
	if err != nil {
		t.Fatalf("Expected no error, got: %v", err)
	}
	if book != nil {
		t.Error("Expected nil for non-existent book")
	}
}

func TestSaveBookUpsert(t *testing.T) {
	repo := setupTestDB(t)

	book := &Book{ID: "book-1", Title: "Original", Author: "A"}
	repo.SaveBook(book)

	book.Title = "Updated"
	if err := repo.SaveBook(book); err != nil {
		t.Fatalf("Failed to update book: %v", err)
	}

	retrieved, _ := repo.GetBook("book-1")
	if retrieved.Title != "Updated" {
		t.Errorf("Expected Title 'Updated', got %q", retrieved.Title)
	}
}

func TestListBooksSortedByTitle(t *testing.T) {
	repo := setupTestDB(t)

	repo.SaveBook(&Book{ID: "b", Title: "Banana"})
	repo.SaveBook(&Book{ID: "a", Title: "Apple"})
	repo.SaveBook(&Book{ID: "c", Title: "Cherry"})

	books, err := repo.ListBooks()
	if err != nil {
		t.Fatalf("Failed to list books: %v", err)
	}
	if len(books) != 3 {
		t.Fatalf("Expected 3 books, got %d", len(books))
	}
	if books[0].Title != "Apple" || books[2].Title != "Cherry" {
		t.Errorf("Expected title order, got %q %q %q", books[0].Title, books[1].Title, books[2].Title)
	}
}

func TestChaptersRoundTrip(t *testing.T) {
	repo := setupTestDB(t)
	repo.SaveBook(&Book{ID: "book-1", Title: "Test"})

	chapters := []*Chapter{
		{BookID: "book-1", Index: 0, Title: "One", Paragraphs: []string{"First paragraph.", "Second paragraph."}},
		{BookID: "book-1", Index: 1, Title: "Two", Paragraphs: []string{"Another paragraph."}},
	}
	for _, ch := range chapters {
		if err := repo.SaveChapter(ch); err != nil {
			t.Fatalf("Failed to save chapter: %v", err)
		}
	}

	retrieved, err := repo.GetChapters("book-1")
	if err != nil {
		t.Fatalf("Failed to get chapters: %v", err)
	}
	if len(retrieved) != 2 {
		t.Fatalf("Expected 2 chapters, got %d", len(retrieved))
	}
	if retrieved[0].Title != "One" || retrieved[1].Title != "Two" {
		t.Errorf("Expected index order, got %q then %q", retrieved[0].Title, retrieved[1].Title)
	}
	if len(retrieved[0].Paragraphs) != 2 {
		t.Errorf("Expected 2 paragraphs, got %d", len(retrieved[0].Paragraphs))
	}
	if retrieved[0].Paragraphs[1] != "Second paragraph." {
		t.Errorf("Paragraph did not round-trip: %q", retrieved[0].Paragraphs[1])
	}
}

func TestChapterCount(t *testing.T) {
	repo := setupTestDB(t)
	repo.SaveBook(&Book{ID: "book-1", Title: "Test"})

	for i := 0; i < 3; i++ {
		repo.SaveChapter(&Chapter{BookID: "book-1", Index: i, Title: "Ch", Paragraphs: []string{"p"}})
	}

	count, err := repo.ChapterCount("book-1")
	if err != nil {
		t.Fatalf("Failed to count chapters: %v", err)
	}
	if count != 3 {
		t.Errorf("Expected 3 chapters, got %d", count)
	}
}

func TestDeleteBookRemovesEverything(t *testing.T) {
	repo := setupTestDB(t)
	repo.SaveBook(&Book{ID: "book-1", Title: "Test"})
	repo.SaveChapter(&Chapter{BookID: "book-1", Index: 0, Title: "Ch", Paragraphs: []string{"p"}})
	repo.SetSetting("book-1", "theme", "light")

	if err := repo.DeleteBook("book-1"); err != nil {
		t.Fatalf("Failed to delete book: %v", err)
	}

	if book, _ := repo.GetBook("book-1"); book != nil {
		t.Error("Expected book to be deleted")
	}
	if chapters, _ := repo.GetChapters("book-1"); len(chapters) != 0 {
		t.Errorf("Expected 0 chapters, got %d", len(chapters))
	}
	if _, ok := repo.Setting("book-1", "theme"); ok {
		t.Error("Expected settings to be deleted")
	}
}

package data

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"

	_ "github.com/marcboeker/go-duckdb/v2"
)

const schema = `
CREATE TABLE IF NOT EXISTS books (
	id VARCHAR PRIMARY KEY,
	title VARCHAR NOT NULL,
	author VARCHAR
);
CREATE TABLE IF NOT EXISTS chapters (
	book_id VARCHAR NOT NULL,
	idx INTEGER NOT NULL,
	title VARCHAR NOT NULL,
	body VARCHAR NOT NULL,
	PRIMARY KEY (book_id, idx)
);
CREATE TABLE IF NOT EXISTS settings (
	book_id VARCHAR NOT NULL,
	key VARCHAR NOT NULL,
	value VARCHAR NOT NULL,
	PRIMARY KEY (book_id, key)
);
`

func InitDuckDB(path string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create database directory: %w", err)
		}
	}

	db, err := sql.Open("duckdb", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return db, nil
}

type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func OpenRepository(path string) *Repository {
	db, err := InitDuckDB(path)
	if err != nil {
		log.Fatal(err)
	}
	return &Repository{db: db}
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) SaveBook(book *Book) error {
	_, err := r.db.Exec(`
		INSERT INTO books (id, title, author) VALUES (?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET title = excluded.title, author = excluded.author
	`, book.ID, book.Title, book.Author)
	return err
}

func (r *Repository) GetBook(id string) (*Book, error) {
	var book Book
	err := r.db.QueryRow(`SELECT id, title, author FROM books WHERE id = ?`, id).
		Scan(&book.ID, &book.Title, &book.Author)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *Repository) ListBooks() ([]*Book, error) {
	rows, err := r.db.Query(`SELECT id, title, author FROM books ORDER BY title`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []*Book
	for rows.Next() {
		var book Book
		if err := rows.Scan(&book.ID, &book.Title, &book.Author); err != nil {
			return nil, err
		}
		books = append(books, &book)
	}
	return books, rows.Err()
}

func (r *Repository) SaveChapter(ch *Chapter) error {
	_, err := r.db.Exec(`
		INSERT INTO chapters (book_id, idx, title, body) VALUES (?, ?, ?, ?)
		ON CONFLICT (book_id, idx) DO UPDATE SET title = excluded.title, body = excluded.body
	`, ch.BookID, ch.Index, ch.Title, ch.Body())
	return err
}

func (r *Repository) GetChapters(bookID string) ([]*Chapter, error) {
	rows, err := r.db.Query(`
		SELECT book_id, idx, title, body FROM chapters WHERE book_id = ? ORDER BY idx
	`, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var chapters []*Chapter
	for rows.Next() {
		var ch Chapter
		var body string
		if err := rows.Scan(&ch.BookID, &ch.Index, &ch.Title, &body); err != nil {
			return nil, err
		}
		ch.Paragraphs = SplitBody(body)
		chapters = append(chapters, &ch)
	}
	return chapters, rows.Err()
}

func (r *Repository) ChapterCount(bookID string) (int, error) {
	var count int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM chapters WHERE book_id = ?`, bookID).Scan(&count)
	return count, err
}

func (r *Repository) DeleteBook(id string) error {
	if _, err := r.db.Exec(`DELETE FROM chapters WHERE book_id = ?`, id); err != nil {
		return err
	}
	if _, err := r.db.Exec(`DELETE FROM settings WHERE book_id = ?`, id); err != nil {
		return err
	}
	_, err := r.db.Exec(`DELETE FROM books WHERE id = ?`, id)
	return err
}

package data

import "database/sql"

// Setting returns the stored value for a per-book key, or false if the
// key has never been written.
func (r *Repository) Setting(bookID, key string) (string, bool) {
	var value string
	err := r.db.QueryRow(`
		SELECT value FROM settings WHERE book_id = ? AND key = ?
	`, bookID, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false
	}
	if err != nil {
		return "", false
	}
	return value, true
}

func (r *Repository) SetSetting(bookID, key, value string) error {
	_, err := r.db.Exec(`
		INSERT INTO settings (book_id, key, value) VALUES (?, ?, ?)
		ON CONFLICT (book_id, key) DO UPDATE SET value = excluded.value
	`, bookID, key, value)
	return err
}

func (r *Repository) ClearSettings(bookID string) error {
	_, err := r.db.Exec(`DELETE FROM settings WHERE book_id = ?`, bookID)
	return err
}

// BookSettings binds a repository to a single book, giving the reader a
// plain key-value view of that book's persisted state.
type BookSettings struct {
	repo   *Repository
	bookID string
}

func NewBookSettings(repo *Repository, bookID string) *BookSettings {
	return &BookSettings{repo: repo, bookID: bookID}
}

func (s *BookSettings) Get(key string) (string, bool) {
	return s.repo.Setting(s.bookID, key)
}

func (s *BookSettings) Set(key, value string) error {
	return s.repo.SetSetting(s.bookID, key, value)
}

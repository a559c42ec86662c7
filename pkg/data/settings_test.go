package data

import "testing"

func TestSettingAbsent(t *testing.T) {
	repo := setupTestDB(t)

	if _, ok := repo.Setting("book-1", "fontSize"); ok {
		t.Error("Expected absent key to report not found")
	}
}

func TestSettingRoundTrip(t *testing.T) {
	repo := setupTestDB(t)

	if err := repo.SetSetting("book-1", "fontSize", "1.3"); err != nil {
		t.Fatalf("Failed to set setting: %v", err)
	}

	value, ok := repo.Setting("book-1", "fontSize")
	if !ok {
		t.Fatal("Expected key to be found")
	}
	if value != "1.3" {
		t.Errorf("Expected '1.3', got %q", value)
	}
}

func TestSettingOverwrite(t *testing.T) {
	repo := setupTestDB(t)

	repo.SetSetting("book-1", "theme", "dark")
	repo.SetSetting("book-1", "theme", "light")

	value, _ := repo.Setting("book-1", "theme")
	if value != "light" {
		t.Errorf("Expected 'light', got %q", value)
	}
}

func TestSettingsScopedPerBook(t *testing.T) {
	repo := setupTestDB(t)

	repo.SetSetting("book-1", "chapterIndex", "2")
	repo.SetSetting("book-2", "chapterIndex", "5")

	v1, _ := repo.Setting("book-1", "chapterIndex")
	v2, _ := repo.Setting("book-2", "chapterIndex")
	if v1 != "2" || v2 != "5" {
		t.Errorf("Expected per-book values, got %q and %q", v1, v2)
	}
}

func TestBookSettingsAdapter(t *testing.T) {
	repo := setupTestDB(t)
	settings := NewBookSettings(repo, "book-1")

	if err := settings.Set("bookmarks", "[]"); err != nil {
		t.Fatalf("Failed to set: %v", err)
	}

	value, ok := settings.Get("bookmarks")
	if !ok || value != "[]" {
		t.Errorf("Expected '[]', got %q (found=%v)", value, ok)
	}

	if _, ok := repo.Setting("book-1", "bookmarks"); !ok {
		t.Error("Adapter should write through to the repository")
	}
}

func TestClearSettings(t *testing.T) {
	repo := setupTestDB(t)

	repo.SetSetting("book-1", "theme", "light")
	repo.SetSetting("book-1", "fontSize", "1.5")

	if err := repo.ClearSettings("book-1"); err != nil {
		t.Fatalf("Failed to clear settings: %v", err)
	}

	if _, ok := repo.Setting("book-1", "theme"); ok {
		t.Error("Expected settings to be cleared")
	}
}

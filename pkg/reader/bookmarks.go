package reader

import (
	"encoding/json"
	"fmt"
	"time"
)

// Bookmark is a saved snapshot of a reading position. Bookmarks are
// append-only: created by the user, never mutated afterwards.
type Bookmark struct {
	ID           int64  `json:"id"`
	ChapterIndex int    `json:"chapterIndex"`
	ChapterTitle string `json:"chapterTitle"`
	ScrollOffset int    `json:"scrollOffset"`
	Percent      int    `json:"percent"`
	CreatedAt    string `json:"createdAt"`
}

const createdAtLayout = "Jan 2, 2006 3:04 PM"

// SaveBookmark snapshots the current chapter, scroll offset and progress,
// appends it to the stored sequence and returns it with a status line.
func (s *Session) SaveBookmark(now time.Time) (Bookmark, string) {
	title := ""
	if ch := s.CurrentChapter(); ch != nil {
		title = ch.Title
	}

	bm := Bookmark{
		ID:           now.UnixMilli(),
		ChapterIndex: s.current,
		ChapterTitle: title,
		ScrollOffset: s.offset,
		Percent:      s.Progress(),
		CreatedAt:    now.Format(createdAtLayout),
	}

	s.bookmarks = append(s.bookmarks, bm)
	s.persistBookmarks()

	return bm, fmt.Sprintf("Bookmark saved at %d%% (%s)", bm.Percent, bm.CreatedAt)
}

// Bookmarks returns the stored sequence in creation order.
func (s *Session) Bookmarks() []Bookmark {
	out := make([]Bookmark, len(s.bookmarks))
	copy(out, s.bookmarks)
	return out
}

// BookmarksNewestFirst returns the display order: a reversed view of the
// stored sequence, which itself stays in creation order.
func (s *Session) BookmarksNewestFirst() []Bookmark {
	out := make([]Bookmark, len(s.bookmarks))
	for i, bm := range s.bookmarks {
		out[len(out)-1-i] = bm
	}
	return out
}

// RestoreBookmark jumps to the bookmark's chapter and schedules the saved
// scroll offset to be applied once the chapter has re-rendered. An
// unknown id leaves all state untouched and only produces a status.
func (s *Session) RestoreBookmark(id int64) (string, bool) {
	for _, bm := range s.bookmarks {
		if bm.ID != id {
			continue
		}
		s.GoToChapter(bm.ChapterIndex)
		s.pendingOffset = bm.ScrollOffset
		s.hasPending = true
		return fmt.Sprintf("Jumped to bookmark from %s", bm.CreatedAt), true
	}
	return "Bookmark not found", false
}

func (s *Session) persistBookmarks() {
	raw, err := json.Marshal(s.bookmarks)
	if err != nil {
		return
	}
	s.persist(KeyBookmarks, string(raw))
}

func decodeBookmarks(store Store) []Bookmark {
	raw, ok := store.Get(KeyBookmarks)
	if !ok || raw == "" {
		return nil
	}
	var bookmarks []Bookmark
	if err := json.Unmarshal([]byte(raw), &bookmarks); err != nil {
		// Malformed persisted data decodes to the default: no bookmarks.
		return nil
	}
	return bookmarks
}

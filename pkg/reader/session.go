package reader

import (
	"fmt"
	"math"
	"strconv"

	"github.com/kjaer/folio/pkg/data"
)

// Store is the durable key-value surface a session persists through.
// pkg/data provides the DuckDB-backed implementation.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Persisted keys.
const (
	KeyChapterIndex = "chapterIndex"
	KeyFontSize     = "fontSize"
	KeyTheme        = "theme"
	KeyBookmarks    = "bookmarks"
)

const (
	DefaultFontScale = 1.1
	MinFontScale     = 0.7
	MaxFontScale     = 2.0
	FontScaleStep    = 0.1
)

const (
	ThemeDark  = "dark"
	ThemeLight = "light"
)

// Session owns all mutable reading state for one book: current chapter,
// scroll position, font scale, theme and bookmarks. Every mutation goes
// through a session method and is mirrored to the store immediately.
type Session struct {
	chapters []*data.Chapter
	store    Store

	current   int
	fontScale float64
	theme     string
	bookmarks []Bookmark

	offset       int // first visible content line
	contentLines int // wrapped line count of the current chapter
	visibleLines int // lines the viewport can show

	pendingOffset int
	hasPending    bool
}

// NewSession restores persisted state from the store, falling back to
// defaults for absent or malformed values.
func NewSession(chapters []*data.Chapter, store Store) *Session {
	s := &Session{
		chapters:  chapters,
		store:     store,
		fontScale: DefaultFontScale,
		theme:     ThemeDark,
	}

	if raw, ok := store.Get(KeyChapterIndex); ok {
		if idx, err := strconv.Atoi(raw); err == nil && idx >= 0 && idx < len(chapters) {
			s.current = idx
		}
	}
	if raw, ok := store.Get(KeyFontSize); ok {
		if scale, err := strconv.ParseFloat(raw, 64); err == nil {
			s.fontScale = clampScale(scale)
		}
	}
	if raw, ok := store.Get(KeyTheme); ok && (raw == ThemeDark || raw == ThemeLight) {
		s.theme = raw
	}
	s.bookmarks = decodeBookmarks(store)

	return s
}

func (s *Session) Chapters() []*data.Chapter { return s.chapters }

func (s *Session) Current() int { return s.current }

func (s *Session) CurrentChapter() *data.Chapter {
	if len(s.chapters) == 0 {
		return nil
	}
	return s.chapters[s.current]
}

func (s *Session) FontScale() float64 { return s.fontScale }

func (s *Session) Theme() string { return s.theme }

func (s *Session) Offset() int { return s.offset }

// SetViewport tells the session how tall the rendered chapter is and how
// many lines fit on screen. Called after every wrap and resize; the
// current offset is clamped to the new extent.
func (s *Session) SetViewport(contentLines, visibleLines int) {
	if contentLines < 0 {
		contentLines = 0
	}
	if visibleLines < 1 {
		visibleLines = 1
	}
	s.contentLines = contentLines
	s.visibleLines = visibleLines
	s.offset = s.clampOffset(s.offset)
}

// Scroll moves the viewport by delta lines, clamped to the content.
func (s *Session) Scroll(delta int) {
	s.offset = s.clampOffset(s.offset + delta)
}

func (s *Session) SetOffset(offset int) {
	s.offset = s.clampOffset(offset)
}

func (s *Session) clampOffset(offset int) int {
	max := s.maxScroll()
	if offset > max {
		offset = max
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

func (s *Session) maxScroll() int {
	max := s.contentLines - s.visibleLines
	if max < 0 {
		return 0
	}
	return max
}

// Progress returns how far through the current chapter the viewport is,
// as a percentage. Content that fits entirely on screen is 100%.
func (s *Session) Progress() int {
	max := s.maxScroll()
	if max <= 0 {
		return 100
	}
	pct := float64(s.offset) / float64(max) * 100
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return int(math.Round(pct))
}

// GoToChapter switches to chapter index, persists it and resets the
// scroll position. Out-of-range indexes are ignored.
func (s *Session) GoToChapter(index int) bool {
	if index < 0 || index >= len(s.chapters) {
		return false
	}
	s.current = index
	s.offset = 0
	s.persist(KeyChapterIndex, strconv.Itoa(index))
	return true
}

func (s *Session) Next() bool { return s.GoToChapter(s.current + 1) }

func (s *Session) Prev() bool { return s.GoToChapter(s.current - 1) }

// IncreaseFont bumps the font scale one step up, bounded.
func (s *Session) IncreaseFont() float64 { return s.adjustFont(FontScaleStep) }

// DecreaseFont bumps the font scale one step down, bounded.
func (s *Session) DecreaseFont() float64 { return s.adjustFont(-FontScaleStep) }

func (s *Session) adjustFont(delta float64) float64 {
	s.fontScale = clampScale(s.fontScale + delta)
	s.persist(KeyFontSize, strconv.FormatFloat(s.fontScale, 'f', 1, 64))
	return s.fontScale
}

func clampScale(scale float64) float64 {
	// Snap to the 0.1 grid so repeated steps don't accumulate float noise.
	scale = math.Round(scale*10) / 10
	if scale < MinFontScale {
		return MinFontScale
	}
	if scale > MaxFontScale {
		return MaxFontScale
	}
	return scale
}

// ToggleTheme flips between dark and light, persists the choice and
// returns the new theme name.
func (s *Session) ToggleTheme() string {
	if s.theme == ThemeDark {
		s.theme = ThemeLight
	} else {
		s.theme = ThemeDark
	}
	s.persist(KeyTheme, s.theme)
	return s.theme
}

// PendingOffset reports the one-shot scroll restore scheduled by a
// bookmark jump, without consuming it.
func (s *Session) PendingOffset() (int, bool) {
	return s.pendingOffset, s.hasPending
}

// ApplyPendingOffset consumes the scheduled restore and moves the
// viewport there. Must run after SetViewport has seen the re-rendered
// chapter, since the chapter switch resets the offset to the top.
func (s *Session) ApplyPendingOffset() bool {
	if !s.hasPending {
		return false
	}
	s.offset = s.clampOffset(s.pendingOffset)
	s.hasPending = false
	return true
}

func (s *Session) persist(key, value string) {
	if s.store != nil {
		_ = s.store.Set(key, value)
	}
}

func (s *Session) String() string {
	return fmt.Sprintf("chapter %d/%d at %d%%", s.current+1, len(s.chapters), s.Progress())
}

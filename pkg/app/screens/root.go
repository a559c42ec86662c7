package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kjaer/folio/pkg/config"
	"github.com/kjaer/folio/pkg/data"
)

type screenType int

const (
	libraryView screenType = iota
	readerView
)

// SwitchScreenMsg asks the root screen to change the active view.
type SwitchScreenMsg struct {
	Screen string
	Data   interface{}
}

type RootScreen struct {
	repo *data.Repository
	cfg  *config.Config

	currentView screenType
	library     *LibraryScreen
	reader      *ReaderScreen

	width  int
	height int
}

func NewRootScreen(repo *data.Repository, cfg *config.Config) *RootScreen {
	return &RootScreen{
		repo:        repo,
		cfg:         cfg,
		currentView: libraryView,
		library:     NewLibraryScreen(repo, cfg),
	}
}

func (r *RootScreen) Init() tea.Cmd {
	return r.library.Init()
}

func (r *RootScreen) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		r.width = msg.Width
		r.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return r, tea.Quit
		case "q":
			// The reader uses q to leave the book; only the library quits.
			if r.currentView == libraryView {
				return r, tea.Quit
			}
		}

	case SwitchScreenMsg:
		switch msg.Screen {
		case "library":
			r.currentView = libraryView
			r.reader = nil
			cmd = r.library.Init()
		case "reader":
			if bookID, ok := msg.Data.(string); ok {
				r.reader = NewReaderScreen(r.repo, bookID, r.cfg.Reader.DefaultTheme)
				r.currentView = readerView
				r.reader.SetSize(r.width, r.height)
				cmd = r.reader.Init()
			}
		}
		return r, cmd
	}

	switch r.currentView {
	case libraryView:
		newModel, newCmd := r.library.Update(msg)
		r.library = newModel.(*LibraryScreen)
		return r, newCmd
	case readerView:
		if r.reader != nil {
			newModel, newCmd := r.reader.Update(msg)
			r.reader = newModel.(*ReaderScreen)
			return r, newCmd
		}
	}

	return r, cmd
}

func (r *RootScreen) View() string {
	switch r.currentView {
	case readerView:
		if r.reader != nil {
			return r.reader.View()
		}
	}
	return r.library.View()
}

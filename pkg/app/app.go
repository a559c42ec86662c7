package app

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kjaer/folio/pkg/app/screens"
	"github.com/kjaer/folio/pkg/config"
	"github.com/kjaer/folio/pkg/data"
)

type App struct {
	repo *data.Repository
	cfg  *config.Config
}

func NewApp(repo *data.Repository, cfg *config.Config) *App {
	return &App{repo: repo, cfg: cfg}
}

func (a *App) Run() error {
	model := screens.NewRootScreen(a.repo, a.cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

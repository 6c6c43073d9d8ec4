package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/joho/godotenv"

	"github.com/MrJamesThe3rd/contas/cmd/tui/internal/view"
	"github.com/MrJamesThe3rd/contas/internal/access"
	accessStore "github.com/MrJamesThe3rd/contas/internal/access/store"
	"github.com/MrJamesThe3rd/contas/internal/config"
	"github.com/MrJamesThe3rd/contas/internal/database"
	"github.com/MrJamesThe3rd/contas/internal/record"
	recordStore "github.com/MrJamesThe3rd/contas/internal/record/store"
)

type model struct {
	accessService *access.Service
	recordService *record.Service

	currentView View

	accessesView view.AccessesModel
	recordsView  view.RecordsModel
}

type View int

const (
	ViewMenu     View = 0
	ViewAccesses View = 1
	ViewRecords  View = 2
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	accessSvc := access.NewService(accessStore.New(db))
	recordSvc := record.NewService(recordStore.New(db))

	return model{
		accessService: accessSvc,
		recordService: recordSvc,
		currentView:   ViewMenu,
		accessesView:  view.NewAccessesModel(accessSvc),
	}
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.currentView == ViewMenu {
			switch msg.String() {
			case "ctrl+c", "q":
				return m, tea.Quit
			case "1":
				m.currentView = ViewAccesses
				m.accessesView = view.NewAccessesModel(m.accessService)

				return m, m.accessesView.Init()
			}
		}
	case view.OpenRecordsMsg:
		m.currentView = ViewRecords
		m.recordsView = view.NewRecordsModel(m.recordService, msg.Access)

		return m, m.recordsView.Init()
	case view.BackMsg:
		// Records fall back to the access picker, everything else to the menu.
		if m.currentView == ViewRecords {
			m.currentView = ViewAccesses
			return m, m.accessesView.Init()
		}

		m.currentView = ViewMenu

		return m, nil
	}

	switch m.currentView {
	case ViewAccesses:
		var newModel tea.Model
		newModel, cmd = m.accessesView.Update(msg)
		m.accessesView = newModel.(view.AccessesModel)
	case ViewRecords:
		var newModel tea.Model
		newModel, cmd = m.recordsView.Update(msg)
		m.recordsView = newModel.(view.RecordsModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Contas TUI\n\n" +
				"1. Browse Accesses\n\n" +
				"q. Quit",
		)
	case ViewAccesses:
		return m.accessesView.View()
	case ViewRecords:
		return m.recordsView.View()
	}

	return "Unknown View"
}

func main() {
	p := tea.NewProgram(initialModel())
	if _, err := p.Run(); err != nil {
		slog.Error("failed to run TUI", "error", err)
		os.Exit(1)
	}
}

package view

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MrJamesThe3rd/contas/internal/access"
)

// View is the interface that all TUI screens implement.
type View interface {
	tea.Model
	Title() string
	ShortHelp() string
}

// CommonModel is embedded by all views.
type CommonModel struct {
	Width  int
	Height int
}

type BackMsg struct{}

func Back() tea.Msg {
	return BackMsg{}
}

// OpenRecordsMsg asks the root model to show the records of one access.
type OpenRecordsMsg struct {
	Access *access.Access
}

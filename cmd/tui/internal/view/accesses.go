package view

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/MrJamesThe3rd/contas/internal/access"
	"github.com/MrJamesThe3rd/contas/internal/cpf"
	"github.com/MrJamesThe3rd/contas/internal/pagination"
)

type accessesState int

const (
	accessesStateBrowse accessesState = iota
	accessesStateLookup
)

type AccessesModel struct {
	CommonModel
	accessService *access.Service

	state    accessesState
	table    table.Model
	accesses []*access.Access
	total    int
	form     *huh.Form

	loading bool
	err     error
	status  string

	// Form bindings
	formCPF string
}

func NewAccessesModel(accessSvc *access.Service) AccessesModel {
	columns := []table.Column{
		{Title: "CPF", Width: 16},
		{Title: "Created", Width: 12},
		{Title: "ID", Width: 38},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(15),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return AccessesModel{
		accessService: accessSvc,
		table:         t,
	}
}

func (m AccessesModel) Title() string { return "Accesses" }
func (m AccessesModel) ShortHelp() string {
	if m.state == accessesStateLookup {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | enter: open records | n: lookup/create by CPF | r: refresh"
}

func (m AccessesModel) Init() tea.Cmd {
	return m.loadAccessesCmd()
}

func (m AccessesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadAccessesMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.accesses = msg.accesses
		m.total = msg.total
		m.refreshTable()

		return m, nil

	case lookupDoneMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
		} else {
			m.status = fmt.Sprintf("Access %s ready", FormatCPF(msg.access.CPF))
		}

		m.state = accessesStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadAccessesCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case accessesStateBrowse:
		return m.updateBrowse(msg)
	case accessesStateLookup:
		return m.updateLookup(msg)
	}

	return m, nil
}

func (m AccessesModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadAccessesCmd()
		case "n":
			return m.enterLookupMode()
		case "enter":
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.accesses) {
				return m, nil
			}

			a := m.accesses[idx]

			return m, func() tea.Msg { return OpenRecordsMsg{Access: a} }
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m AccessesModel) enterLookupMode() (tea.Model, tea.Cmd) {
	m.formCPF = ""

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("cpf").
				Title("CPF").
				Placeholder("000.000.000-00").
				Value(&m.formCPF).
				Validate(func(s string) error {
					if !cpf.Valid(s) {
						return fmt.Errorf("invalid CPF")
					}
					return nil
				}),
		),
	).WithWidth(45).WithShowHelp(false)

	m.state = accessesStateLookup
	m.table.Blur()

	return m, m.form.Init()
}

func (m AccessesModel) updateLookup(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = accessesStateBrowse
			m.form = nil
			m.table.Focus()

			return m, nil
		}
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	return m, m.lookupCmd()
}

func (m AccessesModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading accesses...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := fmt.Sprintf("Accesses (%d total)", m.total)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state == accessesStateLookup && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(fmt.Sprintf("Lookup or Create Access\n\n%s", m.form.View()))

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *AccessesModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.accesses))
	for _, a := range m.accesses {
		rows = append(rows, table.Row{
			FormatCPF(a.CPF),
			FormatDate(a.CreatedAt),
			a.ID.String(),
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadAccessesMsg struct {
	accesses []*access.Access
	total    int
	err      error
}

func (m AccessesModel) loadAccessesCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		accesses, total, err := m.accessService.List(ctx, 0, pagination.MaxLimit)

		return loadAccessesMsg{accesses: accesses, total: total, err: err}
	}
}

type lookupDoneMsg struct {
	access *access.Access
	err    error
}

func (m AccessesModel) lookupCmd() tea.Cmd {
	// Read the submitted value from the form itself; the bound field only
	// seeds the initial value.
	rawCPF := m.form.GetString("cpf")

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		a, err := m.accessService.GetOrCreate(ctx, rawCPF)

		return lookupDoneMsg{access: a, err: err}
	}
}

package view

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/contas/internal/access"
	"github.com/MrJamesThe3rd/contas/internal/pagination"
	"github.com/MrJamesThe3rd/contas/internal/record"
)

type recordsState int

const (
	recordsStateBrowse recordsState = iota
	recordsStateCreate
	recordsStateEdit
)

type RecordsModel struct {
	CommonModel
	recordService *record.Service
	access        *access.Access

	state   recordsState
	table   table.Model
	records []*record.Record
	total   int
	form    *huh.Form

	loading bool
	err     error
	status  string

	// Form bindings
	formKind     string
	formCategory string
	formAmount   string
	formPayment  string
	formDesc     string
	formDueAt    string
	formStatus   string
	formNote     string
}

func NewRecordsModel(recordSvc *record.Service, a *access.Access) RecordsModel {
	columns := []table.Column{
		{Title: "Due", Width: 12},
		{Title: "Kind", Width: 8},
		{Title: "Category", Width: 15},
		{Title: "Amount", Width: 10},
		{Title: "Status", Width: 10},
		{Title: "Description", Width: 30},
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

	return RecordsModel{
		recordService: recordSvc,
		access:        a,
		table:         t,
	}
}

func (m RecordsModel) Title() string { return "Records" }
func (m RecordsModel) ShortHelp() string {
	if m.state != recordsStateBrowse {
		return "Navigate form | Esc: cancel"
	}

	return "Esc: back | n: new | e: edit | d: deactivate | r: refresh"
}

func (m RecordsModel) Init() tea.Cmd {
	return m.loadRecordsCmd()
}

func (m RecordsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadRecordsMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}

		m.records = msg.records
		m.total = msg.total
		m.refreshTable()

		return m, nil

	case recordSavedMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
		} else {
			m.status = msg.detail
		}

		m.state = recordsStateBrowse
		m.form = nil
		m.table.Focus()

		return m, m.loadRecordsCmd()

	case tea.WindowSizeMsg:
		m.table.SetHeight(msg.Height - 10)
		return m, nil
	}

	switch m.state {
	case recordsStateBrowse:
		return m.updateBrowse(msg)
	case recordsStateCreate, recordsStateEdit:
		return m.updateForm(msg)
	}

	return m, nil
}

func (m RecordsModel) updateBrowse(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if ok {
		switch keyMsg.String() {
		case "esc":
			return m, Back
		case "r":
			m.loading = true
			return m, m.loadRecordsCmd()
		case "n":
			return m.enterCreateMode()
		case "e":
			return m.enterEditMode()
		case "d":
			idx := m.table.Cursor()
			if idx < 0 || idx >= len(m.records) {
				return m, nil
			}

			return m, m.deactivateCmd(m.records[idx].ID)
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)

	return m, cmd
}

func (m RecordsModel) recordForm(title string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("kind").
				Title("Kind").
				Options(
					huh.NewOption("Income", string(record.KindIncome)),
					huh.NewOption("Expense", string(record.KindExpense)),
				).
				Value(&m.formKind),

			huh.NewInput().
				Key("category").
				Title("Category").
				Value(&m.formCategory).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("category cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("amount").
				Title("Amount").
				Value(&m.formAmount).
				Validate(func(s string) error {
					if _, err := strconv.ParseFloat(s, 64); err != nil {
						return fmt.Errorf("amount must be a number")
					}
					return nil
				}),

			huh.NewInput().
				Key("payment_method").
				Title("Payment Method").
				Value(&m.formPayment),

			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&m.formDesc),

			huh.NewInput().
				Key("due_at").
				Title("Due Date").
				Placeholder("2024-12-31").
				Value(&m.formDueAt).
				Validate(func(s string) error {
					if _, err := time.Parse(time.DateOnly, s); err != nil {
						return fmt.Errorf("date must be YYYY-MM-DD")
					}
					return nil
				}),

			huh.NewInput().
				Key("status").
				Title("Status").
				Placeholder(record.StatusPending).
				Value(&m.formStatus),

			huh.NewInput().
				Key("note").
				Title("Note").
				Value(&m.formNote),
		).Title(title),
	).WithWidth(45).WithShowHelp(false)
}

func (m RecordsModel) enterCreateMode() (tea.Model, tea.Cmd) {
	m.formKind = string(record.KindExpense)
	m.formCategory = ""
	m.formAmount = ""
	m.formPayment = ""
	m.formDesc = ""
	m.formDueAt = FormatDate(time.Now())
	m.formStatus = ""
	m.formNote = ""

	m.form = m.recordForm("New Record")
	m.state = recordsStateCreate
	m.table.Blur()

	return m, m.form.Init()
}

func (m RecordsModel) enterEditMode() (tea.Model, tea.Cmd) {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.records) {
		return m, nil
	}

	rec := m.records[idx]
	m.formKind = string(rec.Kind)
	m.formCategory = rec.Category
	m.formAmount = FormatAmount(rec.Amount)
	m.formPayment = rec.PaymentMethod
	m.formDesc = rec.Description
	m.formDueAt = FormatDate(rec.DueAt)
	m.formStatus = rec.Status
	m.formNote = rec.Note

	m.form = m.recordForm("Edit Record")
	m.state = recordsStateEdit
	m.table.Blur()

	return m, m.form.Init()
}

func (m RecordsModel) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = recordsStateBrowse
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

	if m.state == recordsStateCreate {
		return m, m.createCmd()
	}

	return m, m.saveCmd()
}

func (m RecordsModel) View() string {
	if m.loading {
		return lipgloss.NewStyle().Padding(2).Render("Loading records...")
	}

	if m.err != nil {
		return lipgloss.NewStyle().Padding(2).Render(fmt.Sprintf("Error: %v", m.err))
	}

	header := fmt.Sprintf("Records for %s (%d total)", FormatCPF(m.access.CPF), m.total)

	tableView := lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		Render(m.table.View())

	content := lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().PaddingBottom(1).Render(header),
		tableView,
	)

	if m.state != recordsStateBrowse && m.form != nil {
		panel := lipgloss.NewStyle().
			Padding(1, 2).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Width(48).
			Render(m.form.View())

		content = lipgloss.JoinHorizontal(lipgloss.Top, content, panel)
	}

	if m.status != "" {
		content = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n" + content
	}

	return lipgloss.NewStyle().Padding(1).Render(content)
}

func (m *RecordsModel) refreshTable() {
	rows := make([]table.Row, 0, len(m.records))
	for _, rec := range m.records {
		rows = append(rows, table.Row{
			FormatDate(rec.DueAt),
			string(rec.Kind),
			rec.Category,
			FormatAmount(rec.Amount),
			rec.Status,
			rec.Description,
		})
	}

	m.table.SetRows(rows)
}

// Messages

type loadRecordsMsg struct {
	records []*record.Record
	total   int
	err     error
}

func (m RecordsModel) loadRecordsCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		records, total, err := m.recordService.List(ctx, m.access.ID, 0, pagination.MaxLimit)

		return loadRecordsMsg{records: records, total: total, err: err}
	}
}

type recordSavedMsg struct {
	detail string
	err    error
}

// formParams reads the submitted values back out of the form. The bound
// fields only seed initial values; model copies made by bubbletea would make
// them stale by submission time.
func (m RecordsModel) formParams() (record.CreateParams, error) {
	amount, err := strconv.ParseFloat(m.form.GetString("amount"), 64)
	if err != nil {
		return record.CreateParams{}, fmt.Errorf("parsing amount: %w", err)
	}

	dueAt, err := time.Parse(time.DateOnly, m.form.GetString("due_at"))
	if err != nil {
		return record.CreateParams{}, fmt.Errorf("parsing due date: %w", err)
	}

	return record.CreateParams{
		Kind:          record.Kind(m.form.GetString("kind")),
		Category:      m.form.GetString("category"),
		Amount:        amount,
		PaymentMethod: m.form.GetString("payment_method"),
		Description:   m.form.GetString("description"),
		DueAt:         dueAt,
		Status:        m.form.GetString("status"),
		Note:          m.form.GetString("note"),
	}, nil
}

func (m RecordsModel) createCmd() tea.Cmd {
	params, err := m.formParams()
	if err != nil {
		return func() tea.Msg { return recordSavedMsg{err: err} }
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if _, err := m.recordService.Create(ctx, m.access.ID, params); err != nil {
			return recordSavedMsg{err: err}
		}

		return recordSavedMsg{detail: "Record created"}
	}
}

func (m RecordsModel) saveCmd() tea.Cmd {
	idx := m.table.Cursor()
	if idx < 0 || idx >= len(m.records) {
		return nil
	}

	id := m.records[idx].ID

	params, err := m.formParams()
	if err != nil {
		return func() tea.Msg { return recordSavedMsg{err: err} }
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		patch := record.UpdateParams{
			Kind:          new(params.Kind),
			Category:      new(params.Category),
			Amount:        new(params.Amount),
			PaymentMethod: new(params.PaymentMethod),
			Description:   new(params.Description),
			DueAt:         new(params.DueAt),
			Status:        new(params.Status),
			Note:          new(params.Note),
		}

		if _, err := m.recordService.Update(ctx, id, patch); err != nil {
			return recordSavedMsg{err: err}
		}

		return recordSavedMsg{detail: "Record updated"}
	}
}

func (m RecordsModel) deactivateCmd(id uuid.UUID) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		if _, err := m.recordService.Deactivate(ctx, id); err != nil {
			return recordSavedMsg{err: err}
		}

		return recordSavedMsg{detail: "Record deactivated"}
	}
}

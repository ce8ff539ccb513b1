package view

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/moneta-app/moneta/internal/budget"
)

type budgetState int

const (
	budgetStateList budgetState = iota
	budgetStateAdding
)

// budgetItem wraps a budget plus its spend figures to implement list.Item.
type budgetItem struct {
	b *budget.WithSpending
}

func (i budgetItem) Title() string {
	period := lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("[%s]", i.b.Period))

	return fmt.Sprintf("%s  %s  %s", i.b.Category, FormatAmount(i.b.Amount), period)
}

func (i budgetItem) Description() string {
	used := fmt.Sprintf("%.2f%%", i.b.PercentageUsed)
	if i.b.Remaining < 0 {
		used = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(used + " (over)")
	}

	return fmt.Sprintf("Spent: %s  Remaining: %s  Used: %s",
		FormatAmount(i.b.Spent), FormatAmount(i.b.Remaining), used)
}

func (i budgetItem) FilterValue() string {
	return i.b.Category
}

type BudgetsModel struct {
	CommonModel
	budgetService *budget.Service
	userID        uuid.UUID

	state   budgetState
	list    list.Model
	form    *huh.Form
	budgets []*budget.WithSpending

	loading bool
	status  string

	// Form field bindings
	formCategory string
	formAmount   string
	formPeriod   string
	formStart    string
	formEnd      string
}

func NewBudgetsModel(budgetSvc *budget.Service, userID uuid.UUID) BudgetsModel {
	l := list.New([]list.Item{}, budgetItemDelegate{}, 0, 0)
	l.Title = "Budgets"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(true)

	return BudgetsModel{
		budgetService: budgetSvc,
		userID:        userID,
		list:          l,
		loading:       true,
	}
}

func (m BudgetsModel) Title() string { return "Manage Budgets" }

func (m BudgetsModel) ShortHelp() string {
	switch m.state {
	case budgetStateList:
		return "Esc: back | a: add | d: delete | /: filter"
	case budgetStateAdding:
		return "Esc: cancel | Enter/Tab: navigate form"
	}

	return ""
}

func (m BudgetsModel) Init() tea.Cmd {
	return m.loadBudgetsCmd()
}

func (m BudgetsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadBudgetsMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.budgets = msg.budgets
		m.refreshListItems()

		if len(msg.budgets) == 0 {
			m.status = "No budgets found."
		}

		return m, nil

	case saveBudgetResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
			m.state = budgetStateList

			return m, nil
		}

		m.status = "Saved."
		m.state = budgetStateList

		return m, m.loadBudgetsCmd()

	case deleteBudgetResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error deleting: %v", msg.err)
			return m, nil
		}

		m.status = "Deleted."

		return m, m.loadBudgetsCmd()

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil
	}

	switch m.state {
	case budgetStateList:
		return m.updateList(msg)
	case budgetStateAdding:
		return m.updateAdding(msg)
	}

	return m, nil
}

func (m BudgetsModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.list.FilterState() != list.Filtering {
			switch keyMsg.String() {
			case "esc":
				return m, Back
			case "a":
				return m.startAdding()
			case "d":
				return m, m.deleteSelectedCmd()
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m BudgetsModel) startAdding() (tea.Model, tea.Cmd) {
	now := time.Now()

	m.formCategory = ""
	m.formAmount = ""
	m.formPeriod = string(budget.PeriodMonthly)
	m.formStart = FormatDate(time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC))
	m.formEnd = FormatDate(time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, time.UTC))

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("category").
				Title("Category").
				Placeholder("food").
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
				Placeholder("0.00").
				Value(&m.formAmount).
				Validate(func(s string) error {
					v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
					if err != nil || v <= 0 {
						return fmt.Errorf("amount must be a positive number")
					}
					return nil
				}),

			huh.NewSelect[string]().
				Key("period").
				Title("Period").
				Options(
					huh.NewOption("Monthly", string(budget.PeriodMonthly)),
					huh.NewOption("Yearly", string(budget.PeriodYearly)),
				).
				Value(&m.formPeriod),

			huh.NewInput().
				Key("start_date").
				Title("Start date (YYYY-MM-DD)").
				Value(&m.formStart).
				Validate(validateDate),

			huh.NewInput().
				Key("end_date").
				Title("End date (YYYY-MM-DD)").
				Value(&m.formEnd).
				Validate(validateDate),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = budgetStateAdding

	return m, m.form.Init()
}

func validateDate(s string) error {
	if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
		return fmt.Errorf("date must be YYYY-MM-DD")
	}

	return nil
}

func (m BudgetsModel) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = budgetStateList
			m.form = nil

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

	return m, m.saveBudgetCmd()
}

func (m BudgetsModel) View() string {
	switch m.state {
	case budgetStateList:
		if m.loading {
			return lipgloss.NewStyle().Padding(2).Render("Loading budgets...")
		}

		statusLine := ""
		if m.status != "" {
			statusLine = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n"
		}

		return lipgloss.NewStyle().Padding(1).Render(statusLine + m.list.View())

	case budgetStateAdding:
		if m.form == nil {
			return ""
		}

		return lipgloss.NewStyle().Padding(1).Render(
			"New Budget\n\n" + m.form.View(),
		)
	}

	return ""
}

func (m *BudgetsModel) refreshListItems() {
	items := make([]list.Item, len(m.budgets))
	for i, b := range m.budgets {
		items[i] = budgetItem{b: b}
	}

	m.list.SetItems(items)
}

// Messages

type loadBudgetsMsg struct {
	budgets []*budget.WithSpending
	err     error
}

func (m BudgetsModel) loadBudgetsCmd() tea.Cmd {
	userID := m.userID
	budgetSvc := m.budgetService

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		budgets, err := budgetSvc.ListWithSpending(ctx, userID)

		return loadBudgetsMsg{budgets: budgets, err: err}
	}
}

type saveBudgetResultMsg struct {
	err error
}

func (m BudgetsModel) saveBudgetCmd() tea.Cmd {
	userID := m.userID
	budgetSvc := m.budgetService

	amount, _ := strconv.ParseFloat(strings.TrimSpace(m.formAmount), 64)
	start, _ := time.Parse("2006-01-02", strings.TrimSpace(m.formStart))
	end, _ := time.Parse("2006-01-02", strings.TrimSpace(m.formEnd))

	params := budget.CreateParams{
		Category:  strings.TrimSpace(m.formCategory),
		Amount:    amount,
		Period:    budget.Period(m.formPeriod),
		StartDate: start,
		EndDate:   end,
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := budgetSvc.Create(ctx, userID, params)

		return saveBudgetResultMsg{err: err}
	}
}

type deleteBudgetResultMsg struct {
	err error
}

func (m BudgetsModel) deleteSelectedCmd() tea.Cmd {
	selected, ok := m.list.SelectedItem().(budgetItem)
	if !ok {
		return nil
	}

	userID := m.userID
	id := selected.b.ID
	budgetSvc := m.budgetService

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return deleteBudgetResultMsg{err: budgetSvc.Delete(ctx, userID, id)}
	}
}

// budgetItemDelegate renders items in the list.
type budgetItemDelegate struct{}

func (d budgetItemDelegate) Height() int                             { return 2 }
func (d budgetItemDelegate) Spacing() int                            { return 0 }
func (d budgetItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d budgetItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(budgetItem)
	if !ok {
		return
	}

	isSelected := index == m.Index()

	title := i.Title()
	desc := i.Description()

	if isSelected {
		title = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true).Render("> " + title)
	}

	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintf(w, "    %s\n", lipgloss.NewStyle().Faint(true).Render(desc))
}

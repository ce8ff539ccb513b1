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

	"github.com/moneta-app/moneta/internal/transaction"
)

type txState int

const (
	txStateList txState = iota
	txStateAdding
)

// txItem wraps a transaction to implement list.Item.
type txItem struct {
	tx *transaction.Transaction
}

func (i txItem) Title() string {
	kind := lipgloss.NewStyle().Faint(true).Render(fmt.Sprintf("[%s]", i.tx.Type))

	return fmt.Sprintf("%s  %s  %s  %s", FormatDate(i.tx.Date), FormatAmount(i.tx.Amount), kind, i.tx.Description)
}

func (i txItem) Description() string {
	return string(i.tx.Category)
}

func (i txItem) FilterValue() string {
	return i.tx.Description + " " + string(i.tx.Category)
}

type TransactionsModel struct {
	CommonModel
	txService *transaction.Service
	userID    uuid.UUID

	state txState
	list  list.Model
	form  *huh.Form
	txs   []*transaction.Transaction

	// typeFilter cycles all -> income -> expense on "t".
	typeFilter *transaction.Type
	loading    bool
	status     string

	// Form field bindings
	formType     string
	formCategory string
	formAmount   string
	formDesc     string
	formDate     string
}

func NewTransactionsModel(txSvc *transaction.Service, userID uuid.UUID) TransactionsModel {
	l := list.New([]list.Item{}, txItemDelegate{}, 0, 0)
	l.Title = "Transactions"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(true)

	return TransactionsModel{
		txService: txSvc,
		userID:    userID,
		list:      l,
		loading:   true,
	}
}

func (m TransactionsModel) Title() string { return "Manage Transactions" }

func (m TransactionsModel) ShortHelp() string {
	switch m.state {
	case txStateList:
		return "Esc: back | a: add | t: cycle type | d: delete | /: filter"
	case txStateAdding:
		return "Esc: cancel | Enter/Tab: navigate form"
	}

	return ""
}

func (m TransactionsModel) Init() tea.Cmd {
	return m.loadTxsCmd()
}

func (m TransactionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadTxsMsg:
		m.loading = false
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}

		m.txs = msg.txs
		m.refreshListItems()

		if len(msg.txs) == 0 {
			m.status = "No transactions found."
		}

		return m, nil

	case saveTxResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error saving: %v", msg.err)
			m.state = txStateList

			return m, nil
		}

		m.status = "Saved."
		m.state = txStateList

		return m, m.loadTxsCmd()

	case deleteTxResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error deleting: %v", msg.err)
			return m, nil
		}

		m.status = "Deleted."

		return m, m.loadTxsCmd()

	case tea.WindowSizeMsg:
		m.list.SetSize(msg.Width-4, msg.Height-8)
		return m, nil
	}

	switch m.state {
	case txStateList:
		return m.updateList(msg)
	case txStateAdding:
		return m.updateAdding(msg)
	}

	return m, nil
}

func (m TransactionsModel) updateList(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if m.list.FilterState() != list.Filtering {
			switch keyMsg.String() {
			case "esc":
				return m, Back
			case "a":
				return m.startAdding()
			case "t":
				m.cycleTypeFilter()
				m.loading = true

				return m, m.loadTxsCmd()
			case "d":
				return m, m.deleteSelectedCmd()
			}
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)

	return m, cmd
}

func (m *TransactionsModel) cycleTypeFilter() {
	switch {
	case m.typeFilter == nil:
		t := transaction.TypeIncome
		m.typeFilter = &t
	case *m.typeFilter == transaction.TypeIncome:
		t := transaction.TypeExpense
		m.typeFilter = &t
	default:
		m.typeFilter = nil
	}
}

func (m TransactionsModel) startAdding() (tea.Model, tea.Cmd) {
	m.formType = string(transaction.TypeExpense)
	m.formCategory = string(transaction.CategoryFood)
	m.formAmount = ""
	m.formDesc = ""
	m.formDate = FormatDate(time.Now())

	m.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Key("type").
				Title("Type").
				Options(
					huh.NewOption("Expense", string(transaction.TypeExpense)),
					huh.NewOption("Income", string(transaction.TypeIncome)),
				).
				Value(&m.formType),

			huh.NewSelect[string]().
				Key("category").
				Title("Category").
				Options(
					huh.NewOption("Food", string(transaction.CategoryFood)),
					huh.NewOption("Transport", string(transaction.CategoryTransport)),
					huh.NewOption("Housing", string(transaction.CategoryHousing)),
					huh.NewOption("Utilities", string(transaction.CategoryUtilities)),
					huh.NewOption("Entertainment", string(transaction.CategoryEntertainment)),
					huh.NewOption("Healthcare", string(transaction.CategoryHealthcare)),
					huh.NewOption("Shopping", string(transaction.CategoryShopping)),
					huh.NewOption("Education", string(transaction.CategoryEducation)),
					huh.NewOption("Other Expense", string(transaction.CategoryOtherExpense)),
					huh.NewOption("Salary", string(transaction.CategorySalary)),
					huh.NewOption("Freelance", string(transaction.CategoryFreelance)),
					huh.NewOption("Investment", string(transaction.CategoryInvestment)),
					huh.NewOption("Other Income", string(transaction.CategoryOtherIncome)),
				).
				Value(&m.formCategory),

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

			huh.NewInput().
				Key("description").
				Title("Description").
				Value(&m.formDesc).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("description cannot be empty")
					}
					return nil
				}),

			huh.NewInput().
				Key("date").
				Title("Date (YYYY-MM-DD)").
				Value(&m.formDate).
				Validate(func(s string) error {
					if _, err := time.Parse("2006-01-02", strings.TrimSpace(s)); err != nil {
						return fmt.Errorf("date must be YYYY-MM-DD")
					}
					return nil
				}),
		),
	).WithWidth(50).WithShowHelp(false)

	m.state = txStateAdding

	return m, m.form.Init()
}

func (m TransactionsModel) updateAdding(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyEsc {
			m.state = txStateList
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

	return m, m.saveTxCmd()
}

func (m TransactionsModel) View() string {
	switch m.state {
	case txStateList:
		if m.loading {
			return lipgloss.NewStyle().Padding(2).Render("Loading transactions...")
		}

		statusLine := ""
		if m.status != "" {
			statusLine = lipgloss.NewStyle().Faint(true).Render(m.status) + "\n"
		}

		filterLine := lipgloss.NewStyle().Faint(true).Render("Type filter: "+m.typeFilterLabel()) + "\n"

		return lipgloss.NewStyle().Padding(1).Render(statusLine + filterLine + m.list.View())

	case txStateAdding:
		if m.form == nil {
			return ""
		}

		return lipgloss.NewStyle().Padding(1).Render(
			"New Transaction\n\n" + m.form.View(),
		)
	}

	return ""
}

func (m TransactionsModel) typeFilterLabel() string {
	if m.typeFilter == nil {
		return "all"
	}

	return string(*m.typeFilter)
}

func (m *TransactionsModel) refreshListItems() {
	items := make([]list.Item, len(m.txs))
	for i, tx := range m.txs {
		items[i] = txItem{tx: tx}
	}

	m.list.SetItems(items)
}

// Messages

type loadTxsMsg struct {
	txs []*transaction.Transaction
	err error
}

func (m TransactionsModel) loadTxsCmd() tea.Cmd {
	userID := m.userID
	typeFilter := m.typeFilter
	txSvc := m.txService

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		txs, err := txSvc.List(ctx, userID, transaction.ListFilter{Type: typeFilter})

		return loadTxsMsg{txs: txs, err: err}
	}
}

type saveTxResultMsg struct {
	err error
}

func (m TransactionsModel) saveTxCmd() tea.Cmd {
	userID := m.userID
	txSvc := m.txService

	amount, _ := strconv.ParseFloat(strings.TrimSpace(m.formAmount), 64)
	date, _ := time.Parse("2006-01-02", strings.TrimSpace(m.formDate))

	params := transaction.CreateParams{
		Type:        transaction.Type(m.formType),
		Category:    transaction.Category(m.formCategory),
		Amount:      amount,
		Description: strings.TrimSpace(m.formDesc),
		Date:        date,
	}

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		_, err := txSvc.Create(ctx, userID, params)

		return saveTxResultMsg{err: err}
	}
}

type deleteTxResultMsg struct {
	err error
}

func (m TransactionsModel) deleteSelectedCmd() tea.Cmd {
	selected, ok := m.list.SelectedItem().(txItem)
	if !ok {
		return nil
	}

	userID := m.userID
	id := selected.tx.ID
	txSvc := m.txService

	return func() tea.Msg {
		ctx, cancel := DbCtx()
		defer cancel()

		return deleteTxResultMsg{err: txSvc.Delete(ctx, userID, id)}
	}
}

// txItemDelegate renders items in the list.
type txItemDelegate struct{}

func (d txItemDelegate) Height() int                             { return 2 }
func (d txItemDelegate) Spacing() int                            { return 0 }
func (d txItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }

func (d txItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(txItem)
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

	if desc == "" {
		fmt.Fprintln(w)
		return
	}

	fmt.Fprintf(w, "    %s\n", lipgloss.NewStyle().Faint(true).Render(desc))
}

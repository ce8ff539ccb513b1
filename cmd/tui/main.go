package main

import (
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/moneta-app/moneta/cmd/tui/internal/view"
	"github.com/moneta-app/moneta/internal/advisor"
	"github.com/moneta-app/moneta/internal/advisor/gemini"
	"github.com/moneta-app/moneta/internal/budget"
	budgetStore "github.com/moneta-app/moneta/internal/budget/store"
	"github.com/moneta-app/moneta/internal/config"
	"github.com/moneta-app/moneta/internal/database"
	"github.com/moneta-app/moneta/internal/money"
	"github.com/moneta-app/moneta/internal/transaction"
	txStore "github.com/moneta-app/moneta/internal/transaction/store"
)

type model struct {
	txService      *transaction.Service
	budgetService  *budget.Service
	advisorService *advisor.Service
	userID         uuid.UUID

	currentView View

	transactionsView view.TransactionsModel
	budgetsView      view.BudgetsModel
	advisorView      view.AdvisorModel
}

type View int

const (
	ViewMenu         View = 0
	ViewTransactions View = 1
	ViewBudgets      View = 2
	ViewAdvisor      View = 3
)

func initialModel() model {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	userID, err := uuid.Parse(cfg.TUI.UserID)
	if err != nil {
		slog.Error("TUI_USER_ID must be a valid UUID", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	formatter, err := money.NewFormatter(cfg.Currency)
	if err != nil {
		slog.Error("failed to build currency formatter", "error", err)
		os.Exit(1)
	}

	txSvc := transaction.NewService(txStore.New(db))
	budgetSvc := budget.NewService(budgetStore.New(db))
	advisorSvc := advisor.NewService(txSvc, gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.Model), formatter)

	return model{
		txService:        txSvc,
		budgetService:    budgetSvc,
		advisorService:   advisorSvc,
		userID:           userID,
		currentView:      ViewMenu,
		transactionsView: view.NewTransactionsModel(txSvc, userID),
		budgetsView:      view.NewBudgetsModel(budgetSvc, userID),
		advisorView:      view.NewAdvisorModel(advisorSvc, userID),
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
				m.currentView = ViewTransactions
				m.transactionsView = view.NewTransactionsModel(m.txService, m.userID)

				return m, m.transactionsView.Init()
			case "2":
				m.currentView = ViewBudgets
				m.budgetsView = view.NewBudgetsModel(m.budgetService, m.userID)

				return m, m.budgetsView.Init()
			case "3":
				m.currentView = ViewAdvisor
				m.advisorView = view.NewAdvisorModel(m.advisorService, m.userID)

				return m, m.advisorView.Init()
			}
		}
	case view.BackMsg:
		m.currentView = ViewMenu
		return m, nil
	}

	switch m.currentView {
	case ViewTransactions:
		var newModel tea.Model
		newModel, cmd = m.transactionsView.Update(msg)
		m.transactionsView = newModel.(view.TransactionsModel)
	case ViewBudgets:
		var newModel tea.Model
		newModel, cmd = m.budgetsView.Update(msg)
		m.budgetsView = newModel.(view.BudgetsModel)
	case ViewAdvisor:
		var newModel tea.Model
		newModel, cmd = m.advisorView.Update(msg)
		m.advisorView = newModel.(view.AdvisorModel)
	}

	return m, cmd
}

func (m model) View() string {
	switch m.currentView {
	case ViewMenu:
		return lipgloss.NewStyle().Padding(2).Render(
			"Moneta TUI\n\n" +
				"1. Manage Transactions\n" +
				"2. Manage Budgets\n" +
				"3. Financial Advisor\n\n" +
				"q. Quit",
		)
	case ViewTransactions:
		return m.transactionsView.View()
	case ViewBudgets:
		return m.budgetsView.View()
	case ViewAdvisor:
		return m.advisorView.View()
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

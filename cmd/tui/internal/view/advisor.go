package view

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/moneta-app/moneta/internal/advisor"
)

// askTimeout bounds the round trip to the external model, which is far slower
// than a database query.
const askTimeout = 60 * time.Second

type advisorState int

const (
	advisorStateAsking advisorState = iota
	advisorStateWaiting
	advisorStateAnswered
)

type AdvisorModel struct {
	CommonModel
	advisorService *advisor.Service
	userID         uuid.UUID

	state advisorState
	form  *huh.Form

	query    string
	response string
	status   string
}

func NewAdvisorModel(advisorSvc *advisor.Service, userID uuid.UUID) AdvisorModel {
	m := AdvisorModel{
		advisorService: advisorSvc,
		userID:         userID,
	}
	m.form = m.newQueryForm()

	return m
}

func (m AdvisorModel) Title() string { return "Financial Advisor" }

func (m AdvisorModel) ShortHelp() string {
	switch m.state {
	case advisorStateAsking:
		return "Esc: back | Enter: ask"
	case advisorStateWaiting:
		return "Waiting for the advisor..."
	case advisorStateAnswered:
		return "Esc: back | Enter: ask another question"
	}

	return ""
}

func (m AdvisorModel) newQueryForm() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Key("query").
				Title("Ask the advisor").
				Placeholder("How can I reduce my monthly spending?").
				Value(&m.query).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("question cannot be empty")
					}
					return nil
				}),
		),
	).WithWidth(70).WithShowHelp(false)
}

func (m AdvisorModel) Init() tea.Cmd {
	return m.form.Init()
}

func (m AdvisorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case askResultMsg:
		if msg.err != nil {
			m.status = fmt.Sprintf("Error: %v", msg.err)
			m.state = advisorStateAsking
			m.query = ""
			m.form = m.newQueryForm()

			return m, m.form.Init()
		}

		m.response = msg.answer.Response
		m.status = ""
		m.state = advisorStateAnswered

		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyEsc && m.state != advisorStateWaiting {
			return m, Back
		}

		if m.state == advisorStateAnswered && msg.Type == tea.KeyEnter {
			m.state = advisorStateAsking
			m.query = ""
			m.form = m.newQueryForm()

			return m, m.form.Init()
		}
	}

	if m.state != advisorStateAsking {
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	if m.form.State != huh.StateCompleted {
		return m, cmd
	}

	m.query = m.form.GetString("query")
	m.state = advisorStateWaiting

	return m, m.askCmd()
}

func (m AdvisorModel) View() string {
	switch m.state {
	case advisorStateAsking:
		statusLine := ""
		if m.status != "" {
			statusLine = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Render(m.status) + "\n\n"
		}

		return lipgloss.NewStyle().Padding(1).Render(statusLine + m.form.View())

	case advisorStateWaiting:
		return lipgloss.NewStyle().Padding(2).Render("Thinking...")

	case advisorStateAnswered:
		question := lipgloss.NewStyle().Bold(true).Render("You: ") + m.query
		answer := lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(72).
			Render(m.response)

		return lipgloss.NewStyle().Padding(1).Render(question + "\n\n" + answer)
	}

	return ""
}

// Messages

type askResultMsg struct {
	answer *advisor.Answer
	err    error
}

func (m AdvisorModel) askCmd() tea.Cmd {
	userID := m.userID
	query := m.query
	advisorSvc := m.advisorService

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), askTimeout)
		defer cancel()

		answer, err := advisorSvc.Ask(ctx, userID, query)

		return askResultMsg{answer: answer, err: err}
	}
}

package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func NewApp(mode string) *Model {
	return &Model{
		state:   StateWelcome,
		mode:    mode,
		welcome: NewWelcome(mode),
		report:  NewReportModel(),
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// only quit from the welcome screen
		if msg.String() == "ctrl+c" && m.state == StateWelcome {
			return m, tea.Quit
		}

		// esc or ctrl+c in the report goes back to welcome
		if (msg.String() == "ctrl+c" || msg.String() == "esc") && m.state == StateReport {
			m.state = StateWelcome
			m.err = nil

			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.report.SetSize(msg.Width, msg.Height)

	case ErrorMsg:
		m.err = msg.err
		m.state = StateWelcome

		return m, nil

	case ReportContentMsg:
		m.err = nil
		m.state = StateReport

		return m, m.report.SetContent(msg.Title, msg.Markdown)

	case RunAnalysisMsg:
		m.state = StateLoading

		return m, tea.Batch(m.report.spinner.Tick, msg.run)
	}

	switch m.state {
	case StateWelcome:
		return m.updateWelcome(msg)

	case StateLoading, StateReport:
		return m.updateReport(msg)

	default:
		return m, nil
	}
}

func (m *Model) View() string {
	switch m.state {
	case StateWelcome:
		return m.welcome.View(m.err)

	case StateLoading:
		return loadingView(m.report.spinner.View())

	case StateReport:
		return m.report.View()

	default:
		return "Unknown state"
	}
}

func (m *Model) updateWelcome(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.welcome, cmd = m.welcome.Update(msg)

	return m, cmd
}

func (m *Model) updateReport(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.report, cmd = m.report.Update(msg)

	return m, cmd
}

func loadingView(spin string) string {
	return fmt.Sprintf("\n  %s analyzing hitlog...\n\n  %s\n",
		spin,
		helpStyle.Render("esc: cancel display"),
	)
}

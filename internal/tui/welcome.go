package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const logo = `
 _     _ _   _
| |__ (_) |_| | ___   __ _
| '_ \| | __| |/ _ \ / _' |
| | | | | |_| | (_) | (_| |
|_| |_|_|\__|_|\___/ \__, |
                     |___/`

// welcome screen model
type Welcome struct {
	mode     string
	input    string
	commands []Command
}

// returns a new welcome screen
func NewWelcome(mode string) *Welcome {
	commands := []Command{
		{Name: "analyze <path> [policy] [top]", Description: "rank article influence from a hitlog CSV"},
		{Name: "policies", Description: "describe the attribution policies"},
		{Name: "quit", Description: "exit"},
	}

	return &Welcome{
		mode:     mode,
		commands: commands,
	}
}

func (m *Welcome) Update(msg tea.Msg) (*Welcome, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return m, m.executeCommand()
		case "backspace":
			if len(m.input) > 0 {
				m.input = m.input[:len(m.input)-1]
			}
		default:
			if len(msg.String()) == 1 {
				m.input += msg.String()
			}
		}
	}

	return m, nil
}

func (m *Welcome) executeCommand() tea.Cmd {
	fields := strings.Fields(m.input)
	m.input = ""

	if len(fields) == 0 {
		return nil
	}

	switch fields[0] {
	case "quit", "q", "exit":
		return tea.Quit

	case "policies":
		return showPolicies

	case "analyze":
		if len(fields) < 2 {
			return errorCmd(fmt.Errorf("analyze needs a hitlog path"))
		}

		path := fields[1]
		policyName := "count"
		top := 3

		if len(fields) > 2 {
			policyName = fields[2]
		}

		if len(fields) > 3 {
			parsed, err := strconv.Atoi(fields[3])
			if err != nil || parsed < 1 {
				return errorCmd(fmt.Errorf("top must be a positive integer, got %q", fields[3]))
			}

			top = parsed
		}

		run := analyzeFile(path, policyName, top)

		return func() tea.Msg {
			return RunAnalysisMsg{run: run}
		}

	default:
		return errorCmd(fmt.Errorf("unknown command: %s", fields[0]))
	}
}

func (m *Welcome) View(err error) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(logo))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render("article influence from registration journeys"))
	b.WriteString("\n\n")

	modeText := fmt.Sprintf("mode: %s", strings.ToUpper(m.mode))
	b.WriteString(infoStyle.Render(modeText))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(colorWhite).Render("commands:"))
	b.WriteString("\n\n")

	for _, cmd := range m.commands {
		b.WriteString("  ")
		b.WriteString(commandStyle.Render(cmd.Name))
		b.WriteString(commandDescStyle.Render(" - " + cmd.Description))
		b.WriteString("\n")
	}

	b.WriteString("\n")

	if err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("error: %v", err)))
		b.WriteString("\n\n")
	}

	b.WriteString(promptStyle.Render("> "))
	b.WriteString(inputStyle.Render(m.input))
	b.WriteString(cursorStyle.Render("█"))
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter: run command, ctrl+c: quit"))

	return b.String()
}

func errorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return ErrorMsg{err: err}
	}
}

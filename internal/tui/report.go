package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
)

// scrollable report view backed by a glamour markdown renderer
type ReportModel struct {
	viewport viewport.Model
	spinner  spinner.Model
	title    string
	markdown string
	width    int
	height   int
	ready    bool
}

// returns a new report view
func NewReportModel() *ReportModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	return &ReportModel{
		viewport: viewport.New(80, 24),
		spinner:  sp,
	}
}

// resizes the viewport; re-renders when content is present
func (m *ReportModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = height - 3

	if m.markdown != "" {
		m.render()
	}
}

// SetContent swaps in a new markdown report and renders it.
func (m *ReportModel) SetContent(title, markdown string) tea.Cmd {
	m.title = title
	m.markdown = markdown
	m.render()
	m.viewport.GotoTop()
	m.ready = true

	return nil
}

func (m *ReportModel) render() {
	width := m.width
	if width <= 0 {
		width = 80
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width-2),
	)

	if err != nil {
		m.viewport.SetContent(m.markdown)
		return
	}

	rendered, err := renderer.Render(m.markdown)
	if err != nil {
		m.viewport.SetContent(m.markdown)
		return
	}

	m.viewport.SetContent(rendered)
}

func (m *ReportModel) Update(msg tea.Msg) (*ReportModel, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)

	default:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *ReportModel) View() string {
	var b strings.Builder

	b.WriteString(reportTitleStyle.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑/↓: scroll, esc: back"))

	return b.String()
}

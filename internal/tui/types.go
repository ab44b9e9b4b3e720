package tui

import tea "github.com/charmbracelet/bubbletea"

// represents the current state of the TUI
type AppState int

const (
	StateWelcome AppState = iota
	StateLoading
	StateReport
)

// main TUI application model
type Model struct {
	state   AppState
	mode    string
	width   int
	height  int
	err     error
	welcome *Welcome
	report  *ReportModel
}

// sent when an error occurs
type ErrorMsg struct {
	err error
}

// sent when a report is ready to display
type ReportContentMsg struct {
	Title    string
	Markdown string
}

// sent to kick off an analysis while the loading spinner shows
type RunAnalysisMsg struct {
	run tea.Cmd
}

// represents an available TUI command
type Command struct {
	Name        string
	Description string
}

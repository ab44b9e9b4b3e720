package tui

import (
	"fmt"
	"strconv"
	"strings"

	"codeberg.org/hitlog/analyzer/internal/attribution"
	"codeberg.org/hitlog/analyzer/internal/hitlog"
	"codeberg.org/hitlog/analyzer/internal/influence"
	"codeberg.org/hitlog/analyzer/internal/journey"
	tea "github.com/charmbracelet/bubbletea"
)

// runs an analysis off the UI loop and delivers it as a markdown report
func analyzeFile(path, policyName string, top int) tea.Cmd {
	return func() tea.Msg {
		policy, err := attribution.ParsePolicy(policyName)
		if err != nil {
			return ErrorMsg{err: err}
		}

		events, err := hitlog.ReadFile(path)
		if err != nil {
			return ErrorMsg{err: err}
		}

		journeys := journey.Extract(events)
		rows := influence.Rank(influence.Aggregate(journeys, policy), top)

		return ReportContentMsg{
			Title:    fmt.Sprintf("top %d articles - %s", top, policy),
			Markdown: reportMarkdown(path, policy, len(journeys), rows),
		}
	}
}

// renders the policy reference screen
func showPolicies() tea.Msg {
	var b strings.Builder

	b.WriteString("# attribution policies\n\n")
	b.WriteString("| policy | normalized | rule |\n")
	b.WriteString("|---|---|---|\n")

	for _, p := range attribution.Policies() {
		normalized := "no"
		if p.Normalized() {
			normalized = "yes"
		}

		fmt.Fprintf(&b, "| %s | %s | %s |\n", p, normalized, p.Describe())
	}

	b.WriteString("\nNormalized policies conserve credit: scores for one journey sum to 1.0.\n")

	return ReportContentMsg{
		Title:    "attribution policies",
		Markdown: b.String(),
	}
}

func reportMarkdown(path string, policy attribution.Policy, journeys int, rows []influence.Row) string {
	var b strings.Builder

	b.WriteString("# article influence\n\n")
	fmt.Fprintf(&b, "hitlog: `%s`, policy: `%s`, journeys: %d\n\n", path, policy, journeys)

	if len(rows) == 0 {
		b.WriteString("no qualifying journeys in this hitlog.\n")
		return b.String()
	}

	b.WriteString("| page_name | page_url | total |\n")
	b.WriteString("|---|---|---|\n")

	for _, row := range rows {
		fmt.Fprintf(&b, "| %s | %s | %s |\n",
			row.PageName,
			row.PageURL,
			strconv.FormatFloat(row.Total, 'g', -1, 64),
		)
	}

	return b.String()
}

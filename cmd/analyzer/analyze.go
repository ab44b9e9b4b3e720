package main

import (
	"fmt"
	"strconv"

	"codeberg.org/hitlog/analyzer/internal/attribution"
	"codeberg.org/hitlog/analyzer/internal/config"
	"codeberg.org/hitlog/analyzer/internal/hitlog"
	"codeberg.org/hitlog/analyzer/internal/influence"
	"codeberg.org/hitlog/analyzer/internal/journey"
	"codeberg.org/hitlog/analyzer/internal/logger"
)

// RunAnalyze ranks article influence from a hitlog file and prints the top-N
// table, optionally exporting it as CSV.
func RunAnalyze(flags config.AnalyzeFlags) error {
	policy, err := attribution.ParsePolicy(flags.Policy)
	if err != nil {
		return err
	}

	if flags.Top < 1 {
		return fmt.Errorf("top must be a positive integer, got %d", flags.Top)
	}

	events, err := hitlog.ReadFile(flags.Input)
	if err != nil {
		return err
	}

	journeys := journey.Extract(events)
	rows := influence.Rank(influence.Aggregate(journeys, policy), flags.Top)

	logger.Info("analysis complete",
		"policy", policy.String(),
		"events", len(events),
		"journeys", len(journeys),
		"rows", len(rows),
	)

	printRows(policy, flags.Top, rows)

	if flags.Output != "" {
		if err := influence.WriteCSVFile(flags.Output, rows); err != nil {
			return err
		}

		logger.Info("result exported", "path", flags.Output)
	}

	return nil
}

func printRows(policy attribution.Policy, top int, rows []influence.Row) {
	fmt.Printf("\nTop %d influential articles using %s:\n", top, policy)

	if len(rows) == 0 {
		fmt.Println("  (no qualifying journeys)")
		return
	}

	fmt.Printf("%-24s %-32s %12s\n", "page_name", "page_url", "total")

	for _, row := range rows {
		fmt.Printf("%-24s %-32s %12s\n", row.PageName, row.PageURL, strconv.FormatFloat(row.Total, 'g', -1, 64))
	}
}

// Package influence aggregates per-journey attribution scores into a ranked
// article influence table.
package influence

import (
	"sort"
	"strings"

	"codeberg.org/hitlog/analyzer/internal/attribution"
	"codeberg.org/hitlog/analyzer/internal/hitlog"
	"codeberg.org/hitlog/analyzer/internal/journey"
)

// Aggregate scores every journey under the given policy and sums the credit
// per article URL. Only in-scope article URLs survive into the result; rows
// keep the order in which their URL first earned credit. No qualifying
// credit yields an empty slice, not an error.
func Aggregate(journeys []journey.Journey, policy attribution.Policy) []Row {
	totals := make(map[string]float64)
	var order []string

	for _, j := range journeys {
		scores := attribution.Score(j.Pages, policy)

		// walk the journey, not the score map, so first-appearance order
		// stays deterministic
		credited := make(map[string]bool, len(scores))

		for _, url := range j.Pages {
			credit, ok := scores[url]
			if !ok || credited[url] {
				continue
			}

			credited[url] = true

			if _, seen := totals[url]; !seen {
				order = append(order, url)
			}

			totals[url] += credit
		}
	}

	rows := make([]Row, 0, len(order))

	for _, url := range order {
		if !strings.HasPrefix(url, hitlog.ArticlePrefix) {
			continue
		}

		rows = append(rows, Row{
			PageName: pageName(url),
			PageURL:  url,
			Total:    totals[url],
		})
	}

	return rows
}

// Rank sorts rows by descending total and keeps the top n. Ties keep their
// aggregation order; n larger than the population returns everything.
func Rank(rows []Row, n int) []Row {
	ranked := make([]Row, len(rows))
	copy(ranked, rows)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Total > ranked[j].Total
	})

	if n >= 0 && n < len(ranked) {
		ranked = ranked[:n]
	}

	return ranked
}

// last path segment doubles as the display name
func pageName(url string) string {
	if i := strings.LastIndex(url, "/"); i >= 0 {
		return url[i+1:]
	}

	return url
}

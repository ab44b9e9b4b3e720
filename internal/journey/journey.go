// Package journey derives per-user article journeys from a raw hitlog.
package journey

import (
	"sort"

	"codeberg.org/hitlog/analyzer/internal/hitlog"
)

// Journey is the ordered list of article URLs one user viewed before their
// first registration.
type Journey struct {
	UserID string
	Pages  []string
}

// Extract derives qualifying journeys from a raw event log. Users with no
// registration, or with no article views before their first registration,
// contribute nothing. The result lists users in first-appearance log order so
// downstream aggregation is deterministic.
func Extract(events []hitlog.Event) []Journey {
	grouped := make(map[string][]hitlog.Event)
	var order []string

	for _, ev := range events {
		if _, seen := grouped[ev.UserID]; !seen {
			order = append(order, ev.UserID)
		}

		grouped[ev.UserID] = append(grouped[ev.UserID], ev)
	}

	var journeys []Journey

	for _, userID := range order {
		userEvents := grouped[userID]

		// stable: timestamp ties keep their original log order
		sort.SliceStable(userEvents, func(i, j int) bool {
			return userEvents[i].Timestamp.Before(userEvents[j].Timestamp)
		})

		// the cut point is the position of the first registration in the
		// sorted sequence, never a timestamp comparison against it; later
		// registrations are ignored
		registration := -1

		for i, ev := range userEvents {
			if ev.IsRegistration() {
				registration = i
				break
			}
		}

		if registration < 0 {
			continue
		}

		var pages []string

		for _, ev := range userEvents[:registration] {
			if ev.IsArticle() {
				pages = append(pages, ev.PageURL)
			}
		}

		if len(pages) == 0 {
			continue
		}

		journeys = append(journeys, Journey{UserID: userID, Pages: pages})
	}

	return journeys
}

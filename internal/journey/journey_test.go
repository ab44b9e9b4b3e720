package journey

import (
	"testing"
	"time"

	"codeberg.org/hitlog/analyzer/internal/hitlog"
)

func at(minute int) time.Time {
	return time.Date(2024, 1, 1, 10, minute, 0, 0, time.UTC)
}

func view(user, url string, minute int) hitlog.Event {
	return hitlog.Event{PageName: "page", PageURL: url, UserID: user, Timestamp: at(minute)}
}

func register(user string, minute int) hitlog.Event {
	return hitlog.Event{PageName: "Register", PageURL: hitlog.RegistrationURL, UserID: user, Timestamp: at(minute)}
}

func TestExtractBasicJourney(t *testing.T) {
	events := []hitlog.Event{
		view("u1", "/articles/a1", 0),
		view("u1", "/articles/a2", 5),
		register("u1", 10),
	}

	journeys := Extract(events)

	if len(journeys) != 1 {
		t.Fatalf("expected 1 journey, got %d", len(journeys))
	}

	if journeys[0].UserID != "u1" {
		t.Errorf("expected user u1, got %s", journeys[0].UserID)
	}

	want := []string{"/articles/a1", "/articles/a2"}

	if len(journeys[0].Pages) != len(want) {
		t.Fatalf("expected %d pages, got %d", len(want), len(journeys[0].Pages))
	}

	for i, url := range want {
		if journeys[0].Pages[i] != url {
			t.Errorf("page %d: expected %s, got %s", i, url, journeys[0].Pages[i])
		}
	}
}

func TestExtractNoRegistration(t *testing.T) {
	events := []hitlog.Event{
		view("u1", "/articles/a1", 0),
		view("u1", "/articles/a2", 5),
	}

	if journeys := Extract(events); len(journeys) != 0 {
		t.Errorf("user without registration must contribute no journey, got %d", len(journeys))
	}
}

func TestExtractRegistrationFirst(t *testing.T) {
	events := []hitlog.Event{
		register("u1", 0),
		view("u1", "/articles/a1", 5),
	}

	if journeys := Extract(events); len(journeys) != 0 {
		t.Errorf("registration-first user must contribute no journey, got %d", len(journeys))
	}
}

func TestExtractOnlyFirstRegistrationCounts(t *testing.T) {
	events := []hitlog.Event{
		view("u1", "/articles/a1", 0),
		register("u1", 5),
		view("u1", "/articles/a2", 10),
		register("u1", 15),
	}

	journeys := Extract(events)

	if len(journeys) != 1 {
		t.Fatalf("expected 1 journey, got %d", len(journeys))
	}

	if len(journeys[0].Pages) != 1 || journeys[0].Pages[0] != "/articles/a1" {
		t.Errorf("only views before the first registration count, got %v", journeys[0].Pages)
	}
}

// events sharing the registration timestamp but sorted earlier are included;
// the boundary is positional, not a timestamp comparison
func TestExtractSharedTimestampBoundary(t *testing.T) {
	events := []hitlog.Event{
		view("u1", "/articles/a1", 10),
		register("u1", 10),
		view("u1", "/articles/a2", 10),
	}

	journeys := Extract(events)

	if len(journeys) != 1 {
		t.Fatalf("expected 1 journey, got %d", len(journeys))
	}

	if len(journeys[0].Pages) != 1 || journeys[0].Pages[0] != "/articles/a1" {
		t.Errorf("expected only the log-earlier view, got %v", journeys[0].Pages)
	}
}

func TestExtractSortsByTimestamp(t *testing.T) {
	events := []hitlog.Event{
		view("u1", "/articles/a2", 5),
		view("u1", "/articles/a1", 0),
		register("u1", 10),
	}

	journeys := Extract(events)

	if len(journeys) != 1 {
		t.Fatalf("expected 1 journey, got %d", len(journeys))
	}

	if journeys[0].Pages[0] != "/articles/a1" || journeys[0].Pages[1] != "/articles/a2" {
		t.Errorf("expected timestamp order, got %v", journeys[0].Pages)
	}
}

// non-content URLs never enter a journey
func TestExtractFiltersNonContentURLs(t *testing.T) {
	events := []hitlog.Event{
		view("u1", "/about", 0),
		view("u1", "/articles/a1", 5),
		view("u1", "/pricing", 7),
		register("u1", 10),
		view("u2", "/about", 0),
		register("u2", 5),
	}

	journeys := Extract(events)

	if len(journeys) != 1 {
		t.Fatalf("expected 1 journey (u2 has no article views), got %d", len(journeys))
	}

	if len(journeys[0].Pages) != 1 || journeys[0].Pages[0] != "/articles/a1" {
		t.Errorf("non-content URLs must be excluded, got %v", journeys[0].Pages)
	}
}

func TestExtractUserOrderIsDeterministic(t *testing.T) {
	events := []hitlog.Event{
		view("u2", "/articles/a1", 0),
		register("u2", 5),
		view("u1", "/articles/a2", 0),
		register("u1", 5),
	}

	journeys := Extract(events)

	if len(journeys) != 2 {
		t.Fatalf("expected 2 journeys, got %d", len(journeys))
	}

	if journeys[0].UserID != "u2" || journeys[1].UserID != "u1" {
		t.Errorf("expected first-appearance order [u2 u1], got [%s %s]", journeys[0].UserID, journeys[1].UserID)
	}
}

package synth

import (
	"strings"
	"testing"

	"codeberg.org/hitlog/analyzer/internal/attribution"
	"codeberg.org/hitlog/analyzer/internal/hitlog"
	"codeberg.org/hitlog/analyzer/internal/influence"
	"codeberg.org/hitlog/analyzer/internal/journey"
)

func mustGenerate(t *testing.T, seed int64, opts Options) []hitlog.Event {
	t.Helper()

	events, err := New(seed).Generate(opts)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	return events
}

func TestGenerateShape(t *testing.T) {
	opts := Options{Users: 20, Articles: 5, MaxPerJourney: 3, RegistrationRate: 0.5}
	events := mustGenerate(t, 1, opts)

	if len(events) == 0 {
		t.Fatal("expected events, got none")
	}

	for _, ev := range events {
		if !ev.IsArticle() && !ev.IsRegistration() {
			t.Errorf("unexpected page_url: %s", ev.PageURL)
		}

		if ev.UserID == "" || ev.PageName == "" {
			t.Errorf("incomplete event: %+v", ev)
		}
	}
}

func TestGenerateIsReproducible(t *testing.T) {
	opts := Options{Users: 50, Articles: 10, MaxPerJourney: 4, RegistrationRate: 0.3}

	first := mustGenerate(t, 42, opts)
	second := mustGenerate(t, 42, opts)

	if len(first) != len(second) {
		t.Fatalf("same seed produced %d vs %d events", len(first), len(second))
	}

	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("event %d differs: %+v vs %+v", i, first[i], second[i])
		}
	}

	other := mustGenerate(t, 43, opts)

	if len(other) == len(first) {
		same := true

		for i := range first {
			if first[i] != other[i] {
				same = false
				break
			}
		}

		if same {
			t.Error("different seeds produced identical logs")
		}
	}
}

// generated data must round-trip the exchange format and analyze cleanly
// under every policy
func TestGenerateRoundTrip(t *testing.T) {
	events := mustGenerate(t, 7, Options{Users: 100, Articles: 10, MaxPerJourney: 5, RegistrationRate: 0.4})

	var b strings.Builder

	if err := hitlog.Write(&b, events); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	parsed, err := hitlog.Read(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if len(parsed) != len(events) {
		t.Fatalf("round trip lost events: %d vs %d", len(parsed), len(events))
	}

	journeys := journey.Extract(parsed)

	for _, p := range attribution.Policies() {
		rows := influence.Aggregate(journeys, p)

		for _, row := range rows {
			if !strings.HasPrefix(row.PageURL, hitlog.ArticlePrefix) {
				t.Errorf("policy %s produced non-article row %+v", p, row)
			}

			if row.Total < 0 {
				t.Errorf("policy %s produced negative credit: %+v", p, row)
			}
		}
	}
}

func TestGenerateJourneyLengthBounds(t *testing.T) {
	opts := Options{Users: 200, Articles: 20, MaxPerJourney: 3, RegistrationRate: 1.0}
	events := mustGenerate(t, 11, opts)

	perUser := make(map[string]int)

	for _, ev := range events {
		if ev.IsArticle() {
			perUser[ev.UserID]++
		}
	}

	for user, count := range perUser {
		if count < 1 || count > opts.MaxPerJourney {
			t.Errorf("user %s has %d article views, want 1..%d", user, count, opts.MaxPerJourney)
		}
	}
}

// out-of-range options come back as errors, never panics
func TestGenerateRejectsInvalidOptions(t *testing.T) {
	valid := DefaultOptions()

	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{"zero max per journey", func(o *Options) { o.MaxPerJourney = 0 }},
		{"negative max per journey", func(o *Options) { o.MaxPerJourney = -3 }},
		{"zero articles", func(o *Options) { o.Articles = 0 }},
		{"negative users", func(o *Options) { o.Users = -1 }},
		{"rate above one", func(o *Options) { o.RegistrationRate = 1.5 }},
		{"negative rate", func(o *Options) { o.RegistrationRate = -0.1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := valid
			tt.mutate(&opts)

			if _, err := New(1).Generate(opts); err == nil {
				t.Errorf("expected error for %+v, got nil", opts)
			}
		})
	}

	if err := valid.Validate(); err != nil {
		t.Errorf("default options should validate, got %v", err)
	}
}

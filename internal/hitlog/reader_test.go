package hitlog

import (
	"errors"
	"strings"
	"testing"
	"time"
)

func TestReadValidHitlog(t *testing.T) {
	input := strings.Join([]string{
		"page_name,page_url,user_id,timestamp",
		"article1,/articles/article1,u1,2024-01-01 10:00:00",
		"Register,/register,u1,2024-01-01 10:05:00",
	}, "\n")

	events, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}

	want := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	if !events[0].Timestamp.Equal(want) {
		t.Errorf("expected timestamp %v, got %v", want, events[0].Timestamp)
	}

	if !events[0].IsArticle() {
		t.Error("first event should be an article view")
	}

	if !events[1].IsRegistration() {
		t.Error("second event should be a registration")
	}
}

// column order does not matter and extra columns are ignored
func TestReadColumnMapping(t *testing.T) {
	input := strings.Join([]string{
		"timestamp,extra,user_id,page_url,page_name",
		"2024-01-01 10:00:00,ignored,u1,/articles/a1,a1",
	}, "\n")

	events, err := Read(strings.NewReader(input))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}

	if events[0].PageURL != "/articles/a1" || events[0].UserID != "u1" {
		t.Errorf("columns mapped incorrectly: %+v", events[0])
	}
}

func TestReadMissingColumn(t *testing.T) {
	input := strings.Join([]string{
		"page_name,page_url,timestamp",
		"a1,/articles/a1,2024-01-01 10:00:00",
	}, "\n")

	_, err := Read(strings.NewReader(input))

	if err == nil {
		t.Fatal("expected error for missing user_id column")
	}

	if !IsMalformed(err) {
		t.Errorf("expected MalformedInputError, got %T: %v", err, err)
	}
}

func TestReadBadTimestamp(t *testing.T) {
	input := strings.Join([]string{
		"page_name,page_url,user_id,timestamp",
		"a1,/articles/a1,u1,2024-01-01 10:00:00",
		"a2,/articles/a2,u1,not-a-time",
	}, "\n")

	_, err := Read(strings.NewReader(input))

	if err == nil {
		t.Fatal("expected error for unparseable timestamp")
	}

	var malformed *MalformedInputError

	if !errors.As(err, &malformed) {
		t.Fatalf("expected MalformedInputError, got %T: %v", err, err)
	}

	// offending row is identified
	if malformed.Line != 3 {
		t.Errorf("expected line 3, got %d", malformed.Line)
	}
}

func TestReadEmptyInput(t *testing.T) {
	if _, err := Read(strings.NewReader("")); !IsMalformed(err) {
		t.Errorf("expected MalformedInputError for empty input, got %v", err)
	}
}

func TestReadEmptyPageURL(t *testing.T) {
	input := strings.Join([]string{
		"page_name,page_url,user_id,timestamp",
		"a1,,u1,2024-01-01 10:00:00",
	}, "\n")

	if _, err := Read(strings.NewReader(input)); !IsMalformed(err) {
		t.Errorf("expected MalformedInputError for empty page_url, got %v", err)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	events := []Event{
		{PageName: "a1", PageURL: "/articles/a1", UserID: "u1", Timestamp: time.Date(2024, 3, 21, 10, 0, 0, 0, time.UTC)},
		{PageName: "Register", PageURL: RegistrationURL, UserID: "u1", Timestamp: time.Date(2024, 3, 21, 10, 4, 0, 0, time.UTC)},
	}

	var b strings.Builder

	if err := Write(&b, events); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	got, err := Read(strings.NewReader(b.String()))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if len(got) != len(events) {
		t.Fatalf("expected %d events, got %d", len(events), len(got))
	}

	for i := range events {
		if got[i] != events[i] {
			t.Errorf("event %d: expected %+v, got %+v", i, events[i], got[i])
		}
	}
}

package hitlog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// required hitlog columns, matched by header name
var requiredColumns = []string{"page_name", "page_url", "user_id", "timestamp"}

// Read parses a hitlog from CSV. The header row names the columns; order does
// not matter and extra columns are ignored. Rows keep their original order so
// downstream stable sorts can break timestamp ties by log position.
func Read(r io.Reader) ([]Event, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, &MalformedInputError{Err: errors.New("missing header row")}
	}

	if err != nil {
		return nil, &MalformedInputError{Err: err}
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, &MalformedInputError{Err: fmt.Errorf("missing required column %q", name)}
		}
	}

	var events []Event
	line := 1

	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}

		line++

		if err != nil {
			return nil, &MalformedInputError{Line: line, Err: err}
		}

		row := make(map[string]string, len(requiredColumns))

		for _, name := range requiredColumns {
			idx := cols[name]
			if idx >= len(record) {
				return nil, &MalformedInputError{Line: line, Err: fmt.Errorf("missing value for column %q", name)}
			}

			row[name] = record[idx]
		}

		if row["page_url"] == "" {
			return nil, &MalformedInputError{Line: line, Err: errors.New("page_url must not be empty")}
		}

		ts, err := time.Parse(TimestampLayout, row["timestamp"])
		if err != nil {
			return nil, &MalformedInputError{Line: line, Err: fmt.Errorf("unparseable timestamp %q", row["timestamp"])}
		}

		events = append(events, Event{
			PageName:  row["page_name"],
			PageURL:   row["page_url"],
			UserID:    row["user_id"],
			Timestamp: ts,
		})
	}

	return events, nil
}

// ReadFile loads a hitlog CSV from disk.
func ReadFile(path string) ([]Event, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open hitlog %s: %w", path, err)
	}

	defer f.Close() //nolint:errcheck,gosec // read-only file

	events, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read hitlog %s: %w", path, err)
	}

	return events, nil
}

// IsMalformed reports whether err stems from unusable hitlog input.
func IsMalformed(err error) bool {
	var malformed *MalformedInputError
	return errors.As(err, &malformed)
}

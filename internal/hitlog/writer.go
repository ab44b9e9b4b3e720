package hitlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
)

// Write renders events in the hitlog exchange format.
func Write(w io.Writer, events []Event) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(requiredColumns); err != nil {
		return fmt.Errorf("failed to write hitlog header: %w", err)
	}

	for _, ev := range events {
		record := []string{
			ev.PageName,
			ev.PageURL,
			ev.UserID,
			ev.Timestamp.Format(TimestampLayout),
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write hitlog row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// WriteFile saves events as a hitlog CSV on disk.
func WriteFile(path string, events []Event) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create hitlog %s: %w", path, err)
	}

	if err := Write(f, events); err != nil {
		f.Close() //nolint:errcheck,gosec // write error takes precedence
		return err
	}

	return f.Close()
}

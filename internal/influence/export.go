package influence

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// result exchange format columns
var resultColumns = []string{"page_name", "page_url", "total"}

// WriteCSV renders rows in the result exchange format.
func WriteCSV(w io.Writer, rows []Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(resultColumns); err != nil {
		return fmt.Errorf("failed to write result header: %w", err)
	}

	for _, row := range rows {
		record := []string{
			row.PageName,
			row.PageURL,
			strconv.FormatFloat(row.Total, 'g', -1, 64),
		}

		if err := cw.Write(record); err != nil {
			return fmt.Errorf("failed to write result row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

// WriteCSVFile saves rows as a result CSV on disk.
func WriteCSVFile(path string, rows []Row) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create result file %s: %w", path, err)
	}

	if err := WriteCSV(f, rows); err != nil {
		f.Close() //nolint:errcheck,gosec // write error takes precedence
		return err
	}

	return f.Close()
}

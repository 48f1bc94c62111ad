package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// Row represents a single CSV row with column name to value mapping.
type Row map[string]string

// LoadCSV reads a CSV file and returns rows as maps of column to value.
// The first row is treated as headers (column names). Header names are
// trimmed and a leading byte order mark is dropped. Blank lines are skipped.
func LoadCSV(path string) ([]Row, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("csv: open %s: %w", path, err)
	}
	defer f.Close() //nolint:errcheck

	reader := csv.NewReader(f)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv: parse %s: %w", path, err)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("csv: %s is empty (no header row)", path)
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}
	rows := make([]Row, 0, len(records)-1)

	for i, record := range records[1:] {
		if len(record) != len(headers) {
			return nil, fmt.Errorf("csv: row %d has %d columns, expected %d", i+2, len(record), len(headers))
		}
		row := make(Row, len(headers))
		for j, h := range headers {
			row[h] = strings.TrimSpace(record[j])
		}
		rows = append(rows, row)
	}

	return rows, nil
}

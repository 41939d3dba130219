// Package loader reads source and output CSV tables into typed rows.
package loader

import (
	"encoding/csv"
	"os"
	"strings"

	"github.com/rotisserie/eris"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Table is a loaded CSV file: the header in file order plus one map per row.
type Table struct {
	Header []string
	Rows   []Row
}

// Row maps column name to raw cell value.
type Row map[string]string

// Get returns the trimmed value of a column, or "" if absent.
func (r Row) Get(col string) string {
	return strings.TrimSpace(r[col])
}

// ReadTable reads a comma-separated UTF-8 file into a Table. A leading
// byte-order mark on the header is stripped. Rows shorter than the header
// leave the trailing columns empty; extra cells are dropped.
func ReadTable(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, eris.Wrapf(err, "loader: open %s", path)
	}
	defer f.Close()

	reader := csv.NewReader(transform.NewReader(f, unicode.UTF8BOM.NewDecoder()))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, eris.Wrapf(err, "loader: read %s", path)
	}
	if len(records) == 0 {
		return nil, eris.Errorf("loader: %s has no header row", path)
	}

	header := make([]string, len(records[0]))
	for i, col := range records[0] {
		header[i] = strings.TrimSpace(col)
	}

	table := &Table{Header: header, Rows: make([]Row, 0, len(records)-1)}
	for _, record := range records[1:] {
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

// Serialize flattens the rows back into header-ordered records, suitable for
// rewriting the table after an in-place migration.
func (t *Table) Serialize() [][]string {
	records := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		record := make([]string, len(t.Header))
		for i, col := range t.Header {
			record[i] = row[col]
		}
		records = append(records, record)
	}
	return records
}

// requireColumns verifies that the table header contains every named column.
func requireColumns(t *Table, path string, cols ...string) error {
	have := make(map[string]bool, len(t.Header))
	for _, col := range t.Header {
		have[col] = true
	}
	for _, col := range cols {
		if !have[col] {
			return eris.Errorf("loader: %s missing required column %q", path, col)
		}
	}
	return nil
}

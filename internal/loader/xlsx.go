package loader

import (
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
)

// ReadTableXLSX reads one sheet of an XLSX workbook into a Table, treating
// the first row as the header.
func ReadTableXLSX(path string, sheetIndex int) (*Table, error) {
	f, err := xlsx.OpenFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "loader: open xlsx %s", path)
	}
	if sheetIndex >= len(f.Sheets) {
		return nil, eris.Errorf("loader: sheet index %d out of range (file has %d sheets)", sheetIndex, len(f.Sheets))
	}
	sheet := f.Sheets[sheetIndex]

	if len(sheet.Rows) == 0 {
		return nil, eris.Errorf("loader: %s has no header row", path)
	}

	header := rowToStrings(sheet.Rows[0])
	for i, col := range header {
		header[i] = strings.TrimSpace(col)
	}

	table := &Table{Header: header, Rows: make([]Row, 0, len(sheet.Rows)-1)}
	for _, xr := range sheet.Rows[1:] {
		cells := rowToStrings(xr)
		row := make(Row, len(header))
		for i, col := range header {
			if i < len(cells) {
				row[col] = cells[i]
			}
		}
		table.Rows = append(table.Rows, row)
	}
	return table, nil
}

func rowToStrings(row *xlsx.Row) []string {
	cells := make([]string, len(row.Cells))
	for i, cell := range row.Cells {
		cells[i] = cell.String()
	}
	return cells
}

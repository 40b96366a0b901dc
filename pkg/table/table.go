// Package table provides the in-memory tabular structure the frequency
// pipeline reads from, with loaders for CSV and XLSX survey exports.
package table

import (
	"fmt"
	"strings"
)

// Table is a rectangular, in-memory table with named columns. Cells are raw
// strings; a cell that is empty after trimming is reported as missing, since
// neither CSV nor XLSX distinguish an absent value from an empty one.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

// New builds a table from a header and row slices. Rows shorter than the
// header are allowed; the absent cells are missing.
func New(columns []string, rows [][]string) *Table {
	idx := make(map[string]int, len(columns))
	for i, c := range columns {
		idx[c] = i
	}
	return &Table{columns: columns, index: idx, rows: rows}
}

// Columns returns the column names in declaration order.
func (t *Table) Columns() []string {
	return t.columns
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// Cell returns the value at (row, column) and whether it is present.
// Missing means: unknown column, row out of range, the row is too short,
// or the cell is empty after trimming.
func (t *Table) Cell(row int, column string) (string, bool) {
	ci, ok := t.index[column]
	if !ok || row < 0 || row >= len(t.rows) {
		return "", false
	}
	cells := t.rows[row]
	if ci >= len(cells) {
		return "", false
	}
	v := strings.TrimSpace(cells[ci])
	if v == "" {
		return "", false
	}
	return v, true
}

// RenameColumns replaces all column names positionally. Survey exports carry
// the full question text as headers; runs replace them with short names
// before designating columns.
func (t *Table) RenameColumns(names []string) error {
	if len(names) != len(t.columns) {
		return fmt.Errorf("rename columns: got %d names for %d columns", len(names), len(t.columns))
	}
	idx := make(map[string]int, len(names))
	for i, c := range names {
		idx[c] = i
	}
	t.columns = append([]string(nil), names...)
	t.index = idx
	return nil
}

// HasColumn reports whether the named column exists.
func (t *Table) HasColumn(column string) bool {
	_, ok := t.index[column]
	return ok
}

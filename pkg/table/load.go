package table

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Open loads a table from path, dispatching on the file extension:
// .xlsx (and .xlsm) via excelize, anything else as CSV.
func Open(path string) (*Table, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return LoadXLSX(path)
	default:
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return LoadCSV(f)
	}
}

// LoadCSV reads a CSV stream whose first record is the header.
// Records may have varying field counts; short rows are padded by Cell's
// missing semantics rather than rejected.
func LoadCSV(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("load csv: empty input")
	}
	if err != nil {
		return nil, fmt.Errorf("load csv: %w", err)
	}

	var rows [][]string
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("load csv: %w", err)
		}
		rows = append(rows, rec)
	}
	return New(header, rows), nil
}

// LoadXLSX reads the first sheet of an XLSX workbook; the first row is the
// header.
func LoadXLSX(path string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("load xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("load xlsx: workbook has no sheets")
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("load xlsx: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("load xlsx: sheet %q is empty", sheets[0])
	}
	return New(rows[0], rows[1:]), nil
}

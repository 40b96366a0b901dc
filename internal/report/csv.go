package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// WriteCSV writes the padded table: {col}_Word and {col}_Frequency headers
// per designated column, then Overall_Word and Overall_Frequency. All
// columns share the padded row count.
func (f *Frequencies) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)

	pairs := append(append([]ColumnPair(nil), f.Columns...), f.Overall)
	header := make([]string, 0, 2*len(pairs))
	for _, p := range pairs {
		header = append(header, p.Name+"_Word", p.Name+"_Frequency")
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	record := make([]string, 2*len(pairs))
	for row := 0; row < f.Rows; row++ {
		for i, p := range pairs {
			record[2*i] = p.Words[row]
			record[2*i+1] = strconv.Itoa(p.Frequencies[row])
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write csv row %d: %w", row, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteSummaryCSV writes the overall ranking as Word,Frequency,Respondents,
// where Respondents is the number of distinct rows the word occurred in.
// No padding: the summary is not rectangular-aligned with anything.
func (f *Frequencies) WriteSummaryCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"Word", "Frequency", "Respondents"}); err != nil {
		return fmt.Errorf("write summary header: %w", err)
	}
	for _, e := range Rank(f.overall) {
		rec := []string{e.Word, strconv.Itoa(e.Frequency), strconv.Itoa(f.overall.Rows(e.Word))}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write summary row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// SaveCSV writes the table to path, creating or truncating it.
func (f *Frequencies) SaveCSV(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.WriteCSV(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// SaveSummaryCSV writes the summary to path, creating or truncating it.
func (f *Frequencies) SaveSummaryCSV(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := f.WriteSummaryCSV(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

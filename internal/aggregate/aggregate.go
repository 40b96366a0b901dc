package aggregate

import (
	"fmt"
	"log/slog"

	"github.com/usestring/surveyfreq/internal/tokenize"
	"github.com/usestring/surveyfreq/pkg/table"
)

// Aggregate runs one counting pass: for every row of tab, in table order,
// each designated column's cell is tokenized under policy and its tokens
// counted into that column's counter. Missing cells are skipped. The input
// table is not mutated; the returned counters are final.
func Aggregate(tab *table.Table, columns []string, tok *tokenize.Tokenizer, policy tokenize.Policy) (map[string]*Counter, error) {
	counters := make(map[string]*Counter, len(columns))
	for _, col := range columns {
		if !tab.HasColumn(col) {
			return nil, fmt.Errorf("aggregate: table has no column %q", col)
		}
		counters[col] = NewCounter()
	}

	for row := 0; row < tab.Len(); row++ {
		for _, col := range columns {
			cell, ok := tab.Cell(row, col)
			if !ok {
				continue
			}
			tokens, err := tok.Tokenize(cell, policy)
			if err != nil {
				return nil, fmt.Errorf("aggregate %s row %d column %q: %w", policy.Name(), row, col, err)
			}
			for _, t := range tokens {
				counters[col].Add(t, uint32(row))
			}
		}
	}

	for _, col := range columns {
		slog.Debug("aggregated column",
			"policy", policy.Name(),
			"column", col,
			"distinct_tokens", counters[col].Len(),
			"total_tokens", counters[col].Total())
	}
	return counters, nil
}

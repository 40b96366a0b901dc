// Package report turns finalized frequency counters into a rectangular,
// alignment-padded output table and exports it as CSV.
package report

import (
	"sort"

	"github.com/usestring/surveyfreq/internal/aggregate"
)

// Entry is one (word, frequency) pair of a ranked list.
type Entry struct {
	Word      string
	Frequency int
}

// RankedList holds a counter's entries ordered by descending frequency.
// Equal frequencies keep the counter's first-seen order (stable sort).
type RankedList []Entry

// Rank derives the ranked list for a finalized counter.
func Rank(c *aggregate.Counter) RankedList {
	tokens := c.Tokens()
	list := make(RankedList, 0, len(tokens))
	for _, t := range tokens {
		list = append(list, Entry{Word: t, Frequency: c.Count(t)})
	}
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].Frequency > list[j].Frequency
	})
	return list
}

// ColumnPair is the aligned (words, frequencies) output for one source
// column. Both slices share the table-wide padded length.
type ColumnPair struct {
	Name        string
	Words       []string
	Frequencies []int
}

// Frequencies is the assembled output table: one pair per designated column
// in designation order, then the overall pair. Every pair has Rows entries.
type Frequencies struct {
	Columns []ColumnPair
	Overall ColumnPair
	Rows    int

	overall *aggregate.Counter
}

// Build assembles the output table from per-column counters. The overall
// counter is the coordinate-wise sum over columns in designation order.
// Every ranked list is right-padded with ("", 0) to the longest list's
// length. Zero designated columns yield zero rows and only the overall pair.
func Build(counters map[string]*aggregate.Counter, columns []string) *Frequencies {
	overall := aggregate.NewCounter()
	ranked := make(map[string]RankedList, len(columns))
	maxLen := 0

	for _, col := range columns {
		list := Rank(counters[col])
		ranked[col] = list
		overall.Merge(counters[col])
		if len(list) > maxLen {
			maxLen = len(list)
		}
	}
	overallList := Rank(overall)
	if len(overallList) > maxLen {
		maxLen = len(overallList)
	}

	out := &Frequencies{Rows: maxLen, overall: overall}
	for _, col := range columns {
		words, freqs := pad(ranked[col], maxLen)
		out.Columns = append(out.Columns, ColumnPair{Name: col, Words: words, Frequencies: freqs})
	}
	words, freqs := pad(overallList, maxLen)
	out.Overall = ColumnPair{Name: "Overall", Words: words, Frequencies: freqs}
	return out
}

// pad splits a ranked list into aligned word and frequency slices, right-
// padded with the empty word and zero frequency up to length n.
func pad(list RankedList, n int) ([]string, []int) {
	words := make([]string, n)
	freqs := make([]int, n)
	for i, e := range list {
		words[i] = e.Word
		freqs[i] = e.Frequency
	}
	return words, freqs
}

// Package aggregate accumulates token frequencies per designated column.
package aggregate

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// Counter is an insertion-ordered token frequency counter. First-seen order
// is preserved so ranked lists can break frequency ties deterministically.
// Alongside the count, each token keeps a bitmap of the row IDs it occurred
// in, which yields distinct-respondent figures for the summary artifact.
type Counter struct {
	counts map[string]int
	order  []string
	rows   map[string]*roaring.Bitmap
}

// NewCounter returns an empty counter.
func NewCounter() *Counter {
	return &Counter{
		counts: make(map[string]int),
		rows:   make(map[string]*roaring.Bitmap),
	}
}

// Add records one occurrence of token in the given row. Empty tokens are
// never stored; padding is a presentation concern, not a counting one.
func (c *Counter) Add(token string, row uint32) {
	if token == "" {
		return
	}
	if _, seen := c.counts[token]; !seen {
		c.order = append(c.order, token)
		c.rows[token] = roaring.New()
	}
	c.counts[token]++
	c.rows[token].Add(row)
}

// Count returns the occurrence count for token (zero if absent).
func (c *Counter) Count(token string) int {
	return c.counts[token]
}

// Tokens returns all tokens in first-seen order.
func (c *Counter) Tokens() []string {
	return c.order
}

// Rows returns the number of distinct rows token occurred in.
func (c *Counter) Rows(token string) int {
	bm, ok := c.rows[token]
	if !ok {
		return 0
	}
	return int(bm.GetCardinality())
}

// Len returns the number of distinct tokens.
func (c *Counter) Len() int {
	return len(c.order)
}

// Total returns the sum of all counts.
func (c *Counter) Total() int {
	total := 0
	for _, n := range c.counts {
		total += n
	}
	return total
}

// Merge adds other's counts coordinate-wise into c and ORs the row bitmaps.
// Tokens new to c keep other's relative order after c's existing tokens.
func (c *Counter) Merge(other *Counter) {
	for _, token := range other.order {
		if _, seen := c.counts[token]; !seen {
			c.order = append(c.order, token)
			c.rows[token] = roaring.New()
		}
		c.counts[token] += other.counts[token]
		c.rows[token].Or(other.rows[token])
	}
}

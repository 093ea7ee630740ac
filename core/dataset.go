// Package core has core logic for series derivation, peak detection and
// contribution attribution.
package core

import (
	"sort"
	"time"

	"github.com/huangsam/wikitrend/schema"
)

// Table is the immutable in-memory pageview dataset. It is constructed once
// at startup; every derived view (filtered, grouped, top-N) is a pure
// function producing a new value, never mutating the shared table.
type Table struct {
	// records is sorted by (date, article) so range queries can binary
	// search and per-day scans touch only the records of that day.
	records []schema.PageviewRecord
}

// NewTable builds a table from a freshly loaded record set.
// The input slice is copied; callers may discard it afterwards.
func NewTable(records []schema.PageviewRecord) *Table {
	sorted := make([]schema.PageviewRecord, len(records))
	copy(sorted, records)
	for i := range sorted {
		sorted[i].Date = schema.Day(sorted[i].Date)
	}
	sort.Slice(sorted, func(i, j int) bool {
		if !sorted[i].Date.Equal(sorted[j].Date) {
			return sorted[i].Date.Before(sorted[j].Date)
		}
		return sorted[i].Article < sorted[j].Article
	})
	return &Table{records: sorted}
}

// Len returns the number of records in the table.
func (t *Table) Len() int {
	return len(t.records)
}

// Records returns the date-ordered records. The slice is shared with the
// table and must not be modified.
func (t *Table) Records() []schema.PageviewRecord {
	return t.records
}

// Bounds returns the first and last record dates. Zero times when empty.
func (t *Table) Bounds() (time.Time, time.Time) {
	if len(t.records) == 0 {
		return time.Time{}, time.Time{}
	}
	return t.records[0].Date, t.records[len(t.records)-1].Date
}

// Range returns the sub-table of records with start <= date <= end.
// A zero start or end leaves that side unbounded. The result shares the
// backing array, so a range query costs O(log n) plus the records in range.
func (t *Table) Range(start, end time.Time) *Table {
	lo := 0
	if !start.IsZero() {
		day := schema.Day(start)
		lo = sort.Search(len(t.records), func(i int) bool {
			return !t.records[i].Date.Before(day)
		})
	}
	hi := len(t.records)
	if !end.IsZero() {
		day := schema.Day(end)
		hi = sort.Search(len(t.records), func(i int) bool {
			return t.records[i].Date.After(day)
		})
	}
	if lo > hi {
		lo = hi
	}
	return &Table{records: t.records[lo:hi]}
}

// Day returns the sub-table of records on exactly the given day.
func (t *Table) Day(date time.Time) *Table {
	day := schema.Day(date)
	return t.Range(day, day)
}

// Year returns the sub-table of records within the given calendar year.
// Year 0 returns the table unchanged.
func (t *Table) Year(year int) *Table {
	if year == 0 {
		return t
	}
	start := time.Date(year, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, 12, 31, 0, 0, 0, 0, time.UTC)
	return t.Range(start, end)
}

// Exclude returns a new table without the named articles. Unlike Range this
// copies the surviving records, since exclusion is not contiguous.
func (t *Table) Exclude(articles ...string) *Table {
	if len(articles) == 0 {
		return t
	}
	drop := make(map[string]struct{}, len(articles))
	for _, a := range articles {
		drop[a] = struct{}{}
	}
	kept := make([]schema.PageviewRecord, 0, len(t.records))
	for _, r := range t.records {
		if _, ok := drop[r.Article]; ok {
			continue
		}
		kept = append(kept, r)
	}
	return &Table{records: kept}
}

// ArticleCount returns the number of distinct articles in the table.
func (t *Table) ArticleCount() int {
	seen := make(map[string]struct{})
	for _, r := range t.records {
		seen[r.Article] = struct{}{}
	}
	return len(seen)
}

package core

import (
	"testing"
	"time"

	"github.com/huangsam/wikitrend/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func rec(article string, date time.Time, views int64) schema.PageviewRecord {
	return schema.PageviewRecord{Article: article, Date: date, Views: views}
}

// sampleTable covers two years, duplicate article rows and a zero-view day.
func sampleTable() *Table {
	return NewTable([]schema.PageviewRecord{
		rec("Coronavirus", day(2023, 2, 6), 300),
		rec("Lockdown", day(2023, 2, 6), 100),
		rec("Quarantine", day(2023, 2, 6), 100),
		rec("Coronavirus", day(2023, 2, 7), 500),
		rec("Coronavirus", day(2023, 2, 7), 200), // duplicate row, summed on demand
		rec("Lockdown", day(2023, 2, 8), 50),
		rec("Quarantine", day(2023, 3, 1), 0),
		rec("Coronavirus", day(2024, 1, 15), 40),
		rec("Pandemic", day(2024, 1, 15), 60),
	})
}

// TestNewTable tests construction ordering and normalization.
func TestNewTable(t *testing.T) {
	table := NewTable([]schema.PageviewRecord{
		rec("B", day(2023, 5, 2), 2),
		rec("A", time.Date(2023, 5, 1, 14, 30, 0, 0, time.UTC), 1), // not midnight
		rec("A", day(2023, 5, 2), 3),
	})

	records := table.Records()
	require.Len(t, records, 3)
	assert.Equal(t, "A", records[0].Article)
	assert.Equal(t, day(2023, 5, 1), records[0].Date, "dates normalized to UTC midnight")
	assert.Equal(t, "A", records[1].Article, "same-day ties ordered by article")
	assert.Equal(t, "B", records[2].Article)

	first, last := table.Bounds()
	assert.Equal(t, day(2023, 5, 1), first)
	assert.Equal(t, day(2023, 5, 2), last)
}

// TestTableRange tests date-bounded sub-tables.
func TestTableRange(t *testing.T) {
	table := sampleTable()

	t.Run("bounded range", func(t *testing.T) {
		sub := table.Range(day(2023, 2, 7), day(2023, 2, 8))
		assert.Equal(t, 3, sub.Len())
	})

	t.Run("open start", func(t *testing.T) {
		sub := table.Range(time.Time{}, day(2023, 2, 6))
		assert.Equal(t, 3, sub.Len())
	})

	t.Run("open end", func(t *testing.T) {
		sub := table.Range(day(2024, 1, 1), time.Time{})
		assert.Equal(t, 2, sub.Len())
	})

	t.Run("empty range", func(t *testing.T) {
		sub := table.Range(day(2025, 1, 1), day(2025, 12, 31))
		assert.Equal(t, 0, sub.Len())
	})

	t.Run("range does not mutate parent", func(t *testing.T) {
		before := table.Len()
		_ = table.Range(day(2023, 2, 7), day(2023, 2, 7))
		assert.Equal(t, before, table.Len())
	})
}

// TestTableYear tests calendar-year filtering.
func TestTableYear(t *testing.T) {
	table := sampleTable()
	assert.Equal(t, 7, table.Year(2023).Len())
	assert.Equal(t, 2, table.Year(2024).Len())
	assert.Equal(t, table.Len(), table.Year(0).Len(), "year 0 means no filter")
}

// TestTableExclude tests article exclusion.
func TestTableExclude(t *testing.T) {
	table := sampleTable()
	sub := table.Exclude("Coronavirus")
	assert.Equal(t, 5, sub.Len())
	for _, r := range sub.Records() {
		assert.NotEqual(t, "Coronavirus", r.Article)
	}
	assert.Equal(t, 9, table.Len(), "exclusion leaves the parent intact")
}

// TestArticleCount tests distinct article counting.
func TestArticleCount(t *testing.T) {
	assert.Equal(t, 4, sampleTable().ArticleCount())
	assert.Equal(t, 0, NewTable(nil).ArticleCount())
}

// TestBuildDailySeries tests aggregate series derivation.
func TestBuildDailySeries(t *testing.T) {
	series := BuildDailySeries(sampleTable())

	require.Len(t, series.Points, 5)
	assert.Equal(t, int64(500), series.Points[0].Views, "per-day records summed")
	assert.Equal(t, int64(700), series.Points[1].Views, "duplicate article rows summed")

	for i := 1; i < len(series.Points); i++ {
		assert.True(t, series.Points[i-1].Date.Before(series.Points[i].Date),
			"series dates strictly ascending")
	}

	t.Run("per-day totals match record sums", func(t *testing.T) {
		table := sampleTable()
		for _, p := range series.Points {
			var sum int64
			for _, r := range table.Day(p.Date).Records() {
				sum += r.Views
			}
			assert.Equal(t, sum, p.Views, "date %s", p.Date)
		}
	})
}

// TestSummarize tests the dataset overview.
func TestSummarize(t *testing.T) {
	summary := Summarize(sampleTable())
	assert.Equal(t, 9, summary.Records)
	assert.Equal(t, 4, summary.Articles)
	assert.Equal(t, int64(1350), summary.TotalViews)
	assert.InDelta(t, 150.0, summary.MeanViews, 1e-9)
	assert.Equal(t, day(2023, 2, 6), summary.FirstDate)
	assert.Equal(t, day(2024, 1, 15), summary.LastDate)

	empty := Summarize(NewTable(nil))
	assert.Zero(t, empty.Records)
	assert.Zero(t, empty.MeanViews)
}

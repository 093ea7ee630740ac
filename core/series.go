package core

import (
	"github.com/huangsam/wikitrend/schema"
)

// BuildDailySeries derives the date-ordered aggregate pageview series from
// the table. Dates in the result are unique and strictly ascending; days
// with no records do not appear.
func BuildDailySeries(t *Table) schema.DailySeries {
	records := t.Records()
	var points []schema.DailyPoint
	for i := 0; i < len(records); {
		date := records[i].Date
		var total int64
		for i < len(records) && records[i].Date.Equal(date) {
			total += records[i].Views
			i++
		}
		points = append(points, schema.DailyPoint{Date: date, Views: total})
	}
	return schema.DailySeries{Points: points}
}

// Summarize computes the dataset overview: counts, total and mean views,
// and the covered date range.
func Summarize(t *Table) schema.SummaryResult {
	first, last := t.Bounds()
	result := schema.SummaryResult{
		Records:   t.Len(),
		Articles:  t.ArticleCount(),
		FirstDate: first,
		LastDate:  last,
	}
	for _, r := range t.Records() {
		result.TotalViews += r.Views
	}
	if result.Records > 0 {
		result.MeanViews = float64(result.TotalViews) / float64(result.Records)
	}
	return result
}

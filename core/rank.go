package core

import (
	"sort"
	"time"

	"github.com/huangsam/wikitrend/schema"
)

// TopArticles ranks articles by total pageviews over the table's records and
// returns the top 'limit' with their percent share of the range total.
// Ties are broken by article name so repeated runs agree.
func TopArticles(t *Table, limit int) schema.TopArticlesResult {
	sums := make(map[string]int64)
	var rangeTotal int64
	for _, r := range t.Records() {
		sums[r.Article] += r.Views
		rangeTotal += r.Views
	}

	ranked := make([]schema.ArticleTotal, 0, len(sums))
	for article, views := range sums {
		ranked = append(ranked, schema.ArticleTotal{Article: article, Views: views})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Views != ranked[j].Views {
			return ranked[i].Views > ranked[j].Views
		}
		return ranked[i].Article < ranked[j].Article
	})
	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	for i := range ranked {
		if rangeTotal > 0 {
			ranked[i].Share = 100 * float64(ranked[i].Views) / float64(rangeTotal)
		}
	}

	return schema.TopArticlesResult{Articles: ranked, RangeViews: rangeTotal}
}

// MonthlyBreakdown computes, for the given year's table, the per-month view
// sums of that year's top 'limit' articles. Points are ordered by month and,
// within a month, by the article's overall rank.
func MonthlyBreakdown(t *Table, year, limit int) schema.MonthlyResult {
	yearTable := t.Year(year)
	top := TopArticles(yearTable, limit)

	rank := make(map[string]int, len(top.Articles))
	articles := make([]string, len(top.Articles))
	for i, a := range top.Articles {
		rank[a.Article] = i
		articles[i] = a.Article
	}

	type key struct {
		month   int64 // Unix seconds of month start, comparable map key
		article string
	}
	sums := make(map[key]int64)
	for _, r := range yearTable.Records() {
		if _, ok := rank[r.Article]; !ok {
			continue
		}
		sums[key{schema.Month(r.Date).Unix(), r.Article}] += r.Views
	}

	points := make([]schema.MonthlyPoint, 0, len(sums))
	for k, views := range sums {
		points = append(points, schema.MonthlyPoint{
			Month:   schema.Day(time.Unix(k.month, 0)),
			Article: k.article,
			Views:   views,
		})
	}
	sort.Slice(points, func(i, j int) bool {
		if !points[i].Month.Equal(points[j].Month) {
			return points[i].Month.Before(points[j].Month)
		}
		return rank[points[i].Article] < rank[points[j].Article]
	})

	return schema.MonthlyResult{Year: year, Articles: articles, Points: points}
}

// CompareYears sums records and views per calendar year, ascending.
func CompareYears(t *Table) schema.YearComparisonResult {
	type totals struct {
		records int
		views   int64
	}
	byYear := make(map[int]*totals)
	for _, r := range t.Records() {
		y := r.Date.Year()
		if byYear[y] == nil {
			byYear[y] = &totals{}
		}
		byYear[y].records++
		byYear[y].views += r.Views
	}

	years := make([]schema.YearTotal, 0, len(byYear))
	for y, agg := range byYear {
		years = append(years, schema.YearTotal{Year: y, Records: agg.records, Views: agg.views})
	}
	sort.Slice(years, func(i, j int) bool { return years[i].Year < years[j].Year })

	for i := 1; i < len(years); i++ {
		if prev := years[i-1].Views; prev > 0 {
			years[i].DeltaPercent = 100 * float64(years[i].Views-prev) / float64(prev)
		}
	}

	return schema.YearComparisonResult{Years: years}
}

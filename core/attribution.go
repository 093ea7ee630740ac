package core

import (
	"errors"
	"sort"
	"time"

	"github.com/huangsam/wikitrend/schema"
)

// ErrDateNotFound indicates an attribution request for a date absent from
// the daily series. Callers skip or report the peak; the rest of the report
// proceeds.
var ErrDateNotFound = errors.New("date not found in daily series")

// Attribute computes the ranked top-N contributing articles for a peak date.
// The result is a pure function of the table: per-article pageviews on the
// peak date are summed (duplicate rows for one article are folded together),
// ranked descending with ties broken by article name, and truncated to topN.
// Percent shares are relative to the date's total; a zero-total day yields
// zero percents rather than a division error.
func Attribute(t *Table, series schema.DailySeries, peakDate time.Time, topN int) (schema.PeakAttribution, error) {
	day := schema.Day(peakDate)
	total, ok := series.Total(day)
	if !ok {
		return schema.PeakAttribution{}, ErrDateNotFound
	}

	// Sum per article over just that day's records.
	sums := make(map[string]int64)
	for _, r := range t.Day(day).Records() {
		sums[r.Article] += r.Views
	}

	ranked := make([]schema.ContributionEntry, 0, len(sums))
	for article, views := range sums {
		ranked = append(ranked, schema.ContributionEntry{Article: article, Views: views})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Views != ranked[j].Views {
			return ranked[i].Views > ranked[j].Views
		}
		return ranked[i].Article < ranked[j].Article
	})
	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}

	for i := range ranked {
		if total > 0 {
			ranked[i].Percent = 100 * float64(ranked[i].Views) / float64(total)
		}
	}

	return schema.PeakAttribution{
		Peak:         schema.PeakPoint{Date: day, Views: total},
		Contributors: ranked,
	}, nil
}

// BuildPeakReport attributes every peak in order. Peaks whose date is absent
// from the series are skipped and reported through the onSkip callback
// (nil to ignore), so one stale entry in a known-peaks table cannot fail the
// whole report.
func BuildPeakReport(t *Table, series schema.DailySeries, peaks []schema.PeakPoint, topN int, detection schema.DetectionMode, onSkip func(schema.PeakPoint, error)) schema.PeakReport {
	report := schema.PeakReport{Detection: detection}
	for _, p := range peaks {
		attribution, err := Attribute(t, series, p.Date, topN)
		if err != nil {
			if onSkip != nil {
				onSkip(p, err)
			}
			continue
		}
		report.Peaks = append(report.Peaks, attribution)
	}
	return report
}

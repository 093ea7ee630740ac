// Package schema has models and shared constants for all parts of wikitrend.
package schema

import "time"

// PageviewRecord is a single daily pageview observation for one article.
// Records are immutable once loaded; every derived view is computed fresh
// from the record set.
type PageviewRecord struct {
	Article  string    // Wikipedia article title
	Date     time.Time // Day granularity, UTC midnight
	Views    int64     // Non-negative daily pageview count
	Category string    // Optional source label (e.g. WikiProject importance)
}

// DailyPoint is one day of aggregate pageviews across all tracked articles.
type DailyPoint struct {
	Date  time.Time `json:"date"`
	Views int64     `json:"views"`
}

// DailySeries is the date-ordered aggregate pageview series.
// Dates are unique and strictly ascending.
type DailySeries struct {
	Points []DailyPoint `json:"points"`
}

// PeakPoint marks a date whose aggregate pageviews form a prominent maximum,
// or a date supplied externally as a known peak.
type PeakPoint struct {
	Date  time.Time `json:"date"`
	Views int64     `json:"views"`
}

// ContributionEntry is one article's share of a peak date's total pageviews.
type ContributionEntry struct {
	Article string  `json:"article"`
	Views   int64   `json:"views"`
	Percent float64 `json:"percent"` // 100 * Views / peak total; 0 when the total is 0
}

// PeakAttribution pairs a peak with its ranked top contributors.
type PeakAttribution struct {
	Peak         PeakPoint           `json:"peak"`
	Contributors []ContributionEntry `json:"contributors"`
}

// PeakReport holds the attribution results for all detected or known peaks.
type PeakReport struct {
	Detection DetectionMode     `json:"detection"`
	Peaks     []PeakAttribution `json:"peaks"`
}

// SummaryResult is the dataset overview shown at the top of the report.
type SummaryResult struct {
	Records    int       `json:"records"`
	Articles   int       `json:"articles"`
	TotalViews int64     `json:"total_views"`
	MeanViews  float64   `json:"mean_views"`
	FirstDate  time.Time `json:"first_date"`
	LastDate   time.Time `json:"last_date"`
}

// ArticleTotal is an article's summed pageviews over a queried range.
type ArticleTotal struct {
	Article string  `json:"article"`
	Views   int64   `json:"views"`
	Share   float64 `json:"share"` // Percent of the range total
}

// TopArticlesResult holds the ranked most-viewed articles for a range.
type TopArticlesResult struct {
	Articles   []ArticleTotal `json:"articles"`
	RangeViews int64          `json:"range_views"`
}

// MonthlyPoint is one (month, article) pageview sum.
type MonthlyPoint struct {
	Month   time.Time `json:"month"` // First day of the month, UTC
	Article string    `json:"article"`
	Views   int64     `json:"views"`
}

// MonthlyResult holds per-month pageviews for a year's top articles.
type MonthlyResult struct {
	Year     int            `json:"year"`
	Articles []string       `json:"articles"` // Ranked top articles for the year
	Points   []MonthlyPoint `json:"points"`   // Ordered by month, then article rank
}

// YearTotal aggregates one calendar year.
type YearTotal struct {
	Year    int   `json:"year"`
	Records int   `json:"records"`
	Views   int64 `json:"views"`
	// DeltaPercent is the view change versus the previous listed year.
	// Zero for the first year.
	DeltaPercent float64 `json:"delta_percent"`
}

// YearComparisonResult compares total engagement across calendar years.
type YearComparisonResult struct {
	Years []YearTotal `json:"years"` // Ascending by year
}

// CategoryPrediction is a pre-computed classification row for one article.
// Predictions are consumed read-only; wikitrend never trains or validates models.
type CategoryPrediction struct {
	Article     string `json:"article"`
	Predicted   string `json:"predicted_label"`
	GroundTruth string `json:"ground_truth"`
}

// CategoryCount is the predicted vs ground-truth frequency of one category.
type CategoryCount struct {
	Category    string `json:"category"`
	Predicted   int    `json:"predicted"`
	GroundTruth int    `json:"ground_truth"`
}

// CategoryReport summarizes the classification results for display.
type CategoryReport struct {
	Counts    []CategoryCount `json:"counts"`    // Descending by ground-truth count, ties by name
	Total     int             `json:"total"`     // Number of classified articles
	Agreement float64         `json:"agreement"` // Percent of rows where predicted == ground truth
}

// SeriesResult wraps a daily series together with the peaks found in it.
type SeriesResult struct {
	Series DailySeries `json:"series"`
	Peaks  []PeakPoint `json:"peaks,omitempty"`
}

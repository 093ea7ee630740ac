package chart

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/wikitrend/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func requirePNG(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

// TestWriteSeriesChart checks PNG rendering of a series with peaks.
func TestWriteSeriesChart(t *testing.T) {
	result := schema.SeriesResult{
		Series: schema.DailySeries{Points: []schema.DailyPoint{
			{Date: day(2023, 2, 5), Views: 100},
			{Date: day(2023, 2, 6), Views: 400},
			{Date: day(2023, 2, 7), Views: 900},
			{Date: day(2023, 2, 8), Views: 300},
		}},
		Peaks: []schema.PeakPoint{{Date: day(2023, 2, 7), Views: 900}},
	}

	path := filepath.Join(t.TempDir(), "series.png")
	require.NoError(t, WriteSeriesChart(result, path))
	requirePNG(t, path)
}

// TestWriteYearChart checks PNG rendering of yearly totals.
func TestWriteYearChart(t *testing.T) {
	result := schema.YearComparisonResult{Years: []schema.YearTotal{
		{Year: 2023, Records: 4, Views: 1700},
		{Year: 2024, Records: 2, Views: 600},
	}}

	path := filepath.Join(t.TempDir(), "years.png")
	require.NoError(t, WriteYearChart(result, path))
	requirePNG(t, path)
}

// TestWriteTopArticlesChart checks PNG rendering of ranked totals.
func TestWriteTopArticlesChart(t *testing.T) {
	result := schema.TopArticlesResult{
		Articles: []schema.ArticleTotal{
			{Article: "Coronavirus", Views: 1040, Share: 77.04},
			{Article: "Lockdown", Views: 310, Share: 22.96},
		},
		RangeViews: 1350,
	}

	path := filepath.Join(t.TempDir(), "top.png")
	require.NoError(t, WriteTopArticlesChart(result, path))
	requirePNG(t, path)
}

// TestWriteCategoryChart checks PNG rendering of grouped category counts.
func TestWriteCategoryChart(t *testing.T) {
	result := schema.CategoryReport{
		Counts: []schema.CategoryCount{
			{Category: "pandemic", Predicted: 8, GroundTruth: 10},
			{Category: "vaccine", Predicted: 5, GroundTruth: 4},
		},
		Total:     14,
		Agreement: 78.57,
	}

	path := filepath.Join(t.TempDir(), "categories.png")
	require.NoError(t, WriteCategoryChart(result, path))
	requirePNG(t, path)
}

package core

import (
	"testing"

	"github.com/huangsam/wikitrend/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTopArticles tests article ranking logic.
func TestTopArticles(t *testing.T) {
	table := sampleTable()

	t.Run("rank and limit", func(t *testing.T) {
		top := TopArticles(table, 2)
		require.Len(t, top.Articles, 2)
		assert.Equal(t, "Coronavirus", top.Articles[0].Article)
		assert.Equal(t, int64(1040), top.Articles[0].Views)
		assert.Equal(t, "Lockdown", top.Articles[1].Article)
		assert.Equal(t, int64(1350), top.RangeViews)
	})

	t.Run("shares relative to range total", func(t *testing.T) {
		top := TopArticles(table, 10)
		var sum float64
		for _, a := range top.Articles {
			sum += a.Share
		}
		assert.InDelta(t, 100.0, sum, 1e-9)
	})

	t.Run("ties broken by article name", func(t *testing.T) {
		tied := NewTable([]schema.PageviewRecord{
			rec("Zeta", day(2023, 1, 1), 10),
			rec("Alpha", day(2023, 1, 1), 10),
		})
		top := TopArticles(tied, 10)
		assert.Equal(t, "Alpha", top.Articles[0].Article)
	})

	t.Run("empty table", func(t *testing.T) {
		top := TopArticles(NewTable(nil), 5)
		assert.Empty(t, top.Articles)
		assert.Zero(t, top.RangeViews)
	})
}

// TestMonthlyBreakdown tests per-month sums for a year's top articles.
func TestMonthlyBreakdown(t *testing.T) {
	table := sampleTable()
	result := MonthlyBreakdown(table, 2023, 2)

	assert.Equal(t, 2023, result.Year)
	require.Equal(t, []string{"Coronavirus", "Lockdown"}, result.Articles)

	// Feb: Coronavirus 300+700, Lockdown 100+50. March has no top-2 records
	// with views, but Quarantine is outside the top anyway.
	require.Len(t, result.Points, 2)
	assert.Equal(t, day(2023, 2, 1), result.Points[0].Month)
	assert.Equal(t, "Coronavirus", result.Points[0].Article)
	assert.Equal(t, int64(1000), result.Points[0].Views)
	assert.Equal(t, "Lockdown", result.Points[1].Article)
	assert.Equal(t, int64(150), result.Points[1].Views)
}

// TestCompareYears tests yearly totals.
func TestCompareYears(t *testing.T) {
	result := CompareYears(sampleTable())

	require.Len(t, result.Years, 2)
	assert.Equal(t, 2023, result.Years[0].Year)
	assert.Equal(t, 7, result.Years[0].Records)
	assert.Equal(t, int64(1250), result.Years[0].Views)
	assert.Equal(t, 2024, result.Years[1].Year)
	assert.Equal(t, int64(100), result.Years[1].Views)
	assert.Zero(t, result.Years[0].DeltaPercent)
	assert.InDelta(t, -92.0, result.Years[1].DeltaPercent, 1e-9)
}

// TestBuildCategoryReport tests the classification display summary.
func TestBuildCategoryReport(t *testing.T) {
	preds := []schema.CategoryPrediction{
		{Article: "A", Predicted: "vaccine", GroundTruth: "vaccine"},
		{Article: "B", Predicted: "vaccine", GroundTruth: "treatment"},
		{Article: "C", Predicted: "lockdown", GroundTruth: "lockdown"},
		{Article: "D", Predicted: "disease", GroundTruth: "vaccine"},
	}
	report := BuildCategoryReport(preds)

	assert.Equal(t, 4, report.Total)
	assert.InDelta(t, 50.0, report.Agreement, 1e-9)

	require.Len(t, report.Counts, 4)
	assert.Equal(t, "vaccine", report.Counts[0].Category, "highest ground-truth count first")
	assert.Equal(t, 2, report.Counts[0].GroundTruth)
	assert.Equal(t, 2, report.Counts[0].Predicted)

	// disease was predicted but never a ground truth; still listed.
	var found bool
	for _, c := range report.Counts {
		if c.Category == "disease" {
			found = true
			assert.Equal(t, 1, c.Predicted)
			assert.Equal(t, 0, c.GroundTruth)
		}
	}
	assert.True(t, found)

	empty := BuildCategoryReport(nil)
	assert.Zero(t, empty.Total)
	assert.Zero(t, empty.Agreement)
}

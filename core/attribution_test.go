package core

import (
	"testing"

	"github.com/huangsam/wikitrend/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestAttribute tests the peak attribution routine.
func TestAttribute(t *testing.T) {
	table := NewTable([]schema.PageviewRecord{
		rec("Alpha", day(2023, 6, 1), 300),
		rec("Beta", day(2023, 6, 1), 100),
		rec("Gamma", day(2023, 6, 1), 100),
		rec("Alpha", day(2023, 6, 2), 10),
	})
	series := BuildDailySeries(table)

	t.Run("ranked shares with deterministic tie-break", func(t *testing.T) {
		got, err := Attribute(table, series, day(2023, 6, 1), 2)
		require.NoError(t, err)
		assert.Equal(t, int64(500), got.Peak.Views)
		require.Len(t, got.Contributors, 2)
		assert.Equal(t, "Alpha", got.Contributors[0].Article)
		assert.InDelta(t, 60.0, got.Contributors[0].Percent, 1e-9)
		assert.Equal(t, "Beta", got.Contributors[1].Article, "tie between Beta and Gamma broken by name")
		assert.InDelta(t, 20.0, got.Contributors[1].Percent, 1e-9)
	})

	t.Run("absent date", func(t *testing.T) {
		_, err := Attribute(table, series, day(2023, 6, 3), 3)
		assert.ErrorIs(t, err, ErrDateNotFound)
	})

	t.Run("duplicate article rows summed", func(t *testing.T) {
		dupTable := NewTable([]schema.PageviewRecord{
			rec("Alpha", day(2023, 6, 1), 200),
			rec("Alpha", day(2023, 6, 1), 100),
			rec("Beta", day(2023, 6, 1), 100),
		})
		dupSeries := BuildDailySeries(dupTable)
		got, err := Attribute(dupTable, dupSeries, day(2023, 6, 1), 5)
		require.NoError(t, err)
		require.Len(t, got.Contributors, 2)
		assert.Equal(t, int64(300), got.Contributors[0].Views)
		assert.InDelta(t, 75.0, got.Contributors[0].Percent, 1e-9)
	})

	t.Run("zero-total day yields zero percents", func(t *testing.T) {
		zeroTable := NewTable([]schema.PageviewRecord{
			rec("Alpha", day(2023, 7, 1), 0),
			rec("Beta", day(2023, 7, 1), 0),
		})
		zeroSeries := BuildDailySeries(zeroTable)
		got, err := Attribute(zeroTable, zeroSeries, day(2023, 7, 1), 3)
		require.NoError(t, err)
		require.Len(t, got.Contributors, 2)
		for _, c := range got.Contributors {
			assert.Zero(t, c.Percent)
		}
	})

	t.Run("full article set sums to 100 percent", func(t *testing.T) {
		got, err := Attribute(table, series, day(2023, 6, 1), 3)
		require.NoError(t, err)
		var sum float64
		for _, c := range got.Contributors {
			assert.GreaterOrEqual(t, c.Percent, 0.0)
			assert.LessOrEqual(t, c.Percent, 100.0)
			sum += c.Percent
		}
		assert.InDelta(t, 100.0, sum, 1e-9)
	})

	t.Run("idempotent", func(t *testing.T) {
		first, err := Attribute(table, series, day(2023, 6, 1), 2)
		require.NoError(t, err)
		second, err := Attribute(table, series, day(2023, 6, 1), 2)
		require.NoError(t, err)
		assert.Equal(t, first, second)
	})

	t.Run("at most N entries", func(t *testing.T) {
		got, err := Attribute(table, series, day(2023, 6, 1), 1)
		require.NoError(t, err)
		assert.Len(t, got.Contributors, 1)

		got, err = Attribute(table, series, day(2023, 6, 1), 50)
		require.NoError(t, err)
		assert.Len(t, got.Contributors, 3)
	})
}

// TestBuildPeakReport tests report assembly and skip handling.
func TestBuildPeakReport(t *testing.T) {
	table := sampleTable()
	series := BuildDailySeries(table)

	peaks := []schema.PeakPoint{
		{Date: day(2023, 2, 7), Views: 700},
		{Date: day(2023, 12, 25), Views: 1}, // not in series, skipped
	}

	var skipped []schema.PeakPoint
	report := BuildPeakReport(table, series, peaks, 3, schema.KnownDetection,
		func(p schema.PeakPoint, err error) {
			assert.ErrorIs(t, err, ErrDateNotFound)
			skipped = append(skipped, p)
		})

	require.Len(t, report.Peaks, 1)
	assert.Equal(t, day(2023, 2, 7), report.Peaks[0].Peak.Date)
	assert.Equal(t, schema.KnownDetection, report.Detection)
	require.Len(t, skipped, 1)
	assert.Equal(t, day(2023, 12, 25), skipped[0].Date)
}

package schema

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestDailySeriesTotal tests day lookup in the aggregate series.
func TestDailySeriesTotal(t *testing.T) {
	series := DailySeries{Points: []DailyPoint{
		{Date: day(2023, 2, 6), Views: 100},
		{Date: day(2023, 2, 7), Views: 250},
		{Date: day(2023, 2, 9), Views: 50},
	}}

	t.Run("present date", func(t *testing.T) {
		total, ok := series.Total(day(2023, 2, 7))
		assert.True(t, ok)
		assert.Equal(t, int64(250), total)
	})

	t.Run("absent date", func(t *testing.T) {
		_, ok := series.Total(day(2023, 2, 8))
		assert.False(t, ok)
	})

	t.Run("non-midnight timestamp matches its day", func(t *testing.T) {
		total, ok := series.Total(time.Date(2023, 2, 9, 17, 30, 0, 0, time.UTC))
		assert.True(t, ok)
		assert.Equal(t, int64(50), total)
	})

	t.Run("sum over all points", func(t *testing.T) {
		assert.Equal(t, int64(400), series.Sum())
	})
}

// TestDay tests timestamp truncation to UTC midnight.
func TestDay(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*3600)
	in := time.Date(2024, 3, 15, 1, 30, 0, 0, loc) // 2024-03-14 23:30 UTC
	assert.Equal(t, day(2024, 3, 14), Day(in))
}

// TestMonth tests timestamp truncation to the first of the month.
func TestMonth(t *testing.T) {
	assert.Equal(t, day(2023, 11, 1), Month(day(2023, 11, 28)))
}

// TestFormatViews tests thousands-separator formatting.
func TestFormatViews(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-56000, "-56,000"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FormatViews(tc.in))
	}
}

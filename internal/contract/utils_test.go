package contract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGetPlainLabel tests share labeling thresholds.
func TestGetPlainLabel(t *testing.T) {
	tests := []struct {
		percent float64
		want    string
	}{
		{95.0, DominantValue},
		{50.0, DominantValue},
		{49.9, MajorValue},
		{25.0, MajorValue},
		{10.0, ModerateValue},
		{9.9, MinorValue},
		{0.0, MinorValue},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, GetPlainLabel(tc.percent), "percent %.1f", tc.percent)
	}
}

// TestTruncateArticle tests title truncation for table rendering.
func TestTruncateArticle(t *testing.T) {
	t.Run("short title unchanged", func(t *testing.T) {
		assert.Equal(t, "Coronavirus", TruncateArticle("Coronavirus", 40))
	})

	t.Run("long title truncated with ellipsis", func(t *testing.T) {
		got := TruncateArticle("COVID-19 vaccine misinformation and hesitancy", 20)
		assert.Equal(t, 20, len([]rune(got)))
		assert.Equal(t, "...", got[len(got)-3:])
	})

	t.Run("tiny width leaves title alone", func(t *testing.T) {
		assert.Equal(t, "Pandemic", TruncateArticle("Pandemic", 3))
	})
}

// TestParseBoolString tests boolean flag parsing.
func TestParseBoolString(t *testing.T) {
	for _, s := range []string{"yes", "TRUE", "1"} {
		got, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.True(t, got)
	}
	for _, s := range []string{"no", "False", "0"} {
		got, err := ParseBoolString(s)
		assert.NoError(t, err)
		assert.False(t, got)
	}
	_, err := ParseBoolString("maybe")
	assert.Error(t, err)
}

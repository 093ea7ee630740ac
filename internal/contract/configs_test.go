package contract

import (
	"testing"
	"time"

	"github.com/huangsam/wikitrend/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// validInput returns a raw input that passes validation unchanged.
func validInput() *ConfigRawInput {
	return &ConfigRawInput{
		Limit:      DefaultResultLimit,
		Top:        DefaultTopContributors,
		Precision:  DefaultPrecision,
		Output:     string(schema.TextOut),
		Detect:     string(schema.ProminenceDetection),
		PeakWindow: DefaultPeakWindow,
		Color:      "yes",
		CacheBackend: string(schema.SQLiteBackend),
	}
}

// TestProcessAndValidate tests conversion of raw inputs into the final config.
func TestProcessAndValidate(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, validInput()))
		assert.Equal(t, DefaultDatasetPath, cfg.DatasetPath)
		assert.Equal(t, DefaultCategoriesPath, cfg.CategoriesPath)
		assert.Equal(t, schema.ProminenceDetection, cfg.Detection)
		assert.Equal(t, schema.SQLiteBackend, cfg.CacheBackend)
		assert.True(t, cfg.StartTime.IsZero())
		assert.True(t, cfg.UseColors)
	})

	t.Run("date range parsed to UTC midnight", func(t *testing.T) {
		input := validInput()
		input.Start = "2023-02-06"
		input.End = "2024-12-31"
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, time.Date(2023, 2, 6, 0, 0, 0, 0, time.UTC), cfg.StartTime)
		assert.Equal(t, time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC), cfg.EndTime)
	})

	t.Run("start after end rejected", func(t *testing.T) {
		input := validInput()
		input.Start = "2024-06-01"
		input.End = "2023-06-01"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("invalid output mode rejected", func(t *testing.T) {
		input := validInput()
		input.Output = "xml"
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("known detection requires peaks file", func(t *testing.T) {
		input := validInput()
		input.Detect = string(schema.KnownDetection)
		assert.Error(t, ProcessAndValidate(&Config{}, input))

		input.PeaksFile = "data/known_peaks.csv"
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, schema.KnownDetection, cfg.Detection)
		assert.Equal(t, "data/known_peaks.csv", cfg.PeaksPath)
	})

	t.Run("excludes split and trimmed", func(t *testing.T) {
		input := validInput()
		input.Exclude = "Coronavirus, COVID-19 pandemic ,"
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, []string{"Coronavirus", "COVID-19 pandemic"}, cfg.Excludes)
	})

	t.Run("limit bounds enforced", func(t *testing.T) {
		input := validInput()
		input.Limit = 0
		assert.Error(t, ProcessAndValidate(&Config{}, input))

		input = validInput()
		input.Limit = MaxResultLimit + 1
		assert.Error(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("remote backend requires connection string", func(t *testing.T) {
		input := validInput()
		input.CacheBackend = string(schema.PostgreSQLBackend)
		assert.Error(t, ProcessAndValidate(&Config{}, input))

		input.CacheDBConnect = "host=localhost port=5432 user=postgres dbname=wikitrend"
		assert.NoError(t, ProcessAndValidate(&Config{}, input))
	})

	t.Run("history backend optional", func(t *testing.T) {
		cfg := &Config{}
		require.NoError(t, ProcessAndValidate(cfg, validInput()))
		assert.Empty(t, cfg.HistoryBackend)

		input := validInput()
		input.HistoryBackend = "sqlite"
		cfg = &Config{}
		require.NoError(t, ProcessAndValidate(cfg, input))
		assert.Equal(t, schema.SQLiteBackend, cfg.HistoryBackend)
	})
}

// TestCloneWithRange tests that clones do not share exclude slices.
func TestCloneWithRange(t *testing.T) {
	cfg := &Config{Excludes: []string{"Coronavirus"}}
	start := time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)

	clone := cfg.CloneWithRange(start, end)
	assert.Equal(t, start, clone.StartTime)
	assert.Equal(t, end, clone.EndTime)

	clone.Excludes[0] = "changed"
	assert.Equal(t, "Coronavirus", cfg.Excludes[0])
}

// TestParseDay tests day parsing.
func TestParseDay(t *testing.T) {
	got, err := ParseDay(" 2023-02-06 ")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 2, 6, 0, 0, 0, 0, time.UTC), got)

	_, err = ParseDay("02/06/2023")
	assert.Error(t, err)
}

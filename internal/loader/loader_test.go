package loader

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/huangsam/wikitrend/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile writes a temp CSV fixture and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestLoadPageviews tests dataset loading and validation.
func TestLoadPageviews(t *testing.T) {
	t.Run("valid dataset", func(t *testing.T) {
		path := writeFile(t, "views.csv",
			"article,date,pageviews\n"+
				"Coronavirus,2023-02-06,5000\n"+
				"COVID-19 vaccine,2023-02-06,1200\n")
		records, err := LoadPageviews(path)
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, "Coronavirus", records[0].Article)
		assert.Equal(t, time.Date(2023, 2, 6, 0, 0, 0, 0, time.UTC), records[0].Date)
		assert.Equal(t, int64(5000), records[0].Views)
		assert.Empty(t, records[0].Category)
	})

	t.Run("optional category column", func(t *testing.T) {
		path := writeFile(t, "views.csv",
			"article,date,pageviews,category\n"+
				"Coronavirus,2023-02-06,5000,disease\n")
		records, err := LoadPageviews(path)
		require.NoError(t, err)
		assert.Equal(t, "disease", records[0].Category)
	})

	t.Run("reordered header accepted", func(t *testing.T) {
		path := writeFile(t, "views.csv",
			"date,pageviews,article\n"+
				"2023-02-06,42,Quarantine\n")
		records, err := LoadPageviews(path)
		require.NoError(t, err)
		assert.Equal(t, "Quarantine", records[0].Article)
		assert.Equal(t, int64(42), records[0].Views)
	})

	t.Run("missing column is fatal", func(t *testing.T) {
		path := writeFile(t, "views.csv", "article,date\nCoronavirus,2023-02-06\n")
		_, err := LoadPageviews(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "pageviews")
	})

	t.Run("bad date carries line number", func(t *testing.T) {
		path := writeFile(t, "views.csv",
			"article,date,pageviews\n"+
				"Coronavirus,2023-02-06,10\n"+
				"Lockdown,02/07/2023,20\n")
		_, err := LoadPageviews(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 3")
	})

	t.Run("negative views rejected", func(t *testing.T) {
		path := writeFile(t, "views.csv", "article,date,pageviews\nCoronavirus,2023-02-06,-1\n")
		_, err := LoadPageviews(path)
		assert.Error(t, err)
	})

	t.Run("empty dataset rejected", func(t *testing.T) {
		path := writeFile(t, "views.csv", "article,date,pageviews\n")
		_, err := LoadPageviews(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadPageviews(filepath.Join(t.TempDir(), "nope.csv"))
		assert.Error(t, err)
	})
}

// TestLoadKnownPeaks tests the external peak lookup table.
func TestLoadKnownPeaks(t *testing.T) {
	t.Run("valid peaks", func(t *testing.T) {
		path := writeFile(t, "peaks.csv",
			"date,pageviews\n"+
				"2023-02-10,91000\n"+
				"2024-08-15,42000\n")
		peaks, err := LoadKnownPeaks(path)
		require.NoError(t, err)
		require.Len(t, peaks, 2)
		assert.Equal(t, int64(91000), peaks[0].Views)
	})

	t.Run("empty table allowed", func(t *testing.T) {
		path := writeFile(t, "peaks.csv", "date,pageviews\n")
		peaks, err := LoadKnownPeaks(path)
		require.NoError(t, err)
		assert.Empty(t, peaks)
	})
}

// TestLoadCategoryPredictions tests the classification result source.
func TestLoadCategoryPredictions(t *testing.T) {
	t.Run("valid predictions with extra columns", func(t *testing.T) {
		path := writeFile(t, "cats.csv",
			"article,predicted_label,score,ground_truth\n"+
				"COVID-19 vaccine,Vaccine,0.93,vaccine\n"+
				"Lockdown in Italy,lockdown,0.71,lockdown\n")
		preds, err := LoadCategoryPredictions(path)
		require.NoError(t, err)
		require.Len(t, preds, 2)
		assert.Equal(t, "vaccine", preds[0].Predicted) // normalized to lowercase
		assert.Equal(t, "vaccine", preds[0].GroundTruth)
	})

	t.Run("missing ground truth column is fatal", func(t *testing.T) {
		path := writeFile(t, "cats.csv", "article,predicted_label\nX,vaccine\n")
		_, err := LoadCategoryPredictions(path)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ground_truth")
	})

	t.Run("short row carries line number", func(t *testing.T) {
		path := writeFile(t, "cats.csv",
			"article,predicted_label,ground_truth\n"+
				"Coronavirus,vaccine\n")
		var preds []schema.CategoryPrediction
		var err error
		require.NotPanics(t, func() {
			preds, err = LoadCategoryPredictions(path)
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "line 2")
		assert.Empty(t, preds)
	})
}

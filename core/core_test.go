package core

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestChartPath tests chart directory creation and path assembly.
func TestChartPath(t *testing.T) {
	t.Run("creates nested directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "out", "charts")
		path, err := chartPath(dir, "daily_series.png")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "daily_series.png"), path)

		info, err := os.Stat(dir)
		require.NoError(t, err)
		assert.True(t, info.IsDir())
	})

	t.Run("existing directory is reused", func(t *testing.T) {
		dir := t.TempDir()
		path, err := chartPath(dir, "year_totals.png")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "year_totals.png"), path)
	})

	t.Run("file in place of directory fails", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "blocked")
		require.NoError(t, os.WriteFile(dir, []byte("x"), 0o644))
		_, err := chartPath(dir, "top_articles.png")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create chart directory")
	})
}

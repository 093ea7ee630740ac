package outwriter

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/huangsam/wikitrend/internal/contract"
	"github.com/huangsam/wikitrend/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestWriteJSON checks indented JSON encoding of result payloads.
func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	payload := schema.ArticleTotal{Article: "Coronavirus", Views: 1040, Share: 77.04}

	err := writeJSON(&buf, payload)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "\"article\": \"Coronavirus\"")
	assert.Contains(t, out, "\"views\": 1040")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

// TestWriteCSVWithHeader checks header emission and row callbacks.
func TestWriteCSVWithHeader(t *testing.T) {
	t.Run("header and rows", func(t *testing.T) {
		var buf bytes.Buffer
		header := []string{"rank", "article"}

		err := writeCSVWithHeader(&buf, header, func(cw *csv.Writer) error {
			return cw.Write([]string{"1", "Coronavirus"})
		})
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
		require.Len(t, lines, 2)
		assert.Equal(t, "rank,article", lines[0])
		assert.Equal(t, "1,Coronavirus", lines[1])
	})

	t.Run("no rows", func(t *testing.T) {
		var buf bytes.Buffer

		err := writeCSVWithHeader(&buf, []string{"date"}, func(cw *csv.Writer) error {
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, "date\n", buf.String())
	})
}

// TestCreateFormatter checks precision handling for float formatting.
func TestCreateFormatter(t *testing.T) {
	assert.Equal(t, "33.33", createFormatter(2)(33.33333))
	assert.Equal(t, "33.3", createFormatter(1)(33.33333))
	assert.Equal(t, "33", createFormatter(0)(33.33333))
}

// TestGetMaxTableArticleWidth checks explicit width overrides and clamping.
func TestGetMaxTableArticleWidth(t *testing.T) {
	t.Run("explicit width", func(t *testing.T) {
		cfg := &contract.Config{Width: 100}
		assert.Equal(t, 55, GetMaxTableArticleWidth(cfg))
	})

	t.Run("clamped low", func(t *testing.T) {
		cfg := &contract.Config{Width: 50}
		assert.Equal(t, 15, GetMaxTableArticleWidth(cfg))
	})

	t.Run("clamped high", func(t *testing.T) {
		cfg := &contract.Config{Width: 500}
		assert.Equal(t, 70, GetMaxTableArticleWidth(cfg))
	})
}

// TestPeakDateSet checks membership lookups for peak markers.
func TestPeakDateSet(t *testing.T) {
	peaks := []schema.PeakPoint{
		{Date: mustDay(t, "2023-02-07"), Views: 900},
		{Date: mustDay(t, "2023-11-20"), Views: 400},
	}

	set := peakDateSet(peaks)
	assert.True(t, set[mustDay(t, "2023-02-07").Unix()])
	assert.False(t, set[mustDay(t, "2023-02-08").Unix()])
}

func mustDay(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := contract.ParseDay(value)
	require.NoError(t, err)
	return parsed
}

// Package outwriter has output and writer logic.
package outwriter

import (
	"os"
	"time"

	"github.com/huangsam/wikitrend/internal/contract"
	"github.com/huangsam/wikitrend/schema"
	"golang.org/x/term"
)

// OutWriter provides a unified interface for all output operations.
// It encapsulates the various output formats and provides a clean API for the core logic.
type OutWriter struct{}

// NewOutWriter creates a new instance of the output writer.
func NewOutWriter() *OutWriter {
	return &OutWriter{}
}

// WriteSummary prints the dataset overview using the configured output format.
func (ow *OutWriter) WriteSummary(result schema.SummaryResult, cfg *contract.Config, duration time.Duration) error {
	return PrintSummaryResult(result, cfg, duration)
}

// WriteSeries prints the daily aggregate series using the configured output format.
func (ow *OutWriter) WriteSeries(result schema.SeriesResult, cfg *contract.Config, duration time.Duration) error {
	return PrintSeriesResult(result, cfg, duration)
}

// WritePeaks prints the peak attribution report using the configured output format.
func (ow *OutWriter) WritePeaks(report schema.PeakReport, cfg *contract.Config, duration time.Duration) error {
	return PrintPeakReport(report, cfg, duration)
}

// WriteTop prints the ranked article totals using the configured output format.
func (ow *OutWriter) WriteTop(result schema.TopArticlesResult, cfg *contract.Config, duration time.Duration) error {
	return PrintTopArticles(result, cfg, duration)
}

// WriteMonthly prints the monthly breakdown using the configured output format.
func (ow *OutWriter) WriteMonthly(result schema.MonthlyResult, cfg *contract.Config, duration time.Duration) error {
	return PrintMonthlyResult(result, cfg, duration)
}

// WriteComparison prints the yearly totals using the configured output format.
func (ow *OutWriter) WriteComparison(result schema.YearComparisonResult, cfg *contract.Config, duration time.Duration) error {
	return PrintYearComparison(result, cfg, duration)
}

// WriteCategories prints the classification display using the configured output format.
func (ow *OutWriter) WriteCategories(report schema.CategoryReport, cfg *contract.Config, duration time.Duration) error {
	return PrintCategoryReport(report, cfg, duration)
}

// GetMaxTableArticleWidth calculates the maximum width for article titles in
// table output based on terminal width and the table's fixed columns.
func GetMaxTableArticleWidth(cfg *contract.Config) int {
	var termWidth int

	// Check for absolute width override from flag/env
	if cfg.Width > 0 {
		termWidth = cfg.Width
	}

	if termWidth == 0 { // Not set by override
		detectedWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err != nil || detectedWidth <= 0 {
			// Fallback to conservative default if terminal size can't be detected
			termWidth = 80 // Conservative default for narrow terminals and CI
		} else {
			termWidth = detectedWidth
		}
	}

	// Reserve space for rank, views, percent and label columns with
	// borders, separators and padding.
	baseWidth := 45

	available := termWidth - baseWidth
	if available < 15 {
		// Minimum reasonable title width
		return 15
	}
	if available > 70 {
		// Maximum title width to prevent overly wide tables
		return 70
	}
	return available
}

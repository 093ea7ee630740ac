package core

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/huangsam/wikitrend/internal/chart"
	"github.com/huangsam/wikitrend/internal/contract"
	"github.com/huangsam/wikitrend/internal/loader"
	"github.com/huangsam/wikitrend/internal/outwriter"
	"github.com/huangsam/wikitrend/schema"
)

// cacheVersion invalidates stored peak reports when the attribution or
// detection logic changes shape.
const cacheVersion = 1

// LoadTable loads the configured dataset and applies the range, year and
// exclusion filters. The result is the immutable snapshot every query in
// this invocation derives from.
func LoadTable(cfg *contract.Config) (*Table, error) {
	records, err := loader.LoadPageviews(cfg.DatasetPath)
	if err != nil {
		return nil, err
	}
	table := NewTable(records).Range(cfg.StartTime, cfg.EndTime).Year(cfg.Year)
	if len(cfg.Excludes) > 0 {
		table = table.Exclude(cfg.Excludes...)
	}
	return table, nil
}

// ExecuteSummary prints the dataset overview.
func ExecuteSummary(cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	result, err := GetSummaryResult(cfg)
	if err != nil {
		return err
	}
	recordRun(mgr, "summary", cfg, start, 1)
	return outwriter.NewOutWriter().WriteSummary(result, cfg, time.Since(start))
}

// GetSummaryResult computes the dataset overview for the configured filters.
func GetSummaryResult(cfg *contract.Config) (schema.SummaryResult, error) {
	table, err := LoadTable(cfg)
	if err != nil {
		return schema.SummaryResult{}, err
	}
	return Summarize(table), nil
}

// ExecuteSeries prints the daily aggregate series and, when a chart
// directory is configured, renders the series line chart with peak markers.
func ExecuteSeries(cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	table, err := LoadTable(cfg)
	if err != nil {
		return err
	}
	series := BuildDailySeries(table)
	peaks, err := detectPeaks(cfg, series)
	if err != nil {
		return err
	}
	result := schema.SeriesResult{Series: series, Peaks: peaks}

	if cfg.ChartDir != "" {
		path, err := chartPath(cfg.ChartDir, "daily_series.png")
		if err != nil {
			return err
		}
		if err := chart.WriteSeriesChart(result, path); err != nil {
			return fmt.Errorf("failed to render series chart: %w", err)
		}
	}

	recordRun(mgr, "series", cfg, start, len(series.Points))
	return outwriter.NewOutWriter().WriteSeries(result, cfg, time.Since(start))
}

// ExecutePeaks runs peak detection and attribution and prints the report.
func ExecutePeaks(cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	report, err := GetPeakReport(cfg, mgr)
	if err != nil {
		return err
	}
	recordRun(mgr, "peaks", cfg, start, len(report.Peaks))
	return outwriter.NewOutWriter().WritePeaks(report, cfg, time.Since(start))
}

// GetPeakReport computes the peak attribution report, consulting the result
// cache when one is configured. Cache failures degrade to recompute with a
// warning; they never fail the query.
func GetPeakReport(cfg *contract.Config, mgr contract.StoreManager) (schema.PeakReport, error) {
	key := peakCacheKey(cfg)
	if cached, ok := cachedPeakReport(mgr, key); ok {
		return cached, nil
	}

	table, err := LoadTable(cfg)
	if err != nil {
		return schema.PeakReport{}, err
	}
	series := BuildDailySeries(table)
	peaks, err := detectPeaks(cfg, series)
	if err != nil {
		return schema.PeakReport{}, err
	}

	report := BuildPeakReport(table, series, peaks, cfg.TopContributors, cfg.Detection,
		func(p schema.PeakPoint, err error) {
			contract.LogWarn(fmt.Sprintf("Skipping peak %s", p.Date.Format(contract.DateFormat)), err)
		})

	storePeakReport(mgr, key, report)
	return report, nil
}

// ExecuteTop prints the ranked most-viewed articles.
func ExecuteTop(cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	result, err := GetTopArticles(cfg)
	if err != nil {
		return err
	}

	if cfg.ChartDir != "" {
		path, err := chartPath(cfg.ChartDir, "top_articles.png")
		if err != nil {
			return err
		}
		if err := chart.WriteTopArticlesChart(result, path); err != nil {
			return fmt.Errorf("failed to render top articles chart: %w", err)
		}
	}

	recordRun(mgr, "top", cfg, start, len(result.Articles))
	return outwriter.NewOutWriter().WriteTop(result, cfg, time.Since(start))
}

// GetTopArticles computes the top article ranking for the configured filters.
func GetTopArticles(cfg *contract.Config) (schema.TopArticlesResult, error) {
	table, err := LoadTable(cfg)
	if err != nil {
		return schema.TopArticlesResult{}, err
	}
	return TopArticles(table, cfg.ResultLimit), nil
}

// ExecuteMonthly prints the per-month breakdown of a year's top articles.
func ExecuteMonthly(cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	if cfg.Year == 0 {
		return fmt.Errorf("--year is required for the monthly breakdown")
	}
	table, err := LoadTable(cfg)
	if err != nil {
		return err
	}
	result := MonthlyBreakdown(table, cfg.Year, cfg.ResultLimit)

	recordRun(mgr, "monthly", cfg, start, len(result.Points))
	return outwriter.NewOutWriter().WriteMonthly(result, cfg, time.Since(start))
}

// ExecuteCompare prints the per-year totals.
func ExecuteCompare(cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	table, err := LoadTable(cfg)
	if err != nil {
		return err
	}
	result := CompareYears(table)

	if cfg.ChartDir != "" {
		path, err := chartPath(cfg.ChartDir, "year_totals.png")
		if err != nil {
			return err
		}
		if err := chart.WriteYearChart(result, path); err != nil {
			return fmt.Errorf("failed to render year chart: %w", err)
		}
	}

	recordRun(mgr, "compare", cfg, start, len(result.Years))
	return outwriter.NewOutWriter().WriteComparison(result, cfg, time.Since(start))
}

// ExecuteCategories prints the classification result display.
func ExecuteCategories(cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	report, err := GetCategoryReport(cfg)
	if err != nil {
		return err
	}

	if cfg.ChartDir != "" {
		path, err := chartPath(cfg.ChartDir, "category_counts.png")
		if err != nil {
			return err
		}
		if err := chart.WriteCategoryChart(report, path); err != nil {
			return fmt.Errorf("failed to render category chart: %w", err)
		}
	}

	recordRun(mgr, "categories", cfg, start, len(report.Counts))
	return outwriter.NewOutWriter().WriteCategories(report, cfg, time.Since(start))
}

// GetCategoryReport loads and summarizes the pre-computed classification rows.
func GetCategoryReport(cfg *contract.Config) (schema.CategoryReport, error) {
	preds, err := loader.LoadCategoryPredictions(cfg.CategoriesPath)
	if err != nil {
		return schema.CategoryReport{}, err
	}
	return BuildCategoryReport(preds), nil
}

// chartPath ensures the chart directory exists and returns the full path
// for the named chart file.
func chartPath(dir, name string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create chart directory: %w", err)
	}
	return filepath.Join(dir, name), nil
}

// detectPeaks resolves the configured detection strategy into peak points.
func detectPeaks(cfg *contract.Config, series schema.DailySeries) ([]schema.PeakPoint, error) {
	switch cfg.Detection {
	case schema.KnownDetection:
		known, err := loader.LoadKnownPeaks(cfg.PeaksPath)
		if err != nil {
			return nil, err
		}
		return KnownPeaks(series, known), nil
	default:
		return ProminentPeaks(series, DetectorOptions{
			Window:        cfg.PeakWindow,
			MinProminence: cfg.MinProminence,
		}), nil
	}
}

// peakCacheKey builds the memoization key from every input that changes the
// peak report: dataset, range, year, exclusions, detection settings, top-N.
func peakCacheKey(cfg *contract.Config) string {
	formatBound := func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}
		return t.Format(contract.DateFormat)
	}
	return strings.Join([]string{
		"peaks",
		cfg.DatasetPath,
		formatBound(cfg.StartTime),
		formatBound(cfg.EndTime),
		fmt.Sprintf("%d", cfg.Year),
		strings.Join(cfg.Excludes, "|"),
		string(cfg.Detection),
		cfg.PeaksPath,
		fmt.Sprintf("%d", cfg.PeakWindow),
		fmt.Sprintf("%d", cfg.MinProminence),
		fmt.Sprintf("%d", cfg.TopContributors),
	}, ";")
}

// cachedPeakReport fetches and decodes a cached report, if present and current.
func cachedPeakReport(mgr contract.StoreManager, key string) (schema.PeakReport, bool) {
	if mgr == nil {
		return schema.PeakReport{}, false
	}
	store := mgr.GetCacheStore()
	if store == nil {
		return schema.PeakReport{}, false
	}
	value, version, _, err := store.Get(key)
	if err != nil || version != cacheVersion {
		return schema.PeakReport{}, false
	}
	var report schema.PeakReport
	if err := json.Unmarshal(value, &report); err != nil {
		contract.LogWarn("Discarding undecodable cached peak report", err)
		return schema.PeakReport{}, false
	}
	return report, true
}

// storePeakReport writes a computed report to the cache, best effort.
func storePeakReport(mgr contract.StoreManager, key string, report schema.PeakReport) {
	if mgr == nil {
		return
	}
	store := mgr.GetCacheStore()
	if store == nil {
		return
	}
	value, err := json.Marshal(report)
	if err != nil {
		contract.LogWarn("Failed to encode peak report for caching", err)
		return
	}
	if err := store.Set(key, value, cacheVersion); err != nil {
		contract.LogWarn("Failed to cache peak report", err)
	}
}

// recordRun tracks a completed command in the history store when configured.
func recordRun(mgr contract.StoreManager, command string, cfg *contract.Config, start time.Time, rows int) {
	if mgr == nil {
		return
	}
	store := mgr.GetHistoryStore()
	if store == nil {
		return
	}
	params := map[string]any{
		"dataset": cfg.DatasetPath,
		"year":    cfg.Year,
		"limit":   cfg.ResultLimit,
	}
	if !cfg.StartTime.IsZero() {
		params["start"] = cfg.StartTime.Format(contract.DateFormat)
	}
	if !cfg.EndTime.IsZero() {
		params["end"] = cfg.EndTime.Format(contract.DateFormat)
	}
	runID, err := store.BeginRun(start, command, params)
	if err != nil {
		contract.LogWarn("Run history tracking failed", err)
		return
	}
	if err := store.EndRun(runID, time.Now(), rows); err != nil {
		contract.LogWarn("Failed to finalize run history entry", err)
	}
}

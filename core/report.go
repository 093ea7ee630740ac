package core

import (
	"fmt"
	"time"

	"github.com/huangsam/wikitrend/internal/chart"
	"github.com/huangsam/wikitrend/internal/contract"
	"github.com/huangsam/wikitrend/internal/outwriter"
	"github.com/huangsam/wikitrend/schema"
)

// Narrative commentary for the full report, carried over from the source
// dashboard this analysis presents.
const (
	reportTitle = "Shifts in COVID-19 Global Public Interest"

	reportQuestion = "How has public engagement in COVID-19 shifted during the " +
		"post-pandemic period, as reflected in Wikipedia pageviews from 2023-2024, " +
		"and what categories of COVID-19-related articles are most popular?"

	reportIntro = "This report explores how interest in COVID-19 evolved since the " +
		"height of the pandemic. Using Wikipedia pageviews as a proxy of engagement " +
		"for COVID-19-related articles from 2023 to 2024, it measures popularity and " +
		"interest within this topic over time, and whether public attention has " +
		"declined, retained, or shifted to specific aspects of the pandemic."

	reportDataNote = "The dataset consists of articles from the WikiProject COVID-19 " +
		"Wikipedia page with their respective pageviews from 2023-02-06 to 2024-12-31. " +
		"Only articles with top, high, and medium importance levels were included. " +
		"QIDs were matched against all Wikipedia data to obtain global pageviews."
)

// ExecuteReport renders the whole dashboard in one pass: summary, peaks,
// yearly comparison, top articles, the selected year's monthly breakdown and
// the category display, with charts written to the configured directory.
// Each section recomputes from the same immutable table snapshot.
func ExecuteReport(cfg *contract.Config, mgr contract.StoreManager) error {
	start := time.Now()
	ow := outwriter.NewOutWriter()

	table, err := LoadTable(cfg)
	if err != nil {
		return err
	}

	fmt.Println(reportTitle)
	fmt.Println()
	fmt.Println(reportQuestion)
	fmt.Println()
	fmt.Println(reportIntro)
	fmt.Println()

	// --- 1. Data Summary ---
	fmt.Println("== Data Summary ==")
	fmt.Println(reportDataNote)
	if err := ow.WriteSummary(Summarize(table), cfg, 0); err != nil {
		return err
	}

	// --- 2. Peaks and Attribution ---
	series := BuildDailySeries(table)
	peaks, err := detectPeaks(cfg, series)
	if err != nil {
		return err
	}
	report := BuildPeakReport(table, series, peaks, cfg.TopContributors, cfg.Detection,
		func(p schema.PeakPoint, err error) {
			contract.LogWarn(fmt.Sprintf("Skipping peak %s", p.Date.Format(contract.DateFormat)), err)
		})
	fmt.Println("== Pageview Peaks ==")
	if err := ow.WritePeaks(report, cfg, 0); err != nil {
		return err
	}
	if cfg.ChartDir != "" {
		path, err := chartPath(cfg.ChartDir, "daily_series.png")
		if err != nil {
			return err
		}
		if err := chart.WriteSeriesChart(schema.SeriesResult{Series: series, Peaks: peaks}, path); err != nil {
			return fmt.Errorf("failed to render series chart: %w", err)
		}
	}

	// --- 3. Year Comparison ---
	comparison := CompareYears(table)
	fmt.Println("== Total Pageviews by Year ==")
	if err := ow.WriteComparison(comparison, cfg, 0); err != nil {
		return err
	}
	if cfg.ChartDir != "" {
		path, err := chartPath(cfg.ChartDir, "year_totals.png")
		if err != nil {
			return err
		}
		if err := chart.WriteYearChart(comparison, path); err != nil {
			return fmt.Errorf("failed to render year chart: %w", err)
		}
	}

	// --- 4. Top Articles ---
	top := TopArticles(table, cfg.ResultLimit)
	fmt.Println("== Most Popular Articles ==")
	if err := ow.WriteTop(top, cfg, 0); err != nil {
		return err
	}
	if cfg.ChartDir != "" {
		path, err := chartPath(cfg.ChartDir, "top_articles.png")
		if err != nil {
			return err
		}
		if err := chart.WriteTopArticlesChart(top, path); err != nil {
			return fmt.Errorf("failed to render top articles chart: %w", err)
		}
	}

	// --- 5. Monthly Breakdown (only when a year is selected) ---
	if cfg.Year != 0 {
		monthly := MonthlyBreakdown(table, cfg.Year, cfg.ResultLimit)
		fmt.Printf("== Monthly Pageviews for Top Articles, %d ==\n", cfg.Year)
		if err := ow.WriteMonthly(monthly, cfg, 0); err != nil {
			return err
		}
	}

	// --- 6. Category Classification Display ---
	categories, err := GetCategoryReport(cfg)
	if err != nil {
		// The prediction file is a separate optional input for the full
		// report; its absence should not sink the pageview sections.
		contract.LogWarn("Skipping category section", err)
	} else {
		fmt.Println("== Article Category Distribution ==")
		if err := ow.WriteCategories(categories, cfg, 0); err != nil {
			return err
		}
		if cfg.ChartDir != "" {
			path, err := chartPath(cfg.ChartDir, "category_counts.png")
			if err != nil {
				return err
			}
			if err := chart.WriteCategoryChart(categories, path); err != nil {
				return fmt.Errorf("failed to render category chart: %w", err)
			}
		}
	}

	recordRun(mgr, "report", cfg, start, table.Len())
	fmt.Printf("Report completed in %v\n", time.Since(start))
	return nil
}

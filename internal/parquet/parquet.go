// Package parquet provides data structures and functions for exporting
// pageview trend data to Parquet files using github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"
	"time"

	"github.com/huangsam/wikitrend/internal/contract"
	"github.com/huangsam/wikitrend/schema"
	"github.com/parquet-go/parquet-go"
)

// PageviewRow represents a single article-day observation.
type PageviewRow struct {
	// Article is the Wikipedia article title
	Article string `parquet:"article,snappy"`

	// Date is the observation day (stored as TIMESTAMP with nanosecond precision)
	Date time.Time `parquet:"date,snappy"`

	// Views is the pageview count for that day
	Views int64 `parquet:"views,snappy"`

	// Category is the predicted category label (nullable)
	Category *string `parquet:"category,optional,snappy"`
}

// AttributionRow represents one contributor entry of a peak attribution.
type AttributionRow struct {
	// PeakDate is the day of the detected peak
	PeakDate time.Time `parquet:"peak_date,snappy"`

	// PeakViews is the aggregate pageview total on the peak day
	PeakViews int64 `parquet:"peak_views,snappy"`

	// Rank is the contributor's position, starting at 1
	Rank int32 `parquet:"rank,snappy"`

	// Article is the contributing article title
	Article string `parquet:"article,snappy"`

	// Views is the article's summed views on the peak day
	Views int64 `parquet:"views,snappy"`

	// Percent is the article's share of the peak day total
	Percent float64 `parquet:"percent,snappy"`
}

// RunRow represents one recorded command run from the history store.
type RunRow struct {
	// RunID is the unique identifier of the run
	RunID int64 `parquet:"run_id,snappy"`

	// Command is the subcommand that was executed
	Command string `parquet:"command,snappy"`

	// StartTime is when the run began (stored as TIMESTAMP with nanosecond precision)
	StartTime time.Time `parquet:"start_time,snappy"`

	// EndTime is when the run completed (nullable)
	EndTime *time.Time `parquet:"end_time,optional,snappy"`

	// ResultRows is the number of result rows produced
	ResultRows int32 `parquet:"result_rows,snappy"`

	// Params contains the JSON-encoded invocation parameters (nullable)
	Params *string `parquet:"params,optional,snappy"`
}

// RunRows converts history records into export rows.
func RunRows(records []contract.RunRecord) []RunRow {
	rows := make([]RunRow, len(records))
	for i, r := range records {
		rows[i] = RunRow{
			RunID:      r.RunID,
			Command:    r.Command,
			StartTime:  r.StartTime,
			EndTime:    r.EndTime,
			ResultRows: int32(r.ResultRows),
		}
		if r.Params != "" {
			params := r.Params
			rows[i].Params = &params
		}
	}
	return rows
}

// PageviewRows converts dataset records into export rows.
func PageviewRows(records []schema.PageviewRecord) []PageviewRow {
	rows := make([]PageviewRow, len(records))
	for i, r := range records {
		rows[i] = PageviewRow{
			Article: r.Article,
			Date:    r.Date,
			Views:   r.Views,
		}
		if r.Category != "" {
			cat := r.Category
			rows[i].Category = &cat
		}
	}
	return rows
}

// AttributionRows flattens a peak report into one row per contributor.
func AttributionRows(report schema.PeakReport) []AttributionRow {
	var rows []AttributionRow
	for _, attribution := range report.Peaks {
		for i, c := range attribution.Contributors {
			rows = append(rows, AttributionRow{
				PeakDate:  attribution.Peak.Date,
				PeakViews: attribution.Peak.Views,
				Rank:      int32(i + 1),
				Article:   c.Article,
				Views:     c.Views,
				Percent:   c.Percent,
			})
		}
	}
	return rows
}

// WritePageviewsParquet writes a slice of PageviewRow structs to a Parquet file.
func WritePageviewsParquet(data []PageviewRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the PageviewRow struct tags
	writer := parquet.NewGenericWriter[PageviewRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteRunsParquet writes a slice of RunRow structs to a Parquet file.
func WriteRunsParquet(data []RunRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the RunRow struct tags
	writer := parquet.NewGenericWriter[RunRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

// WriteAttributionsParquet writes a slice of AttributionRow structs to a Parquet file.
func WriteAttributionsParquet(data []AttributionRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	// Schema is inferred from the AttributionRow struct tags
	writer := parquet.NewGenericWriter[AttributionRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}

	return nil
}

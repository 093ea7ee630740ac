package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/huangsam/wikitrend/internal/contract"
	"github.com/huangsam/wikitrend/internal/parquet"
)

// ExecuteExport writes the filtered dataset and the peak attribution rows to
// Parquet files next to the configured output path.
func ExecuteExport(cfg *contract.Config, mgr contract.StoreManager) error {
	if cfg.OutputFile == "" {
		return errors.New("--output-file is required for the export command")
	}

	start := time.Now()
	table, err := LoadTable(cfg)
	if err != nil {
		return err
	}

	pageviewRows := parquet.PageviewRows(table.Records())
	pageviewsFile := cfg.OutputFile + ".pageviews.parquet"
	if err := parquet.WritePageviewsParquet(pageviewRows, pageviewsFile); err != nil {
		return fmt.Errorf("failed to write pageview rows: %w", err)
	}
	fmt.Printf("Exported %d pageview row(s) to: %s\n", len(pageviewRows), pageviewsFile)

	report, err := GetPeakReport(cfg, mgr)
	if err != nil {
		return err
	}

	attributionRows := parquet.AttributionRows(report)
	attributionsFile := cfg.OutputFile + ".attributions.parquet"
	if err := parquet.WriteAttributionsParquet(attributionRows, attributionsFile); err != nil {
		return fmt.Errorf("failed to write attribution rows: %w", err)
	}
	fmt.Printf("Exported %d attribution row(s) to: %s\n", len(attributionRows), attributionsFile)

	recordRun(mgr, "export", cfg, start, len(pageviewRows)+len(attributionRows))
	return nil
}

package cmd

import (
	"github.com/huangsam/wikitrend/core"
	"github.com/huangsam/wikitrend/internal/contract"
	"github.com/spf13/cobra"
)

// exportCmd exports the dataset and attributions to Parquet.
var exportCmd = &cobra.Command{
	Use:   "export [dataset-path]",
	Short: "Export filtered records and peak attributions to Parquet files.",
	Long: `Write the filtered dataset and the per-peak attribution rows to Parquet.

Two files are produced next to --output-file:
  <output-file>.pageviews.parquet    - one row per article-day observation
  <output-file>.attributions.parquet - one row per peak contributor

The Parquet files can be consumed by Spark, DuckDB, pandas (via pyarrow)
and any other Parquet-compatible tool.

Examples:
  # Export everything
  wikitrend export --output-file trends

  # Export one year without the dominant article
  wikitrend export --year 2023 --exclude Coronavirus --output-file trends_2023`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteExport(cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run export", err)
		}
	},
}

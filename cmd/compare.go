package cmd

import (
	"github.com/huangsam/wikitrend/core"
	"github.com/huangsam/wikitrend/internal/contract"
	"github.com/spf13/cobra"
)

// compareCmd prints per-year totals.
var compareCmd = &cobra.Command{
	Use:   "compare [dataset-path]",
	Short: "Compare total pageviews across years.",
	Long: `Total the dataset per calendar year for year-over-year comparison.

Each year is reported with its record count and total views. With
--chart-dir, the totals are rendered as a bar chart.

Examples:
  # Compare all years in the dataset
  wikitrend compare

  # Compare within a bounded range
  wikitrend compare --start 2023-01-01 --end 2024-12-31

  # Render the comparison chart
  wikitrend compare --chart-dir charts/`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCompare(cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run year comparison", err)
		}
	},
}

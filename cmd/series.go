package cmd

import (
	"github.com/huangsam/wikitrend/core"
	"github.com/huangsam/wikitrend/internal/contract"
	"github.com/spf13/cobra"
)

// seriesCmd prints the daily aggregate series.
var seriesCmd = &cobra.Command{
	Use:   "series [dataset-path]",
	Short: "Show the daily aggregate pageview series with peaks flagged.",
	Long: `Aggregate pageviews across all articles per day and print the series.

Detected peak days are flagged in the table view and included in JSON output.
With --chart-dir, a line chart with peak markers is rendered as PNG.

Examples:
  # Print the full daily series
  wikitrend series

  # Restrict to a window and render a chart
  wikitrend series --start 2023-01-01 --end 2023-03-31 --chart-dir charts/

  # Widen the local maximum window used for peak flagging
  wikitrend series --peak-window 7 --min-prominence 10000

  # Export the series as CSV
  wikitrend series --output csv --output-file series.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSeries(cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run series", err)
		}
	},
}

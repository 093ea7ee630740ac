package cmd

import (
	"github.com/huangsam/wikitrend/core"
	"github.com/huangsam/wikitrend/internal/contract"
	"github.com/spf13/cobra"
)

// peaksCmd detects peaks and attributes them to articles.
var peaksCmd = &cobra.Command{
	Use:   "peaks [dataset-path]",
	Short: "Detect pageview peaks and attribute each one to its top articles.",
	Long: `Find the days where aggregate pageviews spiked and explain each spike.

For every detected peak day, the top contributing articles are ranked by
their summed views on that day, with each article's percent share of the
day's total.

Detection strategies:
  prominence - local maxima filtered by topographic prominence (default)
  known      - peak days supplied via --peaks-file

Examples:
  # Detect prominent peaks with default settings
  wikitrend peaks

  # Require larger spikes and report more contributors
  wikitrend peaks --min-prominence 100000 --top 5

  # Attribute externally supplied peak days
  wikitrend peaks --detect known --peaks-file data/known_peaks.csv

  # Ignore the dominant article and see what else moved
  wikitrend peaks --exclude Coronavirus`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePeaks(cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run peak analysis", err)
		}
	},
}

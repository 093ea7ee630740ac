package cmd

import (
	"github.com/huangsam/wikitrend/core"
	"github.com/huangsam/wikitrend/internal/contract"
	"github.com/spf13/cobra"
)

// topCmd ranks articles by total pageviews.
var topCmd = &cobra.Command{
	Use:   "top [dataset-path]",
	Short: "Show the top articles ranked by total pageviews.",
	Long: `Rank articles by their summed pageviews over the selected range.

Each article is reported with its total views and its percent share of the
range total. With --chart-dir, the ranking is rendered as a bar chart.

Examples:
  # Top 10 articles overall
  wikitrend top

  # Top 20 articles in 2024
  wikitrend top --year 2024 --limit 20

  # Ranking without the dominant article
  wikitrend top --exclude Coronavirus`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteTop(cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run top articles ranking", err)
		}
	},
}

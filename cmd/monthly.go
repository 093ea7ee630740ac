package cmd

import (
	"github.com/huangsam/wikitrend/core"
	"github.com/huangsam/wikitrend/internal/contract"
	"github.com/spf13/cobra"
)

// monthlyCmd prints the per-article monthly breakdown for a year.
var monthlyCmd = &cobra.Command{
	Use:   "monthly [dataset-path]",
	Short: "Show per-month view sums for the top articles of a year.",
	Long: `Break down a year into per-article monthly view sums.

The top articles of the selected year are picked first (honoring --limit and
--exclude), then each article's views are summed per month.

Examples:
  # Monthly breakdown of 2023's top 10 articles
  wikitrend monthly --year 2023

  # Same view without the dominant article
  wikitrend monthly --year 2023 --exclude Coronavirus

  # Top 5 articles of 2024 as CSV
  wikitrend monthly --year 2024 --limit 5 --output csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteMonthly(cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run monthly breakdown", err)
		}
	},
}

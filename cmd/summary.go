package cmd

import (
	"github.com/huangsam/wikitrend/core"
	"github.com/huangsam/wikitrend/internal/contract"
	"github.com/spf13/cobra"
)

// summaryCmd prints the dataset overview.
var summaryCmd = &cobra.Command{
	Use:   "summary [dataset-path]",
	Short: "Show record counts, totals and date bounds for the dataset.",
	Long: `Summarize the pageview dataset at a glance.

Reports:
- Number of records and distinct articles
- Total pageviews and mean daily aggregate views
- First and last observed dates

Examples:
  # Summarize the default dataset
  wikitrend summary

  # Summarize a custom CSV restricted to 2023
  wikitrend summary data/pageviews.csv --year 2023

  # Summarize a date range as JSON
  wikitrend summary --start 2023-01-01 --end 2023-06-30 --output json`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteSummary(cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run summary", err)
		}
	},
}

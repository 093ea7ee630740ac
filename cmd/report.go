package cmd

import (
	"github.com/huangsam/wikitrend/core"
	"github.com/huangsam/wikitrend/internal/contract"
	"github.com/spf13/cobra"
)

// reportCmd renders the full dashboard in one pass.
var reportCmd = &cobra.Command{
	Use:   "report [dataset-path]",
	Short: "Render the full trends report: summary, peaks, rankings and categories.",
	Long: `Run every analysis section in order and print them as one narrative report.

Sections:
- Dataset summary
- Daily series with detected peaks and their attribution
- Year-over-year comparison
- Top articles ranking
- Monthly breakdown (when --year is set)
- Category classification display (when the predictions file exists)

With --chart-dir, each section's chart is written as PNG alongside the text.

Examples:
  # Full report on the default dataset
  wikitrend report

  # Report with charts for a single year
  wikitrend report --year 2023 --chart-dir charts/

  # Report using a curated peaks file for detection
  wikitrend report --detect known --peaks-file peaks.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteReport(cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run report", err)
		}
	},
}

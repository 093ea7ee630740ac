package cmd

import (
	"github.com/huangsam/wikitrend/core"
	"github.com/huangsam/wikitrend/internal/contract"
	"github.com/spf13/cobra"
)

// categoriesCmd prints the classification display.
var categoriesCmd = &cobra.Command{
	Use:   "categories",
	Short: "Compare predicted article categories with ground-truth labels.",
	Long: `Load the pre-computed category predictions and compare them with the
ground-truth labels.

Reports per-category predicted vs ground-truth counts and the overall
agreement rate. This command reads existing predictions; it does not train
or run a classifier.

Examples:
  # Use the default predictions file
  wikitrend categories

  # Point at a custom predictions CSV
  wikitrend categories --categories data/predicted_categories.csv

  # Render the grouped bar chart
  wikitrend categories --chart-dir charts/`,
	Args:    cobra.NoArgs,
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecuteCategories(cfg, storeManager); err != nil {
			contract.LogFatal("Cannot run category report", err)
		}
	},
}

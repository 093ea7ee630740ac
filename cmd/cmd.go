// Package cmd defines the command-line interface for wikitrend.
package cmd

import (
	"github.com/huangsam/wikitrend/internal/contract"
	"github.com/huangsam/wikitrend/schema"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(summaryCmd)
	rootCmd.AddCommand(seriesCmd)
	rootCmd.AddCommand(peaksCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(monthlyCmd)
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(categoriesCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cacheCmd)
	rootCmd.AddCommand(historyCmd)

	// Add the cache subcommands to the parent cache command
	cacheCmd.AddCommand(cacheClearCmd)
	cacheCmd.AddCommand(cacheStatusCmd)

	// Add the history subcommands to the parent history command
	historyCmd.AddCommand(historyStatusCmd)
	historyCmd.AddCommand(historyListCmd)
	historyCmd.AddCommand(historyClearCmd)
	historyCmd.AddCommand(historyExportCmd)
	historyCmd.AddCommand(historyMigrateCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("start", "", "Inclusive range start (YYYY-MM-DD)")
	rootCmd.PersistentFlags().String("end", "", "Inclusive range end (YYYY-MM-DD)")
	rootCmd.PersistentFlags().Int("year", 0, "Restrict to a single calendar year (0 = all)")
	rootCmd.PersistentFlags().String("exclude", "", "Comma-separated article titles to drop before analysis")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().Int("precision", contract.DefaultPrecision, "Decimal precision for numeric columns")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("chart-dir", "", "Directory to write chart PNGs to (empty disables charts)")
	rootCmd.PersistentFlags().Int("width", 0, "Terminal width override (0 = auto-detect)")
	rootCmd.PersistentFlags().String("categories", "", "Path to the category predictions CSV")
	rootCmd.PersistentFlags().String("cache-backend", string(schema.SQLiteBackend), "Cache backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("cache-db-connect", "", "Database connection string for mysql/postgresql (e.g., user:pass@tcp(host:port)/dbname)")
	rootCmd.PersistentFlags().String("history-backend", "", "Run history backend: sqlite or mysql or postgresql or none")
	rootCmd.PersistentFlags().String("history-db-connect", "", "Database connection string for run history (must differ from cache-db-connect)")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no/true/false/1/0)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		contract.LogFatal("Error binding root flags", err)
	}

	// Every command that runs peak detection shares the same flag set.
	// Binding to Viper happens per-invocation in sharedSetup, so the flags
	// of the command actually being run are the ones that win.
	addDetectionFlags(peaksCmd)
	addDetectionFlags(seriesCmd)
	addDetectionFlags(reportCmd)

	// Bind all flags of historyMigrateCmd to Viper
	historyMigrateCmd.Flags().Int("target-version", -1, "Target migration version (-1 means latest, 0 means rollback to initial state)")
	if err := viper.BindPFlags(historyMigrateCmd.Flags()); err != nil {
		contract.LogFatal("Error binding history migrate flags", err)
	}
}

// addDetectionFlags registers the peak detection flags on a command.
func addDetectionFlags(c *cobra.Command) {
	c.Flags().String("detect", string(schema.ProminenceDetection), "Peak detection strategy: known or prominence")
	c.Flags().String("peaks-file", "", "Path to a known-peaks CSV (required for --detect=known)")
	c.Flags().Int("top", contract.DefaultTopContributors, "Number of contributors to report per peak")
	c.Flags().Int("peak-window", contract.DefaultPeakWindow, "Half-width in days of the local maximum window")
	c.Flags().Int64("min-prominence", 0, "Minimum topographic prominence in pageviews")
}

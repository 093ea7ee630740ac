package iocache

import (
	"errors"
	"fmt"

	"github.com/huangsam/wikitrend/internal/parquet"
)

// ExecuteHistoryExport exports recorded runs from the history store to a
// Parquet file.
func ExecuteHistoryExport(outputFile string) error {
	if outputFile == "" {
		return errors.New("--output-file is required for history export")
	}

	store := Manager.GetHistoryStore()
	if store == nil {
		return errors.New("run history is disabled; set --history-backend to enable it")
	}

	status, err := store.GetStatus()
	if err != nil {
		return fmt.Errorf("failed to get history status: %w", err)
	}

	if status.Entries == 0 {
		return errors.New("no recorded runs found to export")
	}

	fmt.Printf("Exporting data from %s backend...\n", status.Backend)
	fmt.Printf("Total recorded runs: %d\n", status.Entries)

	runs, err := store.GetAllRuns()
	if err != nil {
		return fmt.Errorf("failed to retrieve run records: %w", err)
	}

	rows := parquet.RunRows(runs)
	if err := parquet.WriteRunsParquet(rows, outputFile); err != nil {
		return fmt.Errorf("failed to write run records: %w", err)
	}
	fmt.Printf("Exported %d run(s) to: %s\n", len(rows), outputFile)

	return nil
}

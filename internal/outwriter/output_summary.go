package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/huangsam/wikitrend/internal/contract"
	"github.com/huangsam/wikitrend/schema"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// PrintSummaryResult outputs the dataset summary, dispatching based on
// the output format configured.
func PrintSummaryResult(result schema.SummaryResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONSummary(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVSummary(result, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is handled by the export command")
	default:
		if err := printSummaryTable(result, fmtFloat); err != nil {
			return fmt.Errorf("error writing summary table output: %w", err)
		}
	}

	printFooter("Summary", cfg, duration)
	return nil
}

func printJSONSummary(result schema.SummaryResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, result)
	}, "JSON summary")
}

func printCSVSummary(result schema.SummaryResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"records", "articles", "total_views", "mean_views", "first_date", "last_date"}
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			row := []string{
				fmt.Sprintf("%d", result.Records),
				fmt.Sprintf("%d", result.Articles),
				fmt.Sprintf("%d", result.TotalViews),
				fmtFloat(result.MeanViews),
				result.FirstDate.Format(contract.DateFormat),
				result.LastDate.Format(contract.DateFormat),
			}
			return cw.Write(row)
		})
	}, "CSV summary")
}

func printSummaryTable(result schema.SummaryResult, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(os.Stdout)

	table.Header([]string{"Metric", "Value"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	data := [][]string{
		{"Records", schema.FormatViews(int64(result.Records))},
		{"Articles", schema.FormatViews(int64(result.Articles))},
		{"Total views", schema.FormatViews(result.TotalViews)},
		{"Mean views", fmtFloat(result.MeanViews)},
		{"First date", result.FirstDate.Format(contract.DateFormat)},
		{"Last date", result.LastDate.Format(contract.DateFormat)},
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

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

// PrintYearComparison outputs year-over-year totals, dispatching based on
// the output format configured.
func PrintYearComparison(result schema.YearComparisonResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONComparison(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVComparison(result, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is handled by the export command")
	default:
		if err := printComparisonTable(result, cfg); err != nil {
			return fmt.Errorf("error writing comparison table output: %w", err)
		}
	}

	printFooter("Year comparison", cfg, duration)
	return nil
}

func printJSONComparison(result schema.YearComparisonResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, result)
	}, "JSON year comparison")
}

func printCSVComparison(result schema.YearComparisonResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"year", "records", "views", "delta_percent"}
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			formatFloat := createFormatter(cfg.Precision)
			for _, y := range result.Years {
				row := []string{
					fmt.Sprintf("%d", y.Year),
					fmt.Sprintf("%d", y.Records),
					fmt.Sprintf("%d", y.Views),
					formatFloat(y.DeltaPercent),
				}
				if err := cw.Write(row); err != nil {
					return err
				}
			}
			return nil
		})
	}, "CSV year comparison")
}

func printComparisonTable(result schema.YearComparisonResult, cfg *contract.Config) error {
	table := tablewriter.NewWriter(os.Stdout)

	table.Header([]string{"Year", "Records", "Views", "Delta"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	formatFloat := createFormatter(cfg.Precision)
	var data [][]string
	for i, y := range result.Years {
		delta := "-"
		if i > 0 {
			delta = formatFloat(y.DeltaPercent) + "%"
		}
		data = append(data, []string{
			fmt.Sprintf("%d", y.Year),
			schema.FormatViews(int64(y.Records)),
			schema.FormatViews(y.Views),
			delta,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

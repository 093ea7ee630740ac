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

// PrintCategoryReport outputs predicted versus ground-truth category counts,
// dispatching based on the output format configured.
func PrintCategoryReport(result schema.CategoryReport, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONCategoryReport(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVCategoryReport(result, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is handled by the export command")
	default:
		if err := printCategoryTable(result, fmtFloat); err != nil {
			return fmt.Errorf("error writing category table output: %w", err)
		}
	}

	printFooter("Category report", cfg, duration)
	return nil
}

func printJSONCategoryReport(result schema.CategoryReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, result)
	}, "JSON category report")
}

func printCSVCategoryReport(result schema.CategoryReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"category", "predicted", "ground_truth"}
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			for _, c := range result.Counts {
				row := []string{
					c.Category,
					fmt.Sprintf("%d", c.Predicted),
					fmt.Sprintf("%d", c.GroundTruth),
				}
				if err := cw.Write(row); err != nil {
					return err
				}
			}
			return nil
		})
	}, "CSV category report")
}

func printCategoryTable(result schema.CategoryReport, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(os.Stdout)

	table.Header([]string{"Category", "Predicted", "Ground Truth"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, c := range result.Counts {
		data = append(data, []string{
			c.Category,
			schema.FormatViews(int64(c.Predicted)),
			schema.FormatViews(int64(c.GroundTruth)),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("%d article(s), %s%% agreement\n", result.Total, fmtFloat(result.Agreement))
	return nil
}

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

const monthFormat = "2006-01"

// PrintMonthlyResult outputs the per-article monthly breakdown for a year,
// dispatching based on the output format configured.
func PrintMonthlyResult(result schema.MonthlyResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONMonthly(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVMonthly(result, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is handled by the export command")
	default:
		if err := printMonthlyTable(result, cfg); err != nil {
			return fmt.Errorf("error writing monthly table output: %w", err)
		}
	}

	printFooter("Monthly breakdown", cfg, duration)
	return nil
}

func printJSONMonthly(result schema.MonthlyResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, result)
	}, "JSON monthly breakdown")
}

func printCSVMonthly(result schema.MonthlyResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"month", "article", "views"}
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			for _, p := range result.Points {
				row := []string{
					p.Month.Format(monthFormat),
					p.Article,
					fmt.Sprintf("%d", p.Views),
				}
				if err := cw.Write(row); err != nil {
					return err
				}
			}
			return nil
		})
	}, "CSV monthly breakdown")
}

func printMonthlyTable(result schema.MonthlyResult, cfg *contract.Config) error {
	table := tablewriter.NewWriter(os.Stdout)

	table.Header([]string{"Month", "Article", "Views"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := GetMaxTableArticleWidth(cfg)
	var data [][]string
	for _, p := range result.Points {
		data = append(data, []string{
			p.Month.Format(monthFormat),
			contract.TruncateArticle(p.Article, maxWidth),
			schema.FormatViews(p.Views),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Year %d, %d article(s)\n", result.Year, len(result.Articles))
	return nil
}

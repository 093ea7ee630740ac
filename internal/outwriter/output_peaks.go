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

// PrintPeakReport outputs the peak attribution report, dispatching based on
// the output format configured.
func PrintPeakReport(report schema.PeakReport, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONPeakReport(report, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVPeakReport(report, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is handled by the export command")
	default:
		// Default to human-readable table
		if err := printPeakTable(report, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing peak table output: %w", err)
		}
	}

	printFooter("Peak analysis", cfg, duration)
	return nil
}

// printJSONPeakReport handles opening the file and calling the JSON writer.
func printJSONPeakReport(report schema.PeakReport, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, report)
	}, "JSON peak report")
}

// printCSVPeakReport handles opening the file and calling the CSV writer.
func printCSVPeakReport(report schema.PeakReport, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"peak_date", "peak_views", "rank", "article", "views", "percent"}
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			for _, p := range report.Peaks {
				for i, c := range p.Contributors {
					row := []string{
						p.Peak.Date.Format(contract.DateFormat),
						fmt.Sprintf("%d", p.Peak.Views),
						fmt.Sprintf("%d", i+1),
						c.Article,
						fmt.Sprintf("%d", c.Views),
						fmtFloat(c.Percent),
					}
					if err := cw.Write(row); err != nil {
						return err
					}
				}
			}
			return nil
		})
	}, "CSV peak report")
}

// printPeakTable prints one table row per (peak, contributor) pair.
func printPeakTable(report schema.PeakReport, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(os.Stdout)

	headers := []string{"Peak Date", "Peak Views", "Rank", "Article", "Views", "Share", "Label"}
	table.Header(headers)

	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := GetMaxTableArticleWidth(cfg)
	var data [][]string
	for _, p := range report.Peaks {
		for i, c := range p.Contributors {
			label := contract.GetPlainLabel(c.Percent)
			if cfg.UseColors {
				label = contract.GetColorLabel(c.Percent)
			}
			row := []string{
				p.Peak.Date.Format(contract.DateFormat),
				schema.FormatViews(p.Peak.Views),
				fmt.Sprintf("%d", i+1),
				contract.TruncateArticle(c.Article, maxWidth),
				schema.FormatViews(c.Views),
				fmtFloat(c.Percent) + "%",
				label,
			}
			data = append(data, row)
		}
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("%d peak(s) via %s detection\n", len(report.Peaks), report.Detection)
	return nil
}

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

// PrintSeriesResult outputs the daily aggregate series, dispatching based on
// the output format configured. Peak days are flagged in the table view.
func PrintSeriesResult(result schema.SeriesResult, cfg *contract.Config, duration time.Duration) error {
	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONSeries(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVSeries(result, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is handled by the export command")
	default:
		if err := printSeriesTable(result); err != nil {
			return fmt.Errorf("error writing series table output: %w", err)
		}
	}

	printFooter("Series", cfg, duration)
	return nil
}

func printJSONSeries(result schema.SeriesResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, result)
	}, "JSON series")
}

func printCSVSeries(result schema.SeriesResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"date", "views", "peak"}
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			peaks := peakDateSet(result.Peaks)
			for _, p := range result.Series.Points {
				row := []string{
					p.Date.Format(contract.DateFormat),
					fmt.Sprintf("%d", p.Views),
					fmt.Sprintf("%t", peaks[p.Date.Unix()]),
				}
				if err := cw.Write(row); err != nil {
					return err
				}
			}
			return nil
		})
	}, "CSV series")
}

func printSeriesTable(result schema.SeriesResult) error {
	table := tablewriter.NewWriter(os.Stdout)

	table.Header([]string{"Date", "Views", "Peak"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	peaks := peakDateSet(result.Peaks)
	var data [][]string
	for _, p := range result.Series.Points {
		marker := ""
		if peaks[p.Date.Unix()] {
			marker = "*"
		}
		data = append(data, []string{
			p.Date.Format(contract.DateFormat),
			schema.FormatViews(p.Views),
			marker,
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("%d day(s), %d peak(s)\n", len(result.Series.Points), len(result.Peaks))
	return nil
}

func peakDateSet(peaks []schema.PeakPoint) map[int64]bool {
	set := make(map[int64]bool, len(peaks))
	for _, p := range peaks {
		set[p.Date.Unix()] = true
	}
	return set
}

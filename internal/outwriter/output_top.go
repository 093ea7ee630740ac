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

// PrintTopArticles outputs the ranked article totals, dispatching based on
// the output format configured.
func PrintTopArticles(result schema.TopArticlesResult, cfg *contract.Config, duration time.Duration) error {
	fmtFloat := createFormatter(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		if err := printJSONTopArticles(result, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.CSVOut:
		if err := printCSVTopArticles(result, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.ParquetOut:
		return fmt.Errorf("parquet output is handled by the export command")
	default:
		if err := printTopTable(result, cfg, fmtFloat); err != nil {
			return fmt.Errorf("error writing top articles table output: %w", err)
		}
	}

	printFooter("Top articles", cfg, duration)
	return nil
}

func printJSONTopArticles(result schema.TopArticlesResult, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		return writeJSON(w, result)
	}, "JSON top articles")
}

func printCSVTopArticles(result schema.TopArticlesResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		header := []string{"rank", "article", "views", "share"}
		return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
			for i, a := range result.Articles {
				row := []string{
					fmt.Sprintf("%d", i+1),
					a.Article,
					fmt.Sprintf("%d", a.Views),
					fmtFloat(a.Share),
				}
				if err := cw.Write(row); err != nil {
					return err
				}
			}
			return nil
		})
	}, "CSV top articles")
}

func printTopTable(result schema.TopArticlesResult, cfg *contract.Config, fmtFloat func(float64) string) error {
	table := tablewriter.NewWriter(os.Stdout)

	table.Header([]string{"Rank", "Article", "Views", "Share"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := GetMaxTableArticleWidth(cfg)
	var data [][]string
	for i, a := range result.Articles {
		data = append(data, []string{
			fmt.Sprintf("%d", i+1),
			contract.TruncateArticle(a.Article, maxWidth),
			schema.FormatViews(a.Views),
			fmtFloat(a.Share) + "%",
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Range total: %s pageviews\n", schema.FormatViews(result.RangeViews))
	return nil
}

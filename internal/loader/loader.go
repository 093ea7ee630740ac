// Package loader reads the flat CSV datasets into immutable record sets.
// Malformed or missing columns are a fatal configuration error surfaced here,
// once, at load time - never during queries.
package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/huangsam/wikitrend/internal/contract"
	"github.com/huangsam/wikitrend/schema"
)

// Column names expected in the pageview dataset.
const (
	articleColumn  = "article"
	dateColumn     = "date"
	viewsColumn    = "pageviews"
	categoryColumn = "category" // optional

	predictedColumn   = "predicted_label"
	groundTruthColumn = "ground_truth"
)

// LoadPageviews reads the pageview dataset from path.
// Required columns: article, date, pageviews. An optional category column is
// carried through when present. Rows are returned in file order.
func LoadPageviews(path string) ([]schema.PageviewRecord, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	cols, err := indexColumns(header, articleColumn, dateColumn, viewsColumn)
	if err != nil {
		return nil, fmt.Errorf("dataset %s: %w", path, err)
	}
	categoryIdx := optionalColumn(header, categoryColumn)

	var records []schema.PageviewRecord
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset %s line %d: %w", path, line, err)
		}

		date, err := contract.ParseDay(row[cols[dateColumn]])
		if err != nil {
			return nil, fmt.Errorf("dataset %s line %d: invalid date %q: %w", path, line, row[cols[dateColumn]], err)
		}
		views, err := parseViews(row[cols[viewsColumn]])
		if err != nil {
			return nil, fmt.Errorf("dataset %s line %d: %w", path, line, err)
		}

		record := schema.PageviewRecord{
			Article: strings.TrimSpace(row[cols[articleColumn]]),
			Date:    date,
			Views:   views,
		}
		if categoryIdx >= 0 {
			record.Category = strings.TrimSpace(row[categoryIdx])
		}
		records = append(records, record)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("dataset %s contains no records", path)
	}
	return records, nil
}

// LoadKnownPeaks reads an externally supplied peak lookup table with
// columns: date, pageviews. Rows are returned sorted by file order;
// callers sort by date.
func LoadKnownPeaks(path string) ([]schema.PeakPoint, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open peaks file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	cols, err := indexColumns(header, dateColumn, viewsColumn)
	if err != nil {
		return nil, fmt.Errorf("peaks file %s: %w", path, err)
	}

	var peaks []schema.PeakPoint
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("peaks file %s line %d: %w", path, line, err)
		}

		date, err := contract.ParseDay(row[cols[dateColumn]])
		if err != nil {
			return nil, fmt.Errorf("peaks file %s line %d: invalid date %q: %w", path, line, row[cols[dateColumn]], err)
		}
		views, err := parseViews(row[cols[viewsColumn]])
		if err != nil {
			return nil, fmt.Errorf("peaks file %s line %d: %w", path, line, err)
		}
		peaks = append(peaks, schema.PeakPoint{Date: date, Views: views})
	}

	return peaks, nil
}

// LoadCategoryPredictions reads the pre-computed classification results with
// columns: article, predicted_label, ground_truth.
func LoadCategoryPredictions(path string) ([]schema.CategoryPrediction, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open categories file %s: %w", path, err)
	}
	defer func() { _ = file.Close() }()

	reader := csv.NewReader(file)
	// Prediction exports sometimes carry extra probability columns; accept them.
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header of %s: %w", path, err)
	}

	cols, err := indexColumns(header, articleColumn, predictedColumn, groundTruthColumn)
	if err != nil {
		return nil, fmt.Errorf("categories file %s: %w", path, err)
	}

	// With FieldsPerRecord disabled the reader no longer rejects short rows,
	// so each row must cover the highest required column index.
	maxIdx := 0
	for _, i := range cols {
		if i > maxIdx {
			maxIdx = i
		}
	}

	known := make(map[string]struct{}, len(schema.CandidateCategories))
	for _, c := range schema.CandidateCategories {
		known[c] = struct{}{}
	}

	var preds []schema.CategoryPrediction
	unknown := make(map[string]struct{})
	for line := 2; ; line++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("categories file %s line %d: %w", path, line, err)
		}
		if len(row) <= maxIdx {
			return nil, fmt.Errorf("categories file %s line %d: expected at least %d columns, got %d",
				path, line, maxIdx+1, len(row))
		}
		pred := schema.CategoryPrediction{
			Article:     strings.TrimSpace(row[cols[articleColumn]]),
			Predicted:   strings.ToLower(strings.TrimSpace(row[cols[predictedColumn]])),
			GroundTruth: strings.ToLower(strings.TrimSpace(row[cols[groundTruthColumn]])),
		}
		if _, ok := known[pred.Predicted]; !ok {
			unknown[pred.Predicted] = struct{}{}
		}
		preds = append(preds, pred)
	}

	for label := range unknown {
		contract.LogWarn("Predicted label outside the candidate category set", fmt.Errorf("%q", label))
	}

	if len(preds) == 0 {
		return nil, fmt.Errorf("categories file %s contains no predictions", path)
	}
	return preds, nil
}

// indexColumns maps required column names to their positions in the header.
// Header matching is case-insensitive and whitespace-tolerant.
func indexColumns(header []string, required ...string) (map[string]int, error) {
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.ToLower(strings.TrimSpace(name))] = i
	}

	cols := make(map[string]int, len(required))
	var missing []string
	for _, name := range required {
		i, ok := index[name]
		if !ok {
			missing = append(missing, name)
			continue
		}
		cols[name] = i
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required column(s): %s", strings.Join(missing, ", "))
	}
	return cols, nil
}

// optionalColumn returns the position of an optional column, or -1.
func optionalColumn(header []string, name string) int {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i
		}
	}
	return -1
}

// parseViews parses a non-negative pageview count.
func parseViews(s string) (int64, error) {
	views, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid pageview count %q: %w", s, err)
	}
	if views < 0 {
		return 0, fmt.Errorf("negative pageview count %d", views)
	}
	return views, nil
}

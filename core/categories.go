package core

import (
	"sort"

	"github.com/huangsam/wikitrend/schema"
)

// BuildCategoryReport counts predicted and ground-truth labels across the
// pre-computed classification rows and computes the overall agreement rate.
// The predictions are display-only input; nothing here trains or scores a model.
func BuildCategoryReport(preds []schema.CategoryPrediction) schema.CategoryReport {
	predicted := make(map[string]int)
	groundTruth := make(map[string]int)
	agree := 0
	for _, p := range preds {
		predicted[p.Predicted]++
		groundTruth[p.GroundTruth]++
		if p.Predicted == p.GroundTruth {
			agree++
		}
	}

	names := make(map[string]struct{}, len(predicted)+len(groundTruth))
	for c := range predicted {
		names[c] = struct{}{}
	}
	for c := range groundTruth {
		names[c] = struct{}{}
	}

	counts := make([]schema.CategoryCount, 0, len(names))
	for c := range names {
		counts = append(counts, schema.CategoryCount{
			Category:    c,
			Predicted:   predicted[c],
			GroundTruth: groundTruth[c],
		})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].GroundTruth != counts[j].GroundTruth {
			return counts[i].GroundTruth > counts[j].GroundTruth
		}
		return counts[i].Category < counts[j].Category
	})

	report := schema.CategoryReport{Counts: counts, Total: len(preds)}
	if len(preds) > 0 {
		report.Agreement = 100 * float64(agree) / float64(len(preds))
	}
	return report
}

package core

import (
	"sort"

	"github.com/huangsam/wikitrend/schema"
)

// DetectorOptions tunes prominence-based peak detection.
type DetectorOptions struct {
	// Window is the number of days on each side a candidate must dominate.
	Window int
	// MinProminence is the minimum height of a candidate above the higher
	// of its two flanking valley floors. Zero accepts every local maximum.
	MinProminence int64
}

// ProminentPeaks scans the daily series for local maxima whose topographic
// prominence clears the configured threshold. Results are ordered by date.
//
// A candidate at index i is a local maximum when no day within Window days
// on either side is strictly higher (the leftmost day of a flat run wins,
// keeping the result deterministic). Its prominence is the candidate height
// minus the higher of the two valley floors found walking outward to the
// nearest strictly higher day, or to the series edge.
func ProminentPeaks(series schema.DailySeries, opts DetectorOptions) []schema.PeakPoint {
	points := series.Points
	if len(points) == 0 {
		return nil
	}
	window := opts.Window
	if window < 1 {
		window = 1
	}

	var peaks []schema.PeakPoint
	for i := range points {
		if !isLocalMax(points, i, window) {
			continue
		}
		if prominence(points, i) < opts.MinProminence {
			continue
		}
		peaks = append(peaks, schema.PeakPoint{Date: points[i].Date, Views: points[i].Views})
	}
	return peaks
}

// isLocalMax reports whether points[i] dominates its window. Earlier days of
// equal height shadow later ones.
func isLocalMax(points []schema.DailyPoint, i, window int) bool {
	lo := max(i-window, 0)
	hi := min(i+window, len(points)-1)
	for j := lo; j <= hi; j++ {
		if j == i {
			continue
		}
		if points[j].Views > points[i].Views {
			return false
		}
		if points[j].Views == points[i].Views && j < i {
			return false
		}
	}
	return true
}

// prominence computes the candidate's height above the higher of its two
// flanking valley floors. A candidate at the series edge has no flank on
// that side, so the remaining flank's floor decides alone; a single-point
// series is fully prominent.
func prominence(points []schema.DailyPoint, i int) int64 {
	height := points[i].Views

	leftFloor, hasLeft := flankFloor(points, i, -1)
	rightFloor, hasRight := flankFloor(points, i, +1)

	switch {
	case hasLeft && hasRight:
		return height - max(leftFloor, rightFloor)
	case hasLeft:
		return height - leftFloor
	case hasRight:
		return height - rightFloor
	default:
		return height
	}
}

// flankFloor walks from i in the given direction to the nearest strictly
// higher day or the series edge, tracking the lowest point on the way.
// ok is false when there are no days on that side.
func flankFloor(points []schema.DailyPoint, i, dir int) (floor int64, ok bool) {
	j := i + dir
	if j < 0 || j >= len(points) {
		return 0, false
	}
	height := points[i].Views
	floor = height
	for ; j >= 0 && j < len(points); j += dir {
		if points[j].Views > height {
			break
		}
		if points[j].Views < floor {
			floor = points[j].Views
		}
	}
	return floor, true
}

// KnownPeaks resolves an externally supplied peak table against the series.
// Each known date present in the series is re-totaled from the series itself
// so stale view counts in the lookup table cannot skew attribution; absent
// dates are kept as-is and surface later as skipped peaks. Results are
// ordered by date.
func KnownPeaks(series schema.DailySeries, known []schema.PeakPoint) []schema.PeakPoint {
	peaks := make([]schema.PeakPoint, 0, len(known))
	for _, p := range known {
		day := schema.Day(p.Date)
		resolved := schema.PeakPoint{Date: day, Views: p.Views}
		if total, ok := series.Total(day); ok {
			resolved.Views = total
		}
		peaks = append(peaks, resolved)
	}
	sort.Slice(peaks, func(i, j int) bool {
		return peaks[i].Date.Before(peaks[j].Date)
	})
	return peaks
}

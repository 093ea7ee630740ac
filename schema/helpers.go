package schema

import (
	"sort"
	"strconv"
	"strings"
	"time"
)

// Total returns the aggregate pageviews for the given day and whether the day
// exists in the series. Lookup is a binary search over the ascending points.
func (s DailySeries) Total(date time.Time) (int64, bool) {
	day := Day(date)
	i := sort.Search(len(s.Points), func(i int) bool {
		return !s.Points[i].Date.Before(day)
	})
	if i < len(s.Points) && s.Points[i].Date.Equal(day) {
		return s.Points[i].Views, true
	}
	return 0, false
}

// Sum returns the total pageviews across the whole series.
func (s DailySeries) Sum() int64 {
	var total int64
	for _, p := range s.Points {
		total += p.Views
	}
	return total
}

// Day truncates a timestamp to UTC midnight. All record and series dates pass
// through this so that lookups compare equal regardless of source precision.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Month truncates a timestamp to the first day of its month, UTC.
func Month(t time.Time) time.Time {
	y, m, _ := t.UTC().Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// FormatViews renders a pageview count with thousands separators, e.g. 1,234,567.
func FormatViews(v int64) string {
	s := strconv.FormatInt(v, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)
	out := strings.Join(parts, ",")
	if neg {
		return "-" + out
	}
	return out
}

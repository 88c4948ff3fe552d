package stats

import (
	"sort"
	"time"
)

// DateCount is the article count for one calendar date.
type DateCount struct {
	Date  time.Time // midnight UTC
	Count int
}

// dateLayouts are tried in order when parsing published timestamps. The data
// mixes ISO-8601 variants; anything unparseable is excluded from the daily
// aggregate only.
var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// ParseTimestamp parses a published value leniently. Layouts without a zone
// are taken as UTC.
func ParseTimestamp(s string) (time.Time, bool) {
	for _, l := range dateLayouts {
		if t, err := time.ParseInLocation(l, s, time.UTC); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// DailyCounts buckets rows by the UTC calendar date of their timestamp value
// and counts per date, ascending. Rows whose value fails to parse are
// silently skipped — partial data is expected.
func DailyCounts(values []string) []DateCount {
	byDate := map[time.Time]int{}
	for _, v := range values {
		t, ok := ParseTimestamp(v)
		if !ok {
			continue
		}
		day := t.UTC().Truncate(24 * time.Hour)
		byDate[day]++
	}

	out := make([]DateCount, 0, len(byDate))
	for d, c := range byDate {
		out = append(out, DateCount{Date: d, Count: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

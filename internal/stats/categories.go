package stats

import "sort"

// UnknownCategory is the bucket substituted for null/absent category cells so
// they rank alongside real values instead of being dropped.
const UnknownCategory = "(unknown)"

// CategoryCount is one (value, occurrences) pair of the ranking.
type CategoryCount struct {
	Value string
	Count int
}

// TopCategories ranks the distinct values of a categorical column by
// occurrence count, descending, truncated to the top n. Empty cells count
// toward the UnknownCategory bucket. Ties keep the order in which the values
// first appeared in the data.
func TopCategories(values []string, n int) []CategoryCount {
	counts := map[string]int{}
	firstSeen := map[string]int{}
	for i, v := range values {
		if v == "" {
			v = UnknownCategory
		}
		if _, ok := counts[v]; !ok {
			firstSeen[v] = i
		}
		counts[v]++
	}

	ranked := make([]CategoryCount, 0, len(counts))
	for v, c := range counts {
		ranked = append(ranked, CategoryCount{Value: v, Count: c})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Count == ranked[j].Count {
			return firstSeen[ranked[i].Value] < firstSeen[ranked[j].Value]
		}
		return ranked[i].Count > ranked[j].Count
	})
	if n > 0 && len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

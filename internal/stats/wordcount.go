// Package stats derives per-article word counts and computes the descriptive
// aggregates the report is built from. Everything here is pure: malformed
// cells resolve to a defined default instead of an error, so one corrupt row
// can never abort a run.
package stats

import "strings"

// DefaultTextColumns is the candidate order used to pick the free-text column
// when none is configured explicitly.
var DefaultTextColumns = []string{"body", "fulltext", "full_text", "content", "text", "article"}

// WordCount counts whitespace-delimited tokens in a cell. ok=false marks an
// absent/null cell. Total over all inputs: never fails, never negative.
func WordCount(v string, ok bool) int {
	if !ok {
		return 0
	}
	s := strings.TrimSpace(v)
	if s == "" {
		return 0
	}
	return len(strings.Fields(s))
}

// ResolveTextColumn picks the text column to count words in: the first
// candidate present in the header, else the last column. Best effort — the
// fallback keeps the tool useful on files with unexpected headers.
func ResolveTextColumn(headers []string, candidates []string) string {
	if len(candidates) == 0 {
		candidates = DefaultTextColumns
	}
	for _, c := range candidates {
		for _, h := range headers {
			if h == c {
				return c
			}
		}
	}
	if len(headers) == 0 {
		return ""
	}
	return headers[len(headers)-1]
}

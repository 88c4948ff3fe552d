// Package report assembles the markdown summary document. Compose is a pure
// function of already-computed aggregates; it never fails and is regenerated
// in full on every run.
package report

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/statloom/newsstats-cli/internal/stats"
)

// Params carries everything the report renders. Chart fields are relative
// filenames; each appears exactly once, in histogram, category, daily order.
type Params struct {
	TotalArticles int
	OutputCSV     string
	Summary       stats.Summary
	Ranking       []stats.CategoryCount
	Daily         []stats.DateCount
	CategoryLabel string

	HistogramChart string
	CategoryChart  string
	DailyChart     string
}

// Compose renders the report markdown.
func Compose(p Params) string {
	label := p.CategoryLabel
	if label == "" {
		label = "source"
	}

	var b strings.Builder
	b.WriteString("# Basic Stats Report\n\n")
	b.WriteString(fmt.Sprintf("- Total articles: %d\n", p.TotalArticles))
	b.WriteString(fmt.Sprintf("- Output CSV with word counts: `%s`\n", p.OutputCSV))
	b.WriteString("\n## Word count summary\n\n")
	b.WriteString(summaryTable(p.Summary))
	b.WriteString("\n### Histogram of word counts\n\n")
	b.WriteString(fmt.Sprintf("![Word count histogram](%s)\n", p.HistogramChart))
	b.WriteString(fmt.Sprintf("\n## Top %ss\n\n", label))
	b.WriteString(rankingTable(label, p.Ranking))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("![Top %ss bar chart](%s)\n", label, p.CategoryChart))
	b.WriteString("\n## Articles per day\n\n")
	b.WriteString(fmt.Sprintf("- Days with articles: %d\n\n", len(p.Daily)))
	b.WriteString(fmt.Sprintf("![Articles per day](%s)\n", p.DailyChart))
	return b.String()
}

func summaryTable(s stats.Summary) string {
	rows := [][]string{{"min", fmt.Sprintf("%d", int(s.Min))}}
	for _, pv := range s.Percentiles {
		rows = append(rows, []string{percentileLabel(pv.P), fmt.Sprintf("%d", int(pv.Value))})
	}
	rows = append(rows,
		[]string{"max", fmt.Sprintf("%d", int(s.Max))},
		[]string{"mean", fmt.Sprintf("%.2f", s.Mean)},
		[]string{"std dev", fmt.Sprintf("%.2f", s.Std)},
	)
	return table([]string{"metric", "value"}, rows)
}

func rankingTable(label string, ranking []stats.CategoryCount) string {
	rows := make([][]string, len(ranking))
	for i, cc := range ranking {
		rows[i] = []string{safeVal(cc.Value), fmt.Sprintf("%d", cc.Count)}
	}
	return table([]string{label, "articles"}, rows)
}

func percentileLabel(p float64) string {
	if p == 50 {
		return "median"
	}
	return fmt.Sprintf("%g%%", p)
}

// table renders a markdown table with cells padded to a common display width
// per column, so the raw markdown stays readable too.
func table(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = runewidth.StringWidth(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				if w := runewidth.StringWidth(cell); w > widths[i] {
					widths[i] = w
				}
			}
		}
	}

	var b strings.Builder
	writeRow := func(cells []string) {
		b.WriteString("|")
		for i := range headers {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			b.WriteString(" " + pad(cell, widths[i]) + " |")
		}
		b.WriteString("\n")
	}
	writeRow(headers)
	b.WriteString("|")
	for i := range headers {
		b.WriteString(strings.Repeat("-", widths[i]+2) + "|")
	}
	b.WriteString("\n")
	for _, row := range rows {
		writeRow(row)
	}
	return b.String()
}

func safeVal(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/")
}

func pad(s string, width int) string {
	gap := width - runewidth.StringWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

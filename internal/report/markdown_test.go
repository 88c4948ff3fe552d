package report

import (
	"strings"
	"testing"
	"time"

	"github.com/statloom/newsstats-cli/internal/stats"
)

func fixtureParams() Params {
	return Params{
		TotalArticles: 42,
		OutputCSV:     "articles_with_wordcount.csv",
		Summary: stats.Summary{
			Count: 42,
			Min:   0,
			Max:   1200,
			Mean:  431.879,
			Std:   210.5,
			Percentiles: []stats.Percentile{
				{P: 25, Value: 150}, {P: 50, Value: 420}, {P: 75, Value: 600},
				{P: 90, Value: 900}, {P: 95, Value: 1100},
			},
		},
		Ranking: []stats.CategoryCount{
			{Value: "Reuters", Count: 20},
			{Value: stats.UnknownCategory, Count: 12},
			{Value: "AP | wire", Count: 10},
		},
		Daily: []stats.DateCount{
			{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Count: 30},
			{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Count: 12},
		},
		CategoryLabel:  "source",
		HistogramChart: "word_count_hist.png",
		CategoryChart:  "top_sources_bar.png",
		DailyChart:     "articles_per_day.png",
	}
}

func TestComposeStructure(t *testing.T) {
	md := Compose(fixtureParams())
	for _, want := range []string{
		"# Basic Stats Report",
		"- Total articles: 42",
		"`articles_with_wordcount.csv`",
		"## Word count summary",
		"### Histogram of word counts",
		"## Top sources",
		"## Articles per day",
		"- Days with articles: 2",
	} {
		if !strings.Contains(md, want) {
			t.Fatalf("report missing %q:\n%s", want, md)
		}
	}
}

func TestComposeMetricOrder(t *testing.T) {
	md := Compose(fixtureParams())
	order := []string{"| min", "| 25%", "| median", "| 75%", "| 90%", "| 95%", "| max", "| mean"}
	last := -1
	for _, metric := range order {
		idx := strings.Index(md, metric)
		if idx < 0 {
			t.Fatalf("report missing metric row %q:\n%s", metric, md)
		}
		if idx < last {
			t.Fatalf("metric %q out of order:\n%s", metric, md)
		}
		last = idx
	}
	if !strings.Contains(md, "431.88") {
		t.Fatalf("mean not rounded to 2 decimals:\n%s", md)
	}
}

func TestComposeChartRefsOnceInOrder(t *testing.T) {
	p := fixtureParams()
	md := Compose(p)
	refs := []string{
		"](" + p.HistogramChart + ")",
		"](" + p.CategoryChart + ")",
		"](" + p.DailyChart + ")",
	}
	last := -1
	for _, ref := range refs {
		if n := strings.Count(md, ref); n != 1 {
			t.Fatalf("chart ref %q appears %d times, want 1:\n%s", ref, n, md)
		}
		idx := strings.Index(md, ref)
		if idx < last {
			t.Fatalf("chart ref %q out of order:\n%s", ref, md)
		}
		last = idx
	}
}

func TestComposeChartRefsOnEmptyData(t *testing.T) {
	md := Compose(Params{
		OutputCSV:      "empty_with_wordcount.csv",
		Summary:        stats.Summarize(nil, nil),
		HistogramChart: "word_count_hist.png",
		CategoryChart:  "top_sources_bar.png",
		DailyChart:     "articles_per_day.png",
	})
	for _, ref := range []string{"word_count_hist.png", "top_sources_bar.png", "articles_per_day.png"} {
		if strings.Count(md, "]("+ref+")") != 1 {
			t.Fatalf("empty report missing chart ref %q:\n%s", ref, md)
		}
	}
	if !strings.Contains(md, "- Total articles: 0") {
		t.Fatalf("empty report totals wrong:\n%s", md)
	}
}

func TestComposeEscapesTableCells(t *testing.T) {
	md := Compose(fixtureParams())
	if !strings.Contains(md, "AP / wire") {
		t.Fatalf("pipe in category value not sanitized:\n%s", md)
	}
}

func TestTableAlignment(t *testing.T) {
	out := table([]string{"metric", "value"}, [][]string{{"min", "0"}, {"median", "420"}})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 4 {
		t.Fatalf("table lines = %d:\n%s", len(lines), out)
	}
	width := len(lines[0])
	for _, l := range lines[1:] {
		if len(l) != width {
			t.Fatalf("table rows not aligned:\n%s", out)
		}
	}
}

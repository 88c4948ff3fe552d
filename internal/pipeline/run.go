// Package pipeline wires the stages of a run: load the CSV, derive word
// counts, compute the aggregates, render the charts, and write the augmented
// CSV plus the markdown report into the output directory.
package pipeline

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/statloom/newsstats-cli/internal/chart"
	"github.com/statloom/newsstats-cli/internal/dataset"
	"github.com/statloom/newsstats-cli/internal/report"
	"github.com/statloom/newsstats-cli/internal/stats"
	"github.com/statloom/newsstats-cli/internal/utils"
)

// Fixed artifact names, referenced relatively from the report.
const (
	HistogramChart = "word_count_hist.png"
	CategoryChart  = "top_sources_bar.png"
	DailyChart     = "articles_per_day.png"
	ReportFile     = "basic_stats_report.md"
)

// Config is the explicit configuration record for one run.
type Config struct {
	InputPath string
	OutDir    string

	TopN                 int
	HistogramBins        int
	Percentiles          []float64
	TextColumn           string // explicit override; empty means resolve
	TextColumnCandidates []string
	CategoryColumn       string
	DateColumn           string

	// Progress receives stdout progress lines, Warn non-fatal stderr
	// warnings. Either may be nil.
	Progress func(format string, args ...any)
	Warn     func(format string, args ...any)
}

// Result reports what a run produced.
type Result struct {
	Rows       int
	TextColumn string
	CSVPath    string
	ReportPath string
	ChartPaths []string
}

// Run executes the whole pipeline. A missing input file fails with
// dataset.ErrNotFound before any output is written; per-cell problems
// degrade to defaults and never abort the run.
func Run(cfg Config) (*Result, error) {
	progress := cfg.Progress
	if progress == nil {
		progress = func(string, ...any) {}
	}
	warn := cfg.Warn
	if warn == nil {
		warn = func(string, ...any) {}
	}
	if cfg.TopN <= 0 {
		cfg.TopN = 10
	}
	if cfg.CategoryColumn == "" {
		cfg.CategoryColumn = "source"
	}
	if cfg.DateColumn == "" {
		cfg.DateColumn = "published"
	}

	progress("Reading %s ...", cfg.InputPath)
	tbl, err := dataset.Load(cfg.InputPath)
	if err != nil {
		return nil, err
	}
	progress("Rows read: %d", tbl.Len())

	if missing := tbl.MissingExpected(); len(missing) > 0 {
		warn("missing expected columns: %s", strings.Join(missing, ", "))
	}

	textCol := cfg.TextColumn
	if textCol == "" {
		textCol = stats.ResolveTextColumn(tbl.Headers, cfg.TextColumnCandidates)
	}
	progress("Using text column: %s", textCol)

	textVals, textOK := tbl.Column(textCol)
	counts := make([]int, tbl.Len())
	wcCells := make([]string, tbl.Len())
	for i := range counts {
		if textOK {
			counts[i] = stats.WordCount(textVals[i], true)
		}
		wcCells[i] = strconv.Itoa(counts[i])
	}
	if err := tbl.SetColumn("word_count", wcCells); err != nil {
		return nil, fmt.Errorf("annotate table: %w", err)
	}

	if err := utils.EnsureDir(cfg.OutDir); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}
	csvName := outputCSVName(cfg.InputPath)
	csvPath := filepath.Join(cfg.OutDir, csvName)
	if err := dataset.Write(csvPath, tbl); err != nil {
		return nil, fmt.Errorf("write augmented csv: %w", err)
	}
	progress("Wrote CSV with word counts to %s", csvPath)

	summary := stats.Summarize(counts, cfg.Percentiles)

	catVals, catOK := tbl.Column(cfg.CategoryColumn)
	if !catOK {
		catVals = make([]string, tbl.Len())
	}
	ranking := stats.TopCategories(catVals, cfg.TopN)

	dateVals, dateOK := tbl.Column(cfg.DateColumn)
	if !dateOK {
		dateVals = nil
	}
	daily := stats.DailyCounts(dateVals)

	progress("Generating charts...")
	chartPaths := make([]string, 0, 3)
	renders := []struct {
		name   string
		render func(path string) error
	}{
		{HistogramChart, func(p string) error {
			return chart.Histogram(counts, cfg.HistogramBins, "Distribution of Article Word Counts", p)
		}},
		{CategoryChart, func(p string) error {
			title := fmt.Sprintf("Top %d %ss by Article Count", cfg.TopN, cfg.CategoryColumn)
			return chart.CategoryBar(ranking, title, p)
		}},
		{DailyChart, func(p string) error {
			return chart.DailyLine(daily, "Articles per Day", p)
		}},
	}
	for _, r := range renders {
		path := filepath.Join(cfg.OutDir, r.name)
		if err := r.render(path); err != nil {
			warn("chart %s skipped: %v", r.name, err)
			continue
		}
		chartPaths = append(chartPaths, path)
	}

	md := report.Compose(report.Params{
		TotalArticles:  tbl.Len(),
		OutputCSV:      csvName,
		Summary:        summary,
		Ranking:        ranking,
		Daily:          daily,
		CategoryLabel:  cfg.CategoryColumn,
		HistogramChart: HistogramChart,
		CategoryChart:  CategoryChart,
		DailyChart:     DailyChart,
	})
	reportPath := filepath.Join(cfg.OutDir, ReportFile)
	if err := utils.SafeWriteFile(reportPath, []byte(md)); err != nil {
		return nil, fmt.Errorf("write report: %w", err)
	}

	return &Result{
		Rows:       tbl.Len(),
		TextColumn: textCol,
		CSVPath:    csvPath,
		ReportPath: reportPath,
		ChartPaths: chartPaths,
	}, nil
}

// outputCSVName derives "<input stem>_with_wordcount.csv".
func outputCSVName(inputPath string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	if stem == "" {
		stem = "articles"
	}
	return stem + "_with_wordcount.csv"
}

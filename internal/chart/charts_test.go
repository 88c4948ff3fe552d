package chart

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/statloom/newsstats-cli/internal/stats"
)

func assertPNG(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("chart not written: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("chart %s is empty", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read chart: %v", err)
	}
	if len(data) < 8 || string(data[1:4]) != "PNG" {
		t.Fatalf("chart %s is not a PNG", path)
	}
}

func TestHistogram(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist.png")
	counts := []int{0, 12, 40, 55, 120, 340, 560, 570, 900, 1200}
	if err := Histogram(counts, 10, "Distribution of Article Word Counts", path); err != nil {
		t.Fatalf("Histogram: %v", err)
	}
	assertPNG(t, path)
}

func TestHistogramUniformValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hist.png")
	if err := Histogram([]int{5, 5, 5, 5}, 50, "uniform", path); err != nil {
		t.Fatalf("Histogram uniform: %v", err)
	}
	assertPNG(t, path)
}

func TestHistogramNoData(t *testing.T) {
	if err := Histogram(nil, 50, "empty", filepath.Join(t.TempDir(), "hist.png")); !errors.Is(err, ErrNoData) {
		t.Fatalf("err = %v, want ErrNoData", err)
	}
}

func TestCategoryBar(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bar.png")
	ranking := []stats.CategoryCount{
		{Value: "Reuters", Count: 20},
		{Value: "(unknown)", Count: 12},
		{Value: "AP", Count: 10},
	}
	if err := CategoryBar(ranking, "Top 10 sources by Article Count", path); err != nil {
		t.Fatalf("CategoryBar: %v", err)
	}
	assertPNG(t, path)
}

func TestCategoryBarNoData(t *testing.T) {
	if err := CategoryBar(nil, "empty", filepath.Join(t.TempDir(), "bar.png")); !errors.Is(err, ErrNoData) {
		t.Fatalf("err = %v, want ErrNoData", err)
	}
}

func TestDailyLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "line.png")
	days := []stats.DateCount{
		{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Count: 3},
		{Date: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC), Count: 8},
		{Date: time.Date(2024, 1, 4, 0, 0, 0, 0, time.UTC), Count: 1},
	}
	if err := DailyLine(days, "Articles per Day", path); err != nil {
		t.Fatalf("DailyLine: %v", err)
	}
	assertPNG(t, path)
}

func TestDailyLineNeedsTwoPoints(t *testing.T) {
	one := []stats.DateCount{{Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), Count: 3}}
	if err := DailyLine(one, "single", filepath.Join(t.TempDir(), "line.png")); !errors.Is(err, ErrNoData) {
		t.Fatalf("err = %v, want ErrNoData", err)
	}
}

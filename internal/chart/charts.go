// Package chart renders the three report charts as PNG artifacts. It sits
// behind a narrow path-in, path-out surface so the statistics core stays
// testable without any rendering dependency. Render failures are reported to
// the caller, which treats them as warnings: a chart can be skipped, the
// report cannot.
package chart

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	wchart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/statloom/newsstats-cli/internal/stats"
	"github.com/statloom/newsstats-cli/internal/utils"
)

// ErrNoData indicates there was nothing to draw. Not fatal.
var ErrNoData = errors.New("no data to plot")

const (
	histColor = "1f77b4"
	barColor  = "2ca02c"
	lineColor = "d62728"
)

// Histogram renders a binned bar chart of word counts.
func Histogram(counts []int, bins int, title, path string) error {
	if len(counts) == 0 {
		return ErrNoData
	}
	if bins <= 0 {
		bins = 50
	}
	lo, hi := counts[0], counts[0]
	for _, c := range counts[1:] {
		if c < lo {
			lo = c
		}
		if c > hi {
			hi = c
		}
	}
	span := hi - lo + 1
	width := (span + bins - 1) / bins
	nbins := (span + width - 1) / width

	binned := make([]int, nbins)
	for _, c := range counts {
		binned[(c-lo)/width]++
	}
	maxBin := 0
	bars := make([]wchart.Value, nbins)
	for i, n := range binned {
		bars[i] = wchart.Value{
			Label: strconv.Itoa(lo + i*width),
			Value: float64(n),
			Style: wchart.Style{FillColor: drawing.ColorFromHex(histColor)},
		}
		if n > maxBin {
			maxBin = n
		}
	}

	bc := wchart.BarChart{
		Title:      title,
		Width:      900,
		Height:     500,
		BarWidth:   12,
		BarSpacing: 2,
		Background: wchart.Style{Padding: wchart.Box{Top: 40}},
		YAxis: wchart.YAxis{
			Range: &wchart.ContinuousRange{Min: 0, Max: float64(maxBin) * 1.05},
		},
		Bars: bars,
	}
	return renderPNG(&bc, path)
}

// CategoryBar renders the top category ranking as a bar chart.
func CategoryBar(ranking []stats.CategoryCount, title, path string) error {
	if len(ranking) == 0 {
		return ErrNoData
	}
	maxCount := 0
	bars := make([]wchart.Value, len(ranking))
	for i, cc := range ranking {
		bars[i] = wchart.Value{
			Label: cc.Value,
			Value: float64(cc.Count),
			Style: wchart.Style{FillColor: drawing.ColorFromHex(barColor)},
		}
		if cc.Count > maxCount {
			maxCount = cc.Count
		}
	}
	bc := wchart.BarChart{
		Title:      title,
		Width:      900,
		Height:     600,
		BarWidth:   40,
		Background: wchart.Style{Padding: wchart.Box{Top: 40}},
		YAxis: wchart.YAxis{
			Range: &wchart.ContinuousRange{Min: 0, Max: float64(maxCount) * 1.05},
		},
		Bars: bars,
	}
	return renderPNG(&bc, path)
}

// DailyLine renders articles-per-day as a time series line chart. At least
// two dated points are needed to draw a line.
func DailyLine(days []stats.DateCount, title, path string) error {
	if len(days) < 2 {
		return ErrNoData
	}
	xs := make([]time.Time, len(days))
	ys := make([]float64, len(days))
	maxCount := 0
	for i, dc := range days {
		xs[i] = dc.Date
		ys[i] = float64(dc.Count)
		if dc.Count > maxCount {
			maxCount = dc.Count
		}
	}
	c := wchart.Chart{
		Title:      title,
		Width:      1000,
		Height:     500,
		Background: wchart.Style{Padding: wchart.Box{Top: 40}},
		XAxis: wchart.XAxis{
			ValueFormatter: wchart.TimeDateValueFormatter,
		},
		YAxis: wchart.YAxis{
			Range: &wchart.ContinuousRange{Min: 0, Max: float64(maxCount) + 1},
		},
		Series: []wchart.Series{
			wchart.TimeSeries{
				Name:    "articles",
				XValues: xs,
				YValues: ys,
				Style: wchart.Style{
					StrokeColor: drawing.ColorFromHex(lineColor),
					DotColor:    drawing.ColorFromHex(lineColor),
					DotWidth:    3,
				},
			},
		},
	}
	return renderPNG(&c, path)
}

type renderable interface {
	Render(rp wchart.RendererProvider, w io.Writer) error
}

func renderPNG(c renderable, path string) error {
	var buf bytes.Buffer
	if err := c.Render(wchart.PNG, &buf); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return utils.SafeWriteFile(path, buf.Bytes())
}

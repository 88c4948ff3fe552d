package stats

import (
	"math"
	"sort"

	moremath "github.com/aclements/go-moremath/stats"
)

// DefaultPercentiles is the percentile set of the canonical eight-metric
// summary (min and max are always included alongside).
var DefaultPercentiles = []float64{25, 50, 75, 90, 95}

// Percentile is one interpolated percentile of the word-count distribution.
type Percentile struct {
	P     float64 // e.g. 25 for the 25th percentile
	Value float64
}

// Summary describes the word-count distribution across all rows, treated as
// the whole population. An empty input yields all zeros, never NaN.
type Summary struct {
	Count       int
	Min         float64
	Max         float64
	Mean        float64
	Std         float64
	Percentiles []Percentile
}

// Percentile returns the value for percentile p, or 0 if p was not computed.
func (s Summary) Percentile(p float64) float64 {
	for _, pv := range s.Percentiles {
		if pv.P == p {
			return pv.Value
		}
	}
	return 0
}

// Summarize computes min/percentiles/max/mean/std of the given word counts.
// Percentiles use linear interpolation at position q*(n-1) over the sorted
// values (the conventional "inclusive" definition).
func Summarize(counts []int, pcts []float64) Summary {
	if len(pcts) == 0 {
		pcts = DefaultPercentiles
	}
	s := Summary{Count: len(counts), Percentiles: make([]Percentile, len(pcts))}
	for i, p := range pcts {
		s.Percentiles[i].P = p
	}
	if len(counts) == 0 {
		return s
	}

	xs := make([]float64, len(counts))
	for i, c := range counts {
		xs[i] = float64(c)
	}
	sort.Float64s(xs)

	sample := moremath.Sample{Xs: xs, Sorted: true}
	s.Min = xs[0]
	s.Max = xs[len(xs)-1]
	s.Mean = sample.Mean()
	if len(xs) > 1 {
		s.Std = sample.StdDev()
	}
	for i := range s.Percentiles {
		s.Percentiles[i].Value = quantile(xs, s.Percentiles[i].P/100)
	}
	return s
}

func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return 0
	}
	if q <= 0 {
		return sorted[0]
	}
	if q >= 1 {
		return sorted[len(sorted)-1]
	}
	pos := q * float64(len(sorted)-1)
	lo := int(math.Floor(pos))
	hi := int(math.Ceil(pos))
	if lo == hi {
		return sorted[lo]
	}
	w := pos - float64(lo)
	return sorted[lo]*(1-w) + sorted[hi]*w
}

package render

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// binEdges returns n+1 equal-width dividers spanning every series, so classes
// share bins. The last divider is nudged above the maximum so it falls inside
// the final bin.
func binEdges(series []Series, n int) []float64 {
	if n < 1 {
		n = 1
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range series {
		if len(s.Values) == 0 {
			continue
		}
		lo = math.Min(lo, floats.Min(s.Values))
		hi = math.Max(hi, floats.Max(s.Values))
	}
	if math.IsInf(lo, 1) {
		lo, hi = 0, 1
	}
	if lo == hi {
		hi = lo + 1
	}
	d := floats.Span(make([]float64, n+1), lo, hi)
	d[n] = math.Nextafter(hi, math.Inf(1))
	return d
}

// binCounts counts values per bin for the given dividers.
func binCounts(values, dividers []float64) []float64 {
	if len(values) == 0 {
		return make([]float64, len(dividers)-1)
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return stat.Histogram(nil, dividers, sorted, nil)
}

func binLabels(dividers []float64) []string {
	out := make([]string, len(dividers)-1)
	for i := range out {
		out[i] = fmt.Sprintf("%.2f–%.2f", dividers[i], dividers[i+1])
	}
	return out
}

package analysis

import (
	"math"
	"sort"

	"github.com/KaramelBytes/iris-cli/internal/dataset"
	"gonum.org/v1/gonum/stat"
)

// SummaryStats is the descriptive summary of one numeric column.
type SummaryStats struct {
	Count int
	Mean  float64
	// Std is the sample standard deviation (n-1 denominator); NaN when Count is 1.
	Std float64
	Min float64
	Q25 float64
	Q50 float64
	Q75 float64
	Max float64
}

// FieldSummary pairs a field with its summary.
type FieldSummary struct {
	Field dataset.Field
	Stats SummaryStats
}

// Describe summarizes a column of values. The result does not depend on the
// order of values.
func Describe(values []float64) (SummaryStats, error) {
	n := len(values)
	if n == 0 {
		return SummaryStats{}, &DegenerateInputError{Op: "describe", N: 0, Reason: "no observations"}
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	s := SummaryStats{
		Count: n,
		Mean:  stat.Mean(sorted, nil),
		Std:   math.NaN(),
		Min:   sorted[0],
		Q25:   quantile(sorted, 0.25),
		Q50:   quantile(sorted, 0.5),
		Q75:   quantile(sorted, 0.75),
		Max:   sorted[n-1],
	}
	if n > 1 {
		s.Std = stat.StdDev(sorted, nil)
	}
	return s, nil
}

// Summarize computes one SummaryStats per numeric field of the dataset.
func Summarize(ds *dataset.Dataset) ([]FieldSummary, error) {
	return summarizeRows(ds.Len(), ds.Column)
}

// SummarizeGroup computes one SummaryStats per numeric field of a group.
func SummarizeGroup(g dataset.Group) ([]FieldSummary, error) {
	return summarizeRows(g.Len(), g.Column)
}

func summarizeRows(n int, col func(dataset.Field) []float64) ([]FieldSummary, error) {
	if n == 0 {
		return nil, &DegenerateInputError{Op: "summarize", N: 0, Reason: "no observations"}
	}
	out := make([]FieldSummary, 0, dataset.NumFields)
	for _, f := range dataset.Fields() {
		s, err := Describe(col(f))
		if err != nil {
			return nil, err
		}
		out = append(out, FieldSummary{Field: f, Stats: s})
	}
	return out, nil
}

// quantile interpolates linearly between the closest ranks of sorted values.
func quantile(sorted []float64, q float64) float64 {
	if len(sorted) == 0 {
		return math.NaN()
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

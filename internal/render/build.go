package render

import (
	"fmt"
	"math"

	"github.com/KaramelBytes/iris-cli/internal/analysis"
	"github.com/KaramelBytes/iris-cli/internal/dataset"
)

// HistogramFile is the output file name for a field's histogram.
func HistogramFile(f dataset.Field, ext string) string {
	return f.Column() + "_hist." + ext
}

// ScatterFile is the output file name for an (x, y) scatter chart.
func ScatterFile(x, y dataset.Field, ext string) string {
	return x.Column() + "_vs_" + y.Column() + "." + ext
}

// HistogramFor builds the overlaid per-class histogram of one field.
func HistogramFor(f dataset.Field, p dataset.Partition, bins int) HistogramSpec {
	spec := HistogramSpec{
		Title:  "Iris " + f.Title() + "s",
		XLabel: f.AxisLabel(),
		Bins:   bins,
	}
	for _, g := range p.Groups {
		spec.Series = append(spec.Series, Series{Name: g.Name(), Values: g.Column(f)})
	}
	if p.Flagged() {
		spec.Series = append(spec.Series, Series{Name: "Unknown", Values: columnOf(p.Unknown, f)})
	}
	return spec
}

// ScatterFor builds the per-class scatter chart of a pair analysis. Legend
// names carry each class's r and r².
func ScatterFor(pa *analysis.PairAnalysis, p dataset.Partition) ScatterSpec {
	spec := ScatterSpec{
		Title:  fmt.Sprintf("Iris %s vs %s", pa.X.Title(), pa.Y.Title()),
		XLabel: pa.X.AxisLabel(),
		YLabel: pa.Y.AxisLabel(),
		Overall: &Line{
			Label:     "All " + annotate(pa.Overall),
			Slope:     pa.Overall.Slope,
			Intercept: pa.Overall.Intercept,
		},
	}
	for _, g := range p.Groups {
		s := ScatterSeries{Name: g.Name(), Points: points(g.Rows, pa.X, pa.Y)}
		if gf, ok := pa.Group(g.Label); ok && gf.OK() {
			s.Name += " " + annotate(gf.Fit)
			s.Line = &Line{Label: s.Name, Slope: gf.Fit.Slope, Intercept: gf.Fit.Intercept}
		}
		spec.Series = append(spec.Series, s)
	}
	if p.Flagged() {
		spec.Series = append(spec.Series, ScatterSeries{Name: "Unknown", Points: points(p.Unknown, pa.X, pa.Y)})
	}
	return spec
}

func annotate(f analysis.Fit) string {
	if math.IsNaN(f.R) {
		return "(r undefined)"
	}
	return fmt.Sprintf("(r=%.2f, r²=%.2f)", f.R, f.R2)
}

func points(rows []dataset.Observation, x, y dataset.Field) []Point {
	out := make([]Point, len(rows))
	for i, o := range rows {
		out[i] = Point{X: o.Value(x), Y: o.Value(y)}
	}
	return out
}

func columnOf(rows []dataset.Observation, f dataset.Field) []float64 {
	out := make([]float64, len(rows))
	for i, o := range rows {
		out[i] = o.Value(f)
	}
	return out
}

package render

import (
	"fmt"
	"strings"
)

// Series is one class's values in a histogram.
type Series struct {
	Name   string
	Values []float64
}

// HistogramSpec describes an overlaid per-class histogram.
type HistogramSpec struct {
	Title  string
	XLabel string
	Series []Series
	Bins   int
}

// Point is an (x, y) observation.
type Point struct{ X, Y float64 }

// Line is y = Slope*x + Intercept drawn across the data range.
type Line struct {
	Label     string
	Slope     float64
	Intercept float64
}

// At evaluates the line at x.
func (l Line) At(x float64) float64 { return l.Slope*x + l.Intercept }

// ScatterSeries is one class's points and, optionally, its regression line.
type ScatterSeries struct {
	Name   string
	Points []Point
	Line   *Line
}

// ScatterSpec describes a per-class scatter plot with regression overlays.
type ScatterSpec struct {
	Title   string
	XLabel  string
	YLabel  string
	Series  []ScatterSeries
	Overall *Line
}

// Renderer writes charts to files.
type Renderer interface {
	// Ext is the file extension, without the dot, of files this renderer writes.
	Ext() string
	Histogram(path string, spec HistogramSpec) error
	Scatter(path string, spec ScatterSpec) error
}

// New returns a renderer for format (png, svg, pdf or html). Sizes are in
// centimetres.
func New(format string, widthCm, heightCm float64) (Renderer, error) {
	if widthCm <= 0 || heightCm <= 0 {
		return nil, fmt.Errorf("chart size must be positive, got %.1fx%.1f cm", widthCm, heightCm)
	}
	switch f := strings.ToLower(strings.TrimSpace(format)); f {
	case "png", "svg", "pdf":
		return newPlotRenderer(f, widthCm, heightCm), nil
	case "html":
		return newHTMLRenderer(widthCm, heightCm), nil
	default:
		return nil, fmt.Errorf("unsupported chart format: %s (use png, svg, pdf or html)", format)
	}
}

func dataRange(points []Point) (lo, hi float64, ok bool) {
	if len(points) == 0 {
		return 0, 0, false
	}
	lo, hi = points[0].X, points[0].X
	for _, p := range points[1:] {
		if p.X < lo {
			lo = p.X
		}
		if p.X > hi {
			hi = p.X
		}
	}
	return lo, hi, true
}

func allPoints(spec ScatterSpec) []Point {
	var out []Point
	for _, s := range spec.Series {
		out = append(out, s.Points...)
	}
	return out
}

package render

import (
	"bytes"
	"fmt"

	"github.com/KaramelBytes/iris-cli/internal/utils"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// plotRenderer draws static images with gonum/plot.
type plotRenderer struct {
	format string
	width  vg.Length
	height vg.Length
}

func newPlotRenderer(format string, widthCm, heightCm float64) *plotRenderer {
	return &plotRenderer{
		format: format,
		width:  vg.Length(widthCm) * vg.Centimeter,
		height: vg.Length(heightCm) * vg.Centimeter,
	}
}

func (r *plotRenderer) Ext() string { return r.format }

func (r *plotRenderer) Histogram(path string, spec HistogramSpec) error {
	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = "frequency"
	p.Legend.Top = true

	dividers := binEdges(spec.Series, spec.Bins)
	for i, s := range spec.Series {
		if len(s.Values) == 0 {
			continue
		}
		c := seriesColor(i)
		h := &plotter.Histogram{
			Bins:      histBins(binCounts(s.Values, dividers), dividers),
			Width:     dividers[1] - dividers[0],
			FillColor: translucent(c),
			LineStyle: plotter.DefaultLineStyle,
		}
		h.LineStyle.Color = c
		h.LineStyle.Width = vg.Points(0.5)
		p.Add(h)
		p.Legend.Add(s.Name, h)
	}
	return r.save(p, path)
}

func (r *plotRenderer) Scatter(path string, spec ScatterSpec) error {
	p := plot.New()
	p.Title.Text = spec.Title
	p.X.Label.Text = spec.XLabel
	p.Y.Label.Text = spec.YLabel
	p.Legend.Top = true
	p.Legend.Left = true
	p.Add(plotter.NewGrid())

	for i, s := range spec.Series {
		if len(s.Points) == 0 {
			continue
		}
		c := seriesColor(i)
		sc, err := plotter.NewScatter(xys(s.Points))
		if err != nil {
			return fmt.Errorf("scatter %s: %w", s.Name, err)
		}
		sc.GlyphStyle.Color = c
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(2.5)
		p.Add(sc)
		p.Legend.Add(s.Name, sc)

		if s.Line == nil {
			continue
		}
		lo, hi, _ := dataRange(s.Points)
		l, err := lineBetween(*s.Line, lo, hi)
		if err != nil {
			return fmt.Errorf("regression line %s: %w", s.Name, err)
		}
		l.LineStyle.Color = c
		l.LineStyle.Width = vg.Points(1.5)
		p.Add(l)
	}

	if spec.Overall != nil {
		if lo, hi, ok := dataRange(allPoints(spec)); ok {
			l, err := lineBetween(*spec.Overall, lo, hi)
			if err != nil {
				return fmt.Errorf("overall regression line: %w", err)
			}
			l.LineStyle.Color = overallColor
			l.LineStyle.Width = vg.Points(1)
			l.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
			p.Add(l)
			p.Legend.Add(spec.Overall.Label, l)
		}
	}
	return r.save(p, path)
}

func (r *plotRenderer) save(p *plot.Plot, path string) error {
	wt, err := p.WriterTo(r.width, r.height, r.format)
	if err != nil {
		return fmt.Errorf("encode %s: %w", r.format, err)
	}
	var buf bytes.Buffer
	if _, err := wt.WriteTo(&buf); err != nil {
		return fmt.Errorf("render %s: %w", r.format, err)
	}
	return utils.SafeWriteFile(path, buf.Bytes())
}

func lineBetween(l Line, lo, hi float64) (*plotter.Line, error) {
	return plotter.NewLine(plotter.XYs{
		{X: lo, Y: l.At(lo)},
		{X: hi, Y: l.At(hi)},
	})
}

func histBins(counts, dividers []float64) []plotter.HistogramBin {
	out := make([]plotter.HistogramBin, len(counts))
	for i, c := range counts {
		out[i] = plotter.HistogramBin{Min: dividers[i], Max: dividers[i+1], Weight: c}
	}
	return out
}

func xys(points []Point) plotter.XYs {
	out := make(plotter.XYs, len(points))
	for i, p := range points {
		out[i].X = p.X
		out[i].Y = p.Y
	}
	return out
}

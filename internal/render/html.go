package render

import (
	"bytes"
	"fmt"

	"github.com/KaramelBytes/iris-cli/internal/utils"
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// cssPxPerCm converts chart sizes for the browser (96 dpi).
const cssPxPerCm = 96 / 2.54

// htmlRenderer writes interactive ECharts pages with go-echarts.
type htmlRenderer struct {
	width  string
	height string
}

func newHTMLRenderer(widthCm, heightCm float64) *htmlRenderer {
	return &htmlRenderer{
		width:  fmt.Sprintf("%.0fpx", widthCm*cssPxPerCm),
		height: fmt.Sprintf("%.0fpx", heightCm*cssPxPerCm),
	}
}

func (r *htmlRenderer) Ext() string { return "html" }

func (r *htmlRenderer) init(title string) opts.Initialization {
	return opts.Initialization{PageTitle: title, Width: r.width, Height: r.height}
}

// Histogram draws grouped bars over shared bins so classes line up.
func (r *htmlRenderer) Histogram(path string, spec HistogramSpec) error {
	dividers := binEdges(spec.Series, spec.Bins)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(r.init(spec.Title)),
		charts.WithTitleOpts(opts.Title{Title: spec.Title}),
		charts.WithXAxisOpts(opts.XAxis{Name: spec.XLabel}),
		charts.WithYAxisOpts(opts.YAxis{Name: "frequency"}),
	)
	bar.SetXAxis(binLabels(dividers))
	for i, s := range spec.Series {
		counts := binCounts(s.Values, dividers)
		data := make([]opts.BarData, len(counts))
		for j, c := range counts {
			data[j] = opts.BarData{Value: c}
		}
		bar.AddSeries(s.Name, data, charts.WithItemStyleOpts(opts.ItemStyle{Color: hex(seriesColor(i))}))
	}

	var buf bytes.Buffer
	if err := bar.Render(&buf); err != nil {
		return fmt.Errorf("render histogram: %w", err)
	}
	return utils.SafeWriteFile(path, buf.Bytes())
}

// Scatter draws one scatter series per class and overlays regression lines.
func (r *htmlRenderer) Scatter(path string, spec ScatterSpec) error {
	sc := charts.NewScatter()
	sc.SetGlobalOptions(
		charts.WithInitializationOpts(r.init(spec.Title)),
		charts.WithTitleOpts(opts.Title{Title: spec.Title}),
		charts.WithXAxisOpts(opts.XAxis{Name: spec.XLabel, Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: spec.YLabel, Type: "value"}),
	)

	for i, s := range spec.Series {
		if len(s.Points) == 0 {
			continue
		}
		c := hex(seriesColor(i))
		data := make([]opts.ScatterData, len(s.Points))
		for j, p := range s.Points {
			data[j] = opts.ScatterData{Value: []interface{}{p.X, p.Y}}
		}
		sc.AddSeries(s.Name, data, charts.WithItemStyleOpts(opts.ItemStyle{Color: c}))

		if s.Line == nil {
			continue
		}
		lo, hi, _ := dataRange(s.Points)
		sc.Overlap(lineChart(s.Name+" fit", *s.Line, lo, hi, opts.LineStyle{Color: c, Width: 2}))
	}
	if spec.Overall != nil {
		if lo, hi, ok := dataRange(allPoints(spec)); ok {
			sc.Overlap(lineChart(spec.Overall.Label, *spec.Overall, lo, hi,
				opts.LineStyle{Color: hex(overallColor), Width: 1, Type: "dashed"}))
		}
	}

	var buf bytes.Buffer
	if err := sc.Render(&buf); err != nil {
		return fmt.Errorf("render scatter: %w", err)
	}
	return utils.SafeWriteFile(path, buf.Bytes())
}

func lineChart(name string, l Line, lo, hi float64, style opts.LineStyle) *charts.Line {
	line := charts.NewLine()
	line.AddSeries(name, []opts.LineData{
		{Value: []interface{}{lo, l.At(lo)}},
		{Value: []interface{}{hi, l.At(hi)}},
	}, charts.WithLineStyleOpts(style))
	return line
}

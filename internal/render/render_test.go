package render

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KaramelBytes/iris-cli/internal/analysis"
	"github.com/KaramelBytes/iris-cli/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func irisFixture(t *testing.T) (*dataset.Dataset, dataset.Partition) {
	t.Helper()
	ds, err := dataset.Iris()
	require.NoError(t, err)
	return ds, ds.Partition()
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	_, err := New("gif", 10, 10)
	require.Error(t, err)
	_, err = New("png", 0, 10)
	require.Error(t, err)

	r, err := New("HTML", 10, 10)
	require.NoError(t, err)
	assert.Equal(t, "html", r.Ext())
}

func TestHistogramForTitlesAndSeries(t *testing.T) {
	_, p := irisFixture(t)
	spec := HistogramFor(dataset.SepalLength, p, 10)
	assert.Equal(t, "Iris Sepal Lengths", spec.Title)
	assert.Equal(t, "sepal length (in centimetres)", spec.XLabel)
	require.Len(t, spec.Series, 3)
	assert.Equal(t, "Setosa", spec.Series[0].Name)
	assert.Len(t, spec.Series[2].Values, 50)
	assert.Equal(t, "sepal_length_cm_hist.png", HistogramFile(dataset.SepalLength, "png"))
}

func TestScatterForAnnotatesFits(t *testing.T) {
	ds, p := irisFixture(t)
	pa, err := analysis.ComparePartition(ds, p, dataset.PetalLength, dataset.PetalWidth)
	require.NoError(t, err)
	spec := ScatterFor(pa, p)
	assert.Equal(t, "Iris Petal Length vs Petal Width", spec.Title)
	require.Len(t, spec.Series, 3)
	for _, s := range spec.Series {
		require.NotNil(t, s.Line, s.Name)
		assert.Contains(t, s.Name, "r=")
		assert.Len(t, s.Points, 50)
	}
	require.NotNil(t, spec.Overall)
	assert.True(t, strings.HasPrefix(spec.Overall.Label, "All (r=0.96"), spec.Overall.Label)
	assert.Equal(t, "petal_length_cm_vs_petal_width_cm.html", ScatterFile(dataset.PetalLength, dataset.PetalWidth, "html"))
}

func TestBinCountsCoverAllValues(t *testing.T) {
	series := []Series{
		{Name: "a", Values: []float64{1, 2, 2, 3, 10}},
		{Name: "b", Values: []float64{4, 4}},
		{Name: "empty"},
	}
	d := binEdges(series, 4)
	require.Len(t, d, 5)
	assert.Equal(t, 1.0, d[0])
	total := 0.0
	for _, s := range series {
		for _, c := range binCounts(s.Values, d) {
			total += c
		}
	}
	assert.Equal(t, 7.0, total)
	assert.Equal(t, []float64{4, 0, 0, 1}, binCounts(series[0].Values, d))
	assert.Len(t, binLabels(d), 4)

	same := binEdges([]Series{{Values: []float64{5, 5}}}, 3)
	assert.Equal(t, []float64{2}, binCounts([]float64{5, 5}, same)[:1])
}

func TestPlotRendererWritesPNG(t *testing.T) {
	ds, p := irisFixture(t)
	r, err := New("png", 12, 9)
	require.NoError(t, err)
	dir := t.TempDir()

	hist := filepath.Join(dir, HistogramFile(dataset.PetalWidth, r.Ext()))
	require.NoError(t, r.Histogram(hist, HistogramFor(dataset.PetalWidth, p, 10)))
	assertPNG(t, hist)

	pa, err := analysis.ComparePartition(ds, p, dataset.SepalLength, dataset.SepalWidth)
	require.NoError(t, err)
	sc := filepath.Join(dir, ScatterFile(dataset.SepalLength, dataset.SepalWidth, r.Ext()))
	require.NoError(t, r.Scatter(sc, ScatterFor(pa, p)))
	assertPNG(t, sc)
}

func TestHTMLRendererWritesECharts(t *testing.T) {
	ds, p := irisFixture(t)
	r, err := New("html", 16, 12)
	require.NoError(t, err)
	dir := t.TempDir()

	hist := filepath.Join(dir, HistogramFile(dataset.SepalWidth, r.Ext()))
	require.NoError(t, r.Histogram(hist, HistogramFor(dataset.SepalWidth, p, 8)))
	body, err := os.ReadFile(hist)
	require.NoError(t, err)
	assert.Contains(t, string(body), "echarts")
	assert.Contains(t, string(body), "Iris Sepal Widths")
	assert.Contains(t, string(body), "Versicolor")

	pa, err := analysis.ComparePartition(ds, p, dataset.SepalLength, dataset.PetalLength)
	require.NoError(t, err)
	sc := filepath.Join(dir, ScatterFile(dataset.SepalLength, dataset.PetalLength, r.Ext()))
	require.NoError(t, r.Scatter(sc, ScatterFor(pa, p)))
	body, err = os.ReadFile(sc)
	require.NoError(t, err)
	assert.Contains(t, string(body), "scatter")
	assert.Contains(t, string(body), "dashed")
}

func assertPNG(t *testing.T, path string) {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(b, []byte("\x89PNG")), "not a png: %s", path)
}

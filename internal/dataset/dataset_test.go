package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestIrisEmbedded(t *testing.T) {
	ds, err := Iris()
	require.NoError(t, err)
	assert.Equal(t, EmbeddedName, ds.Name)
	require.Equal(t, 150, ds.Len())
	assert.Equal(t, KnownLabels(), ds.Labels())

	first := ds.Rows[0]
	assert.Equal(t, [NumFields]float64{5.1, 3.5, 1.4, 0.2}, first.Values)
	assert.Equal(t, Setosa, first.Label)

	sl := ds.Column(SepalLength)
	lo, hi := sl[0], sl[0]
	for _, v := range sl {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	assert.Equal(t, 4.3, lo)
	assert.Equal(t, 7.9, hi)
}

func TestPartitionIris(t *testing.T) {
	ds, err := Iris()
	require.NoError(t, err)
	p := ds.Partition()
	require.Len(t, p.Groups, 3)
	total := 0
	for i, g := range p.Groups {
		assert.Equal(t, KnownLabels()[i], g.Label)
		assert.Equal(t, 50, g.Len())
		for _, o := range g.Rows {
			assert.Equal(t, g.Label, o.Label)
		}
		total += g.Len()
	}
	assert.Equal(t, ds.Len(), total)
	assert.False(t, p.Flagged())
	assert.NoError(t, p.Validate())
}

func TestPartitionFlagsUnknownLabels(t *testing.T) {
	ds := New("t", []Observation{
		{Values: [NumFields]float64{1, 2, 3, 4}, Label: Setosa},
		{Values: [NumFields]float64{1, 2, 3, 4}, Label: "setosa"},
		{Values: [NumFields]float64{1, 2, 3, 4}, Label: "Iris-unknown"},
		{Values: [NumFields]float64{1, 2, 3, 4}, Label: "setosa"},
	})
	p := ds.Partition()
	assert.Equal(t, 1, p.Groups[0].Len())
	assert.Equal(t, 0, p.Groups[1].Len())
	assert.Equal(t, 0, p.Groups[2].Len())
	assert.Len(t, p.Unknown, 3)
	assert.Equal(t, ds.Len(), p.Size())
	assert.Equal(t, []string{"Iris-unknown", "setosa"}, p.UnknownLabels())

	err := p.Validate()
	var ule *UnknownLabelError
	require.True(t, errors.As(err, &ule))
	assert.Equal(t, 3, ule.Count)
	assert.Contains(t, err.Error(), `"setosa"`)
}

func TestParseField(t *testing.T) {
	tests := []struct {
		in   string
		want Field
	}{
		{"sepal_length_cm", SepalLength},
		{"Sepal Length", SepalLength},
		{"sepal-width", SepalWidth},
		{" PETAL_LENGTH ", PetalLength},
		{"petal width (cm)", PetalWidth},
		{"4", PetalWidth},
		{"1", SepalLength},
	}
	for _, tt := range tests {
		got, err := ParseField(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	for _, bad := range []string{"", "5", "0", "class", "sepal"} {
		_, err := ParseField(bad)
		require.Error(t, err, bad)
		assert.True(t, errors.Is(err, ErrInvalidField), bad)
	}
}

func TestParsePairRejectsSameField(t *testing.T) {
	_, _, err := ParsePair("petal length", "petal_length_cm")
	require.Error(t, err)

	x, y, err := ParsePair("1", "petal_width_cm")
	require.NoError(t, err)
	assert.Equal(t, SepalLength, x)
	assert.Equal(t, PetalWidth, y)
}

func TestReadWithHeaderAndBlankLines(t *testing.T) {
	in := "sepal_length_cm,sepal_width_cm,petal_length_cm,petal_width_cm,class\n" +
		"5.1,3.5,1.4,0.2,Iris-setosa\n" +
		"\n" +
		"7.0,3.2,4.7,1.4,Iris-versicolor\n"
	ds, err := Read(strings.NewReader(in), "h.csv", ',')
	require.NoError(t, err)
	require.Equal(t, 2, ds.Len())
	assert.Equal(t, Versicolor, ds.Rows[1].Label)
	assert.Equal(t, 4.7, ds.Rows[1].Value(PetalLength))
}

func TestReadRejectsMalformedRow(t *testing.T) {
	in := "5.1,3.5,1.4,0.2,Iris-setosa\n5.0,abc,1.4,0.2,Iris-setosa\n"
	_, err := Read(strings.NewReader(in), "bad.csv", ',')
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad.csv line 2")
	assert.Contains(t, err.Error(), "sepal_width_cm")

	_, err = Read(strings.NewReader("5.1,3.5,1.4\n"), "short.csv", ',')
	require.Error(t, err)
}

func TestReadRejectsNonFiniteValues(t *testing.T) {
	for _, bad := range []string{"nan", "NaN", "inf", "+Inf", "-inf"} {
		in := "5.1,3.5,1.4,0.2,Iris-setosa\n" + bad + ",3.0,1.4,0.2,Iris-setosa\n"
		_, err := Read(strings.NewReader(in), "nf.csv", ',')
		require.Error(t, err, bad)
		assert.Contains(t, err.Error(), "nf.csv line 2", bad)
		assert.Contains(t, err.Error(), "sepal_length_cm", bad)
	}
}

func TestLoadFileTSV(t *testing.T) {
	p := filepath.Join(t.TempDir(), "iris.tsv")
	require.NoError(t, os.WriteFile(p, []byte("6.3\t3.3\t6.0\t2.5\tIris-virginica\n"), 0o644))
	ds, err := LoadFile(p, LoadOptions{})
	require.NoError(t, err)
	require.Equal(t, 1, ds.Len())
	assert.Equal(t, "iris.tsv", ds.Name)
	assert.Equal(t, Virginica, ds.Rows[0].Label)
}

func TestLoadFileXLSX(t *testing.T) {
	p := filepath.Join(t.TempDir(), "iris.xlsx")
	f := excelize.NewFile()
	_, err := f.NewSheet("Data")
	require.NoError(t, err)
	rows := [][]interface{}{
		{"sepal_length_cm", "sepal_width_cm", "petal_length_cm", "petal_width_cm", "class"},
		{5.1, 3.5, 1.4, 0.2, Setosa},
		{6.4, 3.2, 4.5, 1.5, Versicolor},
		{6.3, 3.3, 6.0, 2.5, Virginica},
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Data", cell, &r))
	}
	require.NoError(t, f.SaveAs(p))
	require.NoError(t, f.Close())

	ds, err := LoadFile(p, LoadOptions{Sheet: "data"})
	require.NoError(t, err)
	require.Equal(t, 3, ds.Len())
	assert.Equal(t, 6.0, ds.Rows[2].Value(PetalLength))

	_, err = LoadFile(p, LoadOptions{Sheet: "missing"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Available sheets")
}

func TestFieldNames(t *testing.T) {
	assert.Equal(t, "petal_width_cm", PetalWidth.Column())
	assert.Equal(t, "Petal Width", PetalWidth.Title())
	assert.Equal(t, "sepal length (in centimetres)", SepalLength.AxisLabel())
	assert.Equal(t, "Versicolor", DisplayName(Versicolor))
	assert.Equal(t, "other", DisplayName("other"))
}

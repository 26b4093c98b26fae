package dataset

import (
	"fmt"
	"strings"
)

// Field identifies one of the four numeric measurements of an observation.
type Field int

const (
	SepalLength Field = iota
	SepalWidth
	PetalLength
	PetalWidth
)

// NumFields is the number of numeric measurements per observation.
const NumFields = 4

// Fields lists the numeric fields in column order.
func Fields() []Field {
	return []Field{SepalLength, SepalWidth, PetalLength, PetalWidth}
}

var fieldMeta = [NumFields]struct {
	column string
	label  string
}{
	{"sepal_length_cm", "sepal length"},
	{"sepal_width_cm", "sepal width"},
	{"petal_length_cm", "petal length"},
	{"petal_width_cm", "petal width"},
}

// Valid reports whether f names one of the four numeric fields.
func (f Field) Valid() bool { return f >= 0 && int(f) < NumFields }

// Column returns the canonical column name, e.g. "sepal_length_cm".
func (f Field) Column() string {
	if !f.Valid() {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return fieldMeta[f].column
}

// Label returns the human readable name, e.g. "sepal length".
func (f Field) Label() string {
	if !f.Valid() {
		return fmt.Sprintf("field(%d)", int(f))
	}
	return fieldMeta[f].label
}

// Unit is the measurement unit shared by all fields.
func (f Field) Unit() string { return "cm" }

// AxisLabel is the chart axis caption, e.g. "sepal length (in centimetres)".
func (f Field) AxisLabel() string { return f.Label() + " (in centimetres)" }

// Title is the label with each word capitalised, e.g. "Sepal Length".
func (f Field) Title() string {
	words := strings.Fields(f.Label())
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

func (f Field) String() string { return f.Column() }

// Label values of the three known classes.
const (
	Setosa     = "Iris-setosa"
	Versicolor = "Iris-versicolor"
	Virginica  = "Iris-virginica"
)

// KnownLabels returns the three expected class labels in canonical order.
func KnownLabels() []string {
	return []string{Setosa, Versicolor, Virginica}
}

// DisplayName maps a raw label to its short name ("Iris-setosa" -> "Setosa").
// Unknown labels are returned unchanged.
func DisplayName(label string) string {
	switch label {
	case Setosa:
		return "Setosa"
	case Versicolor:
		return "Versicolor"
	case Virginica:
		return "Virginica"
	}
	return label
}

// Observation is one row of the dataset.
type Observation struct {
	Values [NumFields]float64
	Label  string
}

// Value returns the measurement for f.
func (o Observation) Value(f Field) float64 { return o.Values[f] }

// Dataset is an ordered, read-only sequence of observations.
type Dataset struct {
	Name string
	Rows []Observation
}

// New builds a dataset from rows. The slice is copied.
func New(name string, rows []Observation) *Dataset {
	cp := make([]Observation, len(rows))
	copy(cp, rows)
	return &Dataset{Name: name, Rows: cp}
}

// Len returns the number of observations.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}

// Column extracts the values of f in row order.
func (d *Dataset) Column(f Field) []float64 {
	return column(d.Rows, f)
}

// Labels returns the distinct labels in first-seen order.
func (d *Dataset) Labels() []string {
	var out []string
	seen := map[string]struct{}{}
	for _, o := range d.Rows {
		if _, ok := seen[o.Label]; ok {
			continue
		}
		seen[o.Label] = struct{}{}
		out = append(out, o.Label)
	}
	return out
}

func column(rows []Observation, f Field) []float64 {
	out := make([]float64, len(rows))
	for i, o := range rows {
		out[i] = o.Values[f]
	}
	return out
}

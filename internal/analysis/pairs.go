package analysis

import (
	"fmt"

	"github.com/KaramelBytes/iris-cli/internal/dataset"
)

// FieldPair is an (x, y) selection of numeric fields.
type FieldPair struct {
	X, Y dataset.Field
}

func (p FieldPair) String() string { return p.X.Column() + " ~ " + p.Y.Column() }

// Pairs returns every unordered pair of distinct fields in field order.
func Pairs() []FieldPair {
	fs := dataset.Fields()
	var out []FieldPair
	for i := 0; i < len(fs); i++ {
		for j := i + 1; j < len(fs); j++ {
			out = append(out, FieldPair{X: fs[i], Y: fs[j]})
		}
	}
	return out
}

// GroupFit is the fit for one label group. Err is set instead of Fit when the
// group's data is degenerate for this pair.
type GroupFit struct {
	Label string
	Fit   Fit
	Err   error
}

// OK reports whether the group produced a usable fit.
func (g GroupFit) OK() bool { return g.Err == nil }

// PairAnalysis holds the whole-population fit and one fit per known group.
type PairAnalysis struct {
	X, Y    dataset.Field
	Overall Fit
	Groups  []GroupFit
}

// ComparePair fits y against x for the whole dataset and for each label group.
func ComparePair(ds *dataset.Dataset, x, y dataset.Field) (*PairAnalysis, error) {
	return ComparePartition(ds, ds.Partition(), x, y)
}

// ComparePartition is ComparePair with a precomputed partition, so callers
// analysing several pairs split the dataset only once.
func ComparePartition(ds *dataset.Dataset, p dataset.Partition, x, y dataset.Field) (*PairAnalysis, error) {
	for _, f := range []dataset.Field{x, y} {
		if !f.Valid() {
			return nil, &dataset.InvalidFieldError{Input: f.String()}
		}
	}
	overall, err := LinearFit(ds.Column(x), ds.Column(y))
	if err != nil {
		return nil, fmt.Errorf("fit %s ~ %s: %w", y.Column(), x.Column(), err)
	}
	pa := &PairAnalysis{X: x, Y: y, Overall: overall}
	for _, g := range p.Groups {
		gf := GroupFit{Label: g.Label}
		gf.Fit, gf.Err = LinearFit(g.Column(x), g.Column(y))
		pa.Groups = append(pa.Groups, gf)
	}
	return pa, nil
}

// Group returns the fit for label, if present.
func (pa *PairAnalysis) Group(label string) (GroupFit, bool) {
	for _, g := range pa.Groups {
		if g.Label == label {
			return g, true
		}
	}
	return GroupFit{}, false
}

package analysis

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/KaramelBytes/iris-cli/internal/dataset"
)

// Options controls which parts of a report are computed.
type Options struct {
	// Pairs lists the field pairs to fit. Nil means every pair.
	Pairs []FieldPair
	// SkipPairs disables regression/correlation entirely.
	SkipPairs bool
	// GroupSummaries adds per-group summaries for each label.
	GroupSummaries bool
}

// DefaultOptions returns reasonable defaults for a full report.
func DefaultOptions() Options {
	return Options{GroupSummaries: true}
}

// Report is a markdown-friendly analysis of a dataset.
type Report struct {
	Name      string
	Rows      int
	Summaries []FieldSummary
	Groups    []GroupSummary
	Pairs     []*PairAnalysis
	Warnings  []string

	// Partition is the label split every group figure was computed from.
	Partition dataset.Partition
}

// GroupSummary captures size and per-field statistics of one label group.
type GroupSummary struct {
	Label  string
	Size   int
	Fields []FieldSummary
}

// BuildReport runs the statistics engine over ds. Unknown labels do not fail
// the report; they are surfaced as warnings.
func BuildReport(ds *dataset.Dataset, opt Options) (*Report, error) {
	sums, err := Summarize(ds)
	if err != nil {
		return nil, fmt.Errorf("summarize %s: %w", ds.Name, err)
	}
	rep := &Report{Name: ds.Name, Rows: ds.Len(), Summaries: sums}

	part := ds.Partition()
	rep.Partition = part
	if err := part.Validate(); err != nil {
		rep.Warnings = append(rep.Warnings, err.Error())
	}
	for _, g := range part.Groups {
		gs := GroupSummary{Label: g.Label, Size: g.Len()}
		if g.Len() == 0 {
			rep.Warnings = append(rep.Warnings, fmt.Sprintf("group %s is empty", g.Label))
		} else if opt.GroupSummaries {
			gs.Fields, err = SummarizeGroup(g)
			if err != nil {
				return nil, fmt.Errorf("summarize group %s: %w", g.Label, err)
			}
		}
		rep.Groups = append(rep.Groups, gs)
	}

	if opt.SkipPairs {
		return rep, nil
	}
	pairs := opt.Pairs
	if pairs == nil {
		pairs = Pairs()
	}
	for _, fp := range pairs {
		pa, err := ComparePartition(ds, part, fp.X, fp.Y)
		if err != nil {
			return nil, err
		}
		for _, g := range pa.Groups {
			if g.Err != nil && len(groupRows(part, g.Label)) > 0 {
				rep.Warnings = append(rep.Warnings, fmt.Sprintf("%s in %s: %v", fp, g.Label, g.Err))
			}
		}
		rep.Pairs = append(rep.Pairs, pa)
	}
	return rep, nil
}

func groupRows(p dataset.Partition, label string) []dataset.Observation {
	for _, g := range p.Groups {
		if g.Label == label {
			return g.Rows
		}
	}
	return nil
}

// Markdown renders a compact report suitable for terminals or standalone docs.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if r.Name != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", r.Name))
	}
	b.WriteString(fmt.Sprintf("Rows: %d\n", r.Rows))
	b.WriteString(fmt.Sprintf("Numeric fields: %d\n\n", len(r.Summaries)))

	b.WriteString("[VARIABLES]\n")
	writeSummaryTable(&b, r.Summaries)

	if len(r.Groups) > 0 {
		b.WriteString("\n[GROUPS]\n")
		for _, g := range r.Groups {
			b.WriteString(fmt.Sprintf("- %s (n=%d)\n", dataset.DisplayName(g.Label), g.Size))
			for _, fs := range g.Fields {
				s := fs.Stats
				b.WriteString(fmt.Sprintf("  • %s: mean %.4g (min %.4g, max %.4g, std %.4g)\n",
					fs.Field.Column(), s.Mean, s.Min, s.Max, s.Std))
			}
		}
	}

	if len(r.Pairs) > 0 {
		b.WriteString("\n[REGRESSION]\n")
		for _, pa := range r.Pairs {
			b.WriteString(fmt.Sprintf("- %s ~ %s\n", pa.Y.Column(), pa.X.Column()))
			b.WriteString("  • all: " + FormatFit(pa.Overall) + "\n")
			for _, g := range pa.Groups {
				b.WriteString(fmt.Sprintf("  • %s: ", dataset.DisplayName(g.Label)))
				if g.Err != nil {
					b.WriteString("n/a\n")
					continue
				}
				b.WriteString(FormatFit(g.Fit) + "\n")
			}
		}
	}

	if len(r.Warnings) > 0 {
		b.WriteString("\n[NOTES]\n")
		for _, w := range r.Warnings {
			b.WriteString("- ")
			b.WriteString(w)
			b.WriteString("\n")
		}
	}
	return b.String()
}

// FormatFit renders a fit as "y = 0.4158x + -0.3631 (r=0.963, r²=0.927, n=150)".
func FormatFit(f Fit) string {
	return fmt.Sprintf("y = %.4fx + %.4f (r=%s, r²=%s, n=%d)", f.Slope, f.Intercept, formatR(f.R), formatR(f.R2), f.N)
}

func formatR(v float64) string {
	if math.IsNaN(v) {
		return "NaN"
	}
	return fmt.Sprintf("%.3f", v)
}

func writeSummaryTable(b *strings.Builder, sums []FieldSummary) {
	b.WriteString("| stat |")
	for _, fs := range sums {
		b.WriteString(" " + fs.Field.Column() + " |")
	}
	b.WriteString("\n| --- |")
	for range sums {
		b.WriteString(" --- |")
	}
	b.WriteString("\n")
	for _, row := range summaryRows {
		b.WriteString("| " + row.name + " |")
		for _, fs := range sums {
			b.WriteString(fmt.Sprintf(" %.4g |", row.get(fs.Stats)))
		}
		b.WriteString("\n")
	}
}

var summaryRows = []struct {
	name string
	get  func(SummaryStats) float64
}{
	{"count", func(s SummaryStats) float64 { return float64(s.Count) }},
	{"mean", func(s SummaryStats) float64 { return s.Mean }},
	{"std", func(s SummaryStats) float64 { return s.Std }},
	{"min", func(s SummaryStats) float64 { return s.Min }},
	{"25%", func(s SummaryStats) float64 { return s.Q25 }},
	{"50%", func(s SummaryStats) float64 { return s.Q50 }},
	{"75%", func(s SummaryStats) float64 { return s.Q75 }},
	{"max", func(s SummaryStats) float64 { return s.Max }},
}

// WriteSummaryCSV writes summaries as a delimited table with one column per
// field and one row per statistic (count, mean, std, min, 25%, 50%, 75%, max).
func WriteSummaryCSV(w io.Writer, sums []FieldSummary) error {
	cw := csv.NewWriter(w)
	header := []string{""}
	for _, fs := range sums {
		header = append(header, fs.Field.Column())
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write summary header: %w", err)
	}
	for _, row := range summaryRows {
		rec := []string{row.name}
		for _, fs := range sums {
			rec = append(rec, formatCSVFloat(row.get(fs.Stats)))
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("write summary row %s: %w", row.name, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

func formatCSVFloat(v float64) string {
	if math.IsNaN(v) {
		return ""
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

package dataset

import (
	"fmt"
	"sort"
	"strings"
)

// Group is the subset of observations that share one label.
type Group struct {
	Label string
	Rows  []Observation
}

// Name returns the display name of the group's label.
func (g Group) Name() string { return DisplayName(g.Label) }

// Len returns the group size.
func (g Group) Len() int { return len(g.Rows) }

// Column extracts the values of f for the group in row order.
func (g Group) Column(f Field) []float64 { return column(g.Rows, f) }

// Partition splits a dataset by the three known labels. Observations with any
// other label are kept in Unknown rather than being relabeled or dropped.
type Partition struct {
	Groups  []Group
	Unknown []Observation
}

// Partition groups observations by label. Groups follow KnownLabels order and
// are always present, possibly empty.
func (d *Dataset) Partition() Partition {
	labels := KnownLabels()
	idx := make(map[string]int, len(labels))
	p := Partition{Groups: make([]Group, len(labels))}
	for i, l := range labels {
		idx[l] = i
		p.Groups[i] = Group{Label: l}
	}
	if d == nil {
		return p
	}
	for _, o := range d.Rows {
		i, ok := idx[o.Label]
		if !ok {
			p.Unknown = append(p.Unknown, o)
			continue
		}
		p.Groups[i].Rows = append(p.Groups[i].Rows, o)
	}
	return p
}

// Size is the total number of observations, unknown ones included.
func (p Partition) Size() int {
	n := len(p.Unknown)
	for _, g := range p.Groups {
		n += g.Len()
	}
	return n
}

// Flagged reports whether any observation carried an unexpected label.
func (p Partition) Flagged() bool { return len(p.Unknown) > 0 }

// UnknownLabels returns the distinct unexpected labels, sorted.
func (p Partition) UnknownLabels() []string {
	seen := map[string]struct{}{}
	for _, o := range p.Unknown {
		seen[o.Label] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Validate returns an *UnknownLabelError when the partition was flagged.
func (p Partition) Validate() error {
	if !p.Flagged() {
		return nil
	}
	return &UnknownLabelError{Labels: p.UnknownLabels(), Count: len(p.Unknown)}
}

// UnknownLabelError reports labels outside the three known classes.
type UnknownLabelError struct {
	Labels []string
	Count  int
}

func (e *UnknownLabelError) Error() string {
	quoted := make([]string, len(e.Labels))
	for i, l := range e.Labels {
		quoted[i] = fmt.Sprintf("%q", l)
	}
	return fmt.Sprintf("%d observation(s) with unknown label: %s", e.Count, strings.Join(quoted, ", "))
}

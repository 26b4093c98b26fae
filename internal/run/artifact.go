package run

import "time"

// Artifact kinds.
const (
	KindSummary   = "summary"
	KindReport    = "report"
	KindHistogram = "histogram"
	KindScatter   = "scatter"
)

// Artifact holds metadata for one generated output file.
type Artifact struct {
	ID          string    `json:"id"`
	Kind        string    `json:"kind"`
	Name        string    `json:"name"`
	Path        string    `json:"path"`
	Description string    `json:"description"`
	Fields      []string  `json:"fields,omitempty"`
	Bytes       int64     `json:"bytes"`
	AddedAt     time.Time `json:"added_at"`
}

package run

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/KaramelBytes/iris-cli/internal/utils"
	"github.com/google/uuid"
)

// ManifestFileName is the manifest written into every output directory.
const ManifestFileName = "manifest.json"

// Run records what a command generated into an output directory.
type Run struct {
	ID          string               `json:"id"`
	Dataset     string               `json:"dataset"`
	Rows        int                  `json:"rows"`
	ChartFormat string               `json:"chart_format"`
	Artifacts   map[string]*Artifact `json:"artifacts"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`

	// Not serialized: on-disk location of the manifest
	rootDir string `json:"-"`
}

// NewRun constructs an in-memory run. Call Save() to persist.
func NewRun(dataset string, rows int, chartFormat, rootDir string) *Run {
	now := time.Now()
	return &Run{
		ID:          uuid.NewString(),
		Dataset:     dataset,
		Rows:        rows,
		ChartFormat: chartFormat,
		Artifacts:   make(map[string]*Artifact),
		CreatedAt:   now,
		UpdatedAt:   now,
		rootDir:     rootDir,
	}
}

// LoadRun loads the manifest from the provided directory.
func LoadRun(dir string) (*Run, error) {
	path := filepath.Join(dir, ManifestFileName)
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("manifest not found at %s: %w", path, err)
		}
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	var r Run
	if err := json.Unmarshal(b, &r); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}
	r.rootDir = dir
	return &r, nil
}

// OpenOrNew loads the manifest in dir, or starts a new run when none exists.
// An existing manifest for a different dataset is replaced.
func OpenOrNew(dir, dataset string, rows int, chartFormat string) (*Run, error) {
	r, err := LoadRun(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewRun(dataset, rows, chartFormat, dir), nil
		}
		return nil, err
	}
	if r.Dataset != dataset || r.Rows != rows {
		return NewRun(dataset, rows, chartFormat, dir), nil
	}
	r.ChartFormat = chartFormat
	return r, nil
}

// RootDir returns the output directory path.
func (r *Run) RootDir() string { return r.rootDir }

// Save writes the manifest using atomic write.
func (r *Run) Save() error {
	if r.rootDir == "" {
		return errors.New("run output directory not set")
	}
	if err := utils.EnsureDir(r.rootDir); err != nil {
		return fmt.Errorf("ensure dir: %w", err)
	}
	r.UpdatedAt = time.Now()
	data, err := utils.PrettyJSON(r)
	if err != nil {
		return err
	}
	return utils.SafeWriteFile(filepath.Join(r.rootDir, ManifestFileName), data)
}

// AddArtifact records a generated file. Recording the same path again replaces
// the earlier entry.
func (r *Run) AddArtifact(kind, path, description string, fields ...string) (*Artifact, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat artifact: %w", err)
	}
	rel := path
	if r.rootDir != "" {
		if p, err := filepath.Rel(r.rootDir, path); err == nil {
			rel = p
		}
	}
	if r.Artifacts == nil {
		r.Artifacts = make(map[string]*Artifact)
	}
	for id, a := range r.Artifacts {
		if a.Path == rel {
			delete(r.Artifacts, id)
		}
	}
	a := &Artifact{
		ID:          uuid.NewString(),
		Kind:        kind,
		Name:        filepath.Base(path),
		Path:        rel,
		Description: description,
		Fields:      fields,
		Bytes:       info.Size(),
		AddedAt:     info.ModTime(),
	}
	r.Artifacts[a.ID] = a
	r.UpdatedAt = time.Now()
	return a, nil
}

// Sorted returns artifacts ordered by kind, then name, for stable listings.
func (r *Run) Sorted() []*Artifact {
	out := make([]*Artifact, 0, len(r.Artifacts))
	for _, a := range r.Artifacts {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Kind == out[j].Kind {
			return out[i].Name < out[j].Name
		}
		return out[i].Kind < out[j].Kind
	})
	return out
}

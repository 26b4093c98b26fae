package run_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/iris-cli/internal/run"
	"github.com/google/uuid"
)

func TestRunSaveLoadAndArtifacts(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	r := run.NewRun("iris.csv", 150, "png", dir)
	if _, err := uuid.Parse(r.ID); err != nil {
		t.Fatalf("run id is not a uuid: %v", err)
	}
	if err := r.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	hist := filepath.Join(dir, "sepal_length_cm_hist.png")
	if err := os.WriteFile(hist, []byte("png"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := r.AddArtifact(run.KindHistogram, hist, "Iris Sepal Lengths", "sepal_length_cm"); err != nil {
		t.Fatalf("add: %v", err)
	}
	// re-adding the same file replaces the entry
	if _, err := r.AddArtifact(run.KindHistogram, hist, "Iris Sepal Lengths", "sepal_length_cm"); err != nil {
		t.Fatalf("add again: %v", err)
	}
	sum := filepath.Join(dir, "iris_variable_summary.txt")
	if err := os.WriteFile(sum, []byte(",a\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := r.AddArtifact(run.KindSummary, sum, "summary"); err != nil {
		t.Fatalf("add summary: %v", err)
	}
	if err := r.Save(); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := run.LoadRun(dir)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.ID != r.ID || loaded.Rows != 150 || loaded.Dataset != "iris.csv" {
		t.Fatalf("loaded = %+v", loaded)
	}
	arts := loaded.Sorted()
	if len(arts) != 2 {
		t.Fatalf("artifacts = %d, want 2", len(arts))
	}
	if arts[0].Kind != run.KindHistogram || arts[0].Path != "sepal_length_cm_hist.png" || arts[0].Bytes != 3 {
		t.Fatalf("first artifact = %+v", arts[0])
	}
	if arts[1].Kind != run.KindSummary {
		t.Fatalf("second artifact = %+v", arts[1])
	}
}

func TestOpenOrNew(t *testing.T) {
	dir := t.TempDir()
	r, err := run.OpenOrNew(dir, "iris.csv", 150, "png")
	if err != nil {
		t.Fatalf("open new: %v", err)
	}
	if err := r.Save(); err != nil {
		t.Fatal(err)
	}
	again, err := run.OpenOrNew(dir, "iris.csv", 150, "html")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if again.ID != r.ID || again.ChartFormat != "html" {
		t.Fatalf("expected same run with updated format, got %+v", again)
	}
	other, err := run.OpenOrNew(dir, "other.csv", 10, "png")
	if err != nil {
		t.Fatal(err)
	}
	if other.ID == r.ID {
		t.Fatalf("expected a new run for a different dataset")
	}
}

func TestLoadRunMissing(t *testing.T) {
	if _, err := run.LoadRun(t.TempDir()); err == nil {
		t.Fatalf("expected error")
	}
}

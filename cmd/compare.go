package cmd

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/KaramelBytes/iris-cli/internal/analysis"
	"github.com/KaramelBytes/iris-cli/internal/dataset"
	"github.com/KaramelBytes/iris-cli/internal/menu"
	"github.com/KaramelBytes/iris-cli/internal/render"
	"github.com/KaramelBytes/iris-cli/internal/run"
	"github.com/spf13/cobra"
)

var cmpNoChart bool

var compareCmd = &cobra.Command{
	Use:   "compare [x y]",
	Short: "Fit y against x overall and per class, and render a scatter chart",
	Long: `Fits a least-squares line and Pearson correlation of y against x for the whole
dataset and for each class. Without arguments the fields are chosen from a
numbered menu.`,
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) != 0 && len(args) != 2 {
			return fmt.Errorf("expected 0 or 2 fields, got %d", len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		var (
			x, y dataset.Field
			err  error
		)
		if len(args) == 2 {
			x, y, err = dataset.ParsePair(args[0], args[1])
		} else {
			x, y, err = menu.New(cmd.InOrStdin(), cmd.OutOrStdout()).Pair()
			if errors.Is(err, menu.ErrAborted) {
				return fmt.Errorf("no fields selected: %w", err)
			}
		}
		if err != nil {
			return err
		}

		ds, err := loadDataset()
		if err != nil {
			return err
		}
		p := partition(ds)
		pa, err := analysis.ComparePartition(ds, p, x, y)
		if err != nil {
			return err
		}
		printPair(cmd.OutOrStdout(), pa)

		if cmpNoChart {
			return nil
		}
		dir, err := outputDir()
		if err != nil {
			return err
		}
		rnd, err := newRenderer()
		if err != nil {
			return err
		}
		r, err := openRun(dir, ds)
		if err != nil {
			return err
		}
		path, err := writeScatter(rnd, r, p, pa)
		if err != nil {
			return err
		}
		if err := r.Save(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
		return nil
	},
}

func printPair(w io.Writer, pa *analysis.PairAnalysis) {
	fmt.Fprintf(w, "%s ~ %s\n", pa.Y.Column(), pa.X.Column())
	fmt.Fprintf(w, "  all: %s\n", analysis.FormatFit(pa.Overall))
	for _, g := range pa.Groups {
		if !g.OK() {
			fmt.Fprintf(w, "  %s: ⚠ %v\n", dataset.DisplayName(g.Label), g.Err)
			continue
		}
		fmt.Fprintf(w, "  %s: %s\n", dataset.DisplayName(g.Label), analysis.FormatFit(g.Fit))
	}
}

// writeScatter renders the scatter chart of pa into the run's directory and
// records it.
func writeScatter(rnd render.Renderer, r *run.Run, p dataset.Partition, pa *analysis.PairAnalysis) (string, error) {
	path := filepath.Join(r.RootDir(), render.ScatterFile(pa.X, pa.Y, rnd.Ext()))
	if err := rnd.Scatter(path, render.ScatterFor(pa, p)); err != nil {
		return "", fmt.Errorf("render %s vs %s: %w", pa.X.Column(), pa.Y.Column(), err)
	}
	desc := fmt.Sprintf("%s against %s with per-class regression lines", pa.Y.Label(), pa.X.Label())
	if _, err := r.AddArtifact(run.KindScatter, path, desc, pa.X.Column(), pa.Y.Column()); err != nil {
		return "", err
	}
	logger.Debugw("scatter written", "x", pa.X.Column(), "y", pa.Y.Column(), "path", path)
	return path, nil
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().BoolVar(&cmpNoChart, "no-chart", false, "print the fits only")
}

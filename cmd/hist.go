package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/KaramelBytes/iris-cli/internal/dataset"
	"github.com/KaramelBytes/iris-cli/internal/render"
	"github.com/KaramelBytes/iris-cli/internal/run"
	"github.com/spf13/cobra"
)

var histBins int

var histCmd = &cobra.Command{
	Use:   "hist [field...]",
	Short: "Render per-class histograms for the given fields (default all)",
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := dataset.Fields()
		if len(args) > 0 {
			fields = nil
			for _, a := range args {
				f, err := dataset.ParseField(a)
				if err != nil {
					return err
				}
				fields = append(fields, f)
			}
		}
		bins := cfg.HistBins
		if cmd.Flags().Changed("bins") {
			if histBins < 1 {
				return fmt.Errorf("--bins must be >= 1, got %d", histBins)
			}
			bins = histBins
		}

		ds, err := loadDataset()
		if err != nil {
			return err
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
		p := partition(ds)
		for _, f := range fields {
			path, err := writeHistogram(rnd, r, p, f, bins)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote %s\n", path)
		}
		return r.Save()
	},
}

// writeHistogram renders the histogram of f into the run's directory and
// records it.
func writeHistogram(rnd render.Renderer, r *run.Run, p dataset.Partition, f dataset.Field, bins int) (string, error) {
	path := filepath.Join(r.RootDir(), render.HistogramFile(f, rnd.Ext()))
	if err := rnd.Histogram(path, render.HistogramFor(f, p, bins)); err != nil {
		return "", fmt.Errorf("render %s histogram: %w", f.Column(), err)
	}
	desc := fmt.Sprintf("Histogram of %s by class (%d bins)", f.Label(), bins)
	if _, err := r.AddArtifact(run.KindHistogram, path, desc, f.Column()); err != nil {
		return "", err
	}
	logger.Debugw("histogram written", "field", f.Column(), "path", path)
	return path, nil
}

func init() {
	rootCmd.AddCommand(histCmd)
	histCmd.Flags().IntVar(&histBins, "bins", 10, "number of bins (overrides config hist_bins)")
}

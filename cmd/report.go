package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/KaramelBytes/iris-cli/internal/analysis"
	"github.com/KaramelBytes/iris-cli/internal/dataset"
	"github.com/KaramelBytes/iris-cli/internal/run"
	"github.com/KaramelBytes/iris-cli/internal/utils"
	"github.com/spf13/cobra"
)

// ReportFileName is the Markdown report written by the report command.
const ReportFileName = "iris_report.md"

var repNoCharts bool

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the summary, Markdown report, every histogram and every scatter chart",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset()
		if err != nil {
			return err
		}
		rep, err := analysis.BuildReport(ds, analysis.DefaultOptions())
		if err != nil {
			return err
		}
		for _, w := range rep.Warnings {
			logger.Warnw("report note", "note", w)
		}
		dir, err := outputDir()
		if err != nil {
			return err
		}
		r, err := openRun(dir, ds)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		sumPath := filepath.Join(dir, SummaryFileName)
		if err := writeSummary(sumPath, rep); err != nil {
			return err
		}
		if _, err := r.AddArtifact(run.KindSummary, sumPath, "Per-field descriptive statistics"); err != nil {
			return err
		}
		mdPath := filepath.Join(dir, ReportFileName)
		if err := utils.SafeWriteFile(mdPath, []byte(rep.Markdown())); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		if _, err := r.AddArtifact(run.KindReport, mdPath, "Summary, class sizes and regressions"); err != nil {
			return err
		}
		fmt.Fprintf(out, "✓ Wrote %s and %s\n", sumPath, mdPath)

		if !repNoCharts {
			rnd, err := newRenderer()
			if err != nil {
				return err
			}
			p := rep.Partition
			for _, f := range dataset.Fields() {
				if _, err := writeHistogram(rnd, r, p, f, cfg.HistBins); err != nil {
					return err
				}
			}
			for _, pa := range rep.Pairs {
				if _, err := writeScatter(rnd, r, p, pa); err != nil {
					return err
				}
			}
			fmt.Fprintf(out, "✓ Rendered %d histograms and %d scatter charts (%s)\n", dataset.NumFields, len(rep.Pairs), rnd.Ext())
		}
		if err := r.Save(); err != nil {
			return err
		}
		if len(rep.Warnings) > 0 {
			fmt.Fprintf(out, "⚠ %d note(s) recorded in %s\n", len(rep.Warnings), ReportFileName)
		}
		fmt.Fprintf(out, "✓ Manifest: %s\n", filepath.Join(dir, run.ManifestFileName))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().BoolVar(&repNoCharts, "no-charts", false, "skip chart rendering")
}

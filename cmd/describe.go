package cmd

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/KaramelBytes/iris-cli/internal/analysis"
	"github.com/KaramelBytes/iris-cli/internal/run"
	"github.com/KaramelBytes/iris-cli/internal/utils"
	"github.com/spf13/cobra"
)

// SummaryFileName is the summary table written by describe --save and report.
const SummaryFileName = "iris_variable_summary.txt"

var (
	descOutputPath string
	descSave       bool
	descGroups     bool
)

var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "Print count, mean, std, min, quartiles and max of every numeric field",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset()
		if err != nil {
			return err
		}
		partition(ds)
		rep, err := analysis.BuildReport(ds, analysis.Options{SkipPairs: true, GroupSummaries: descGroups})
		if err != nil {
			return err
		}

		path := descOutputPath
		if path == "" && descSave {
			dir, err := outputDir()
			if err != nil {
				return err
			}
			path = filepath.Join(dir, SummaryFileName)
		}
		if path == "" {
			fmt.Fprintln(cmd.OutOrStdout(), rep.Markdown())
			return nil
		}
		if err := writeSummary(path, rep); err != nil {
			return err
		}
		if descSave {
			r, err := openRun(filepath.Dir(path), ds)
			if err != nil {
				return err
			}
			if _, err := r.AddArtifact(run.KindSummary, path, "Per-field descriptive statistics"); err != nil {
				return err
			}
			if err := r.Save(); err != nil {
				return err
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "✓ Wrote summary to %s\n", path)
		return nil
	},
}

func writeSummary(path string, rep *analysis.Report) error {
	var buf bytes.Buffer
	if err := analysis.WriteSummaryCSV(&buf, rep.Summaries); err != nil {
		return err
	}
	if err := utils.SafeWriteFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(describeCmd)
	describeCmd.Flags().StringVarP(&descOutputPath, "output", "o", "", "write the summary table (CSV) to this path instead of printing")
	describeCmd.Flags().BoolVar(&descSave, "save", false, "write "+SummaryFileName+" into the output directory and record it in the manifest")
	describeCmd.Flags().BoolVar(&descGroups, "groups", false, "include per-class summaries")
	describeCmd.MarkFlagsMutuallyExclusive("output", "save")
}

package cmd

import (
	"fmt"

	"github.com/KaramelBytes/iris-cli/internal/run"
	"github.com/KaramelBytes/iris-cli/internal/utils"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [dir]",
	Short: "List the files recorded in an output directory's manifest",
	Long: `Lists generated artifacts. Without an argument the configured output
directory is used; a path inside an output directory also works.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		start := cfg.OutputDir
		if len(args) == 1 {
			start = args[0]
		}
		start, err := utils.ExpandHome(start)
		if err != nil {
			return err
		}
		dir, err := utils.FindManifestRoot(start, run.ManifestFileName)
		if err != nil {
			return err
		}
		r, err := run.LoadRun(dir)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Run %s: %s (%d rows, %s) in %s\n", r.ID, r.Dataset, r.Rows, r.ChartFormat, dir)
		arts := r.Sorted()
		if len(arts) == 0 {
			fmt.Fprintln(out, "(no artifacts)")
			return nil
		}
		for _, a := range arts {
			fmt.Fprintf(out, "- [%s] %s: %s (%d bytes)\n", a.Kind, a.Path, a.Description, a.Bytes)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

package cmd

import (
	"fmt"

	"github.com/KaramelBytes/iris-cli/internal/dataset"
	"github.com/spf13/cobra"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields",
	Short: "List numeric fields and class groups of the dataset",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ds, err := loadDataset()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Dataset: %s (%d rows)\n", ds.Name, ds.Len())
		fmt.Fprintln(out, "Fields:")
		for i, f := range dataset.Fields() {
			fmt.Fprintf(out, "  %d) %s (%s)\n", i+1, f.Column(), f.Unit())
		}
		p := ds.Partition()
		fmt.Fprintln(out, "Groups:")
		for _, g := range p.Groups {
			fmt.Fprintf(out, "  - %s: %d\n", g.Label, g.Len())
		}
		if err := p.Validate(); err != nil {
			fmt.Fprintf(out, "⚠ %v\n", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fieldsCmd)
}

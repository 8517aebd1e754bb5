package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sayotte/pathstate/grid"
)

func newGenmapCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "genmap",
		Short: "Write an example map file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := grid.WriteMap(output, grid.DemoMap()); err != nil {
				return fmt.Errorf("genmap: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Map: %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "map.yaml", "Path of the map file to write")
	return cmd
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Faultbox/gridpath/pkg/formats"
)

func newConvertCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <map.txt> <out.gat>",
		Short: "Write a text map as a GAT walkability table",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			grid, err := formats.ParseTextFile(args[0])
			if err != nil {
				return err
			}
			gat, err := formats.GATFromGrid(grid)
			if err != nil {
				return fmt.Errorf("converting %s: %w", args[0], err)
			}
			if err := os.WriteFile(args[1], formats.EncodeGAT(gat), 0644); err != nil {
				return fmt.Errorf("writing %s: %w", args[1], err)
			}

			counts := gat.CountByType()
			fmt.Fprintf(a.stdout, "%s: %dx%d, %d walkable, %d blocked\n",
				args[1], gat.Width, gat.Height, counts[formats.GATWalkable], counts[formats.GATBlocked])
			return nil
		},
	}
}

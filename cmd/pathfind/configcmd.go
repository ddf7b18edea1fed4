package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/gridpath/internal/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or write configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := yaml.Marshal(a.cfg)
			if err != nil {
				return err
			}
			_, err = a.stdout.Write(data)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "init [path]",
		Short: "Write the effective configuration to a file",
		Long:  "Write the effective configuration to path, or to the user config directory when no path is given.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if err := a.cfg.Save(); err != nil {
					return err
				}
				fmt.Fprintf(a.stdout, "wrote %s/config.yaml\n", config.ConfigDir())
				return nil
			}
			if err := a.cfg.SaveTo(args[0]); err != nil {
				return err
			}
			fmt.Fprintf(a.stdout, "wrote %s\n", args[0])
			return nil
		},
	})

	return cmd
}

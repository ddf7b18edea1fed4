package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Faultbox/gridpath/internal/scenario"
	"github.com/Faultbox/gridpath/internal/watch"
)

func newWatchCmd(a *app) *cobra.Command {
	var start, goal string

	cmd := &cobra.Command{
		Use:   "watch <map>",
		Short: "Re-solve a map every time it is saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ep, err := parseEndpoints(start, goal)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			w := watch.New(args[0], a.cfg.Watch.Debounce, a.log)
			return w.Run(ctx, func(ctx context.Context) error {
				s, err := scenario.Load(args[0], ep)
				if err != nil {
					return err
				}
				r := a.solve(ctx, s)
				r.Name = s.Name
				return a.sink().Report(r)
			})
		},
	}
	endpointFlags(cmd, &start, &goal)
	return cmd
}

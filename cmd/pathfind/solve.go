package main

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/Faultbox/gridpath/internal/render"
	"github.com/Faultbox/gridpath/internal/scenario"
)

func newSolveCmd(a *app) *cobra.Command {
	var start, goal string

	cmd := &cobra.Command{
		Use:   "solve <map>",
		Short: "Find the shortest path on one map",
		Example: `  pathfind solve maze.txt
  pathfind solve prontera.gat --start 150,80 --goal 160,190`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ep, err := parseEndpoints(start, goal)
			if err != nil {
				return err
			}
			s, err := scenario.Load(args[0], ep)
			if err != nil {
				return err
			}

			r := a.solve(cmd.Context(), s)
			if r.Err != nil {
				return r.Err
			}
			if err := a.sink().Report(r); err != nil {
				return err
			}
			if !r.Result.Found {
				return errNoPath
			}
			return nil
		},
	}
	endpointFlags(cmd, &start, &goal)
	return cmd
}

// solve runs one search and packages it for the sinks.
func (a *app) solve(ctx context.Context, s *scenario.Scenario) render.Report {
	began := time.Now()
	res, err := a.finder().SearchContext(ctx, s.Grid, s.Start, s.Goal)
	r := render.Report{
		Grid:    s.Grid,
		Start:   s.Start,
		Goal:    s.Goal,
		Result:  res,
		Err:     err,
		Elapsed: time.Since(began),
	}
	if err == nil {
		r.Err = a.verify(r)
	}
	return r
}

// verify re-checks a found path when verification is enabled.
func (a *app) verify(r render.Report) error {
	if !a.cfg.Search.Verify || !r.Result.Found {
		return nil
	}
	return r.Result.Path.Validate(r.Grid, r.Start, r.Goal)
}

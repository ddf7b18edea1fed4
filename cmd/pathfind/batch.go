package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/gridpath/internal/batch"
	"github.com/Faultbox/gridpath/internal/render"
	"github.com/Faultbox/gridpath/internal/scenario"
)

func newBatchCmd(a *app) *cobra.Command {
	var start, goal string
	var quiet bool

	cmd := &cobra.Command{
		Use:   "batch <map>...",
		Short: "Solve several maps concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ep, err := parseEndpoints(start, goal)
			if err != nil {
				return err
			}

			var jobs []batch.Job
			var loadFailed int
			for _, path := range args {
				s, err := scenario.Load(path, ep)
				if err != nil {
					loadFailed++
					a.log.Error("skipping map", zap.String("path", path), zap.Error(err))
					continue
				}
				jobs = append(jobs, batch.NewJob(s.Name, s.Grid, s.Start, s.Goal))
			}

			runner := batch.NewRunner(a.finder(), a.cfg.Search.Workers, a.log)
			outcomes, err := runner.Run(cmd.Context(), jobs)
			if err != nil {
				return err
			}

			var sink render.Sink = render.NewLog(a.log)
			if !quiet {
				sink = render.Tee(a.textSink(), sink)
			}
			for i := range outcomes {
				o := &outcomes[i]
				r := render.Report{
					Name:    o.Job.Name,
					Grid:    o.Job.Grid,
					Start:   o.Job.Start,
					Goal:    o.Job.Goal,
					Result:  o.Result,
					Err:     o.Err,
					Elapsed: o.Elapsed,
				}
				if r.Err == nil {
					r.Err = a.verify(r)
					o.Err = r.Err
				}
				if err := sink.Report(r); err != nil {
					return err
				}
			}

			sum := batch.Summarize(outcomes)
			sum.Failed += loadFailed
			fmt.Fprintf(a.stdout, "found=%d not_found=%d failed=%d\n", sum.Found, sum.NotFound, sum.Failed)

			switch {
			case sum.Failed > 0:
				return fmt.Errorf("%d of %d maps failed", sum.Failed, len(args))
			case sum.NotFound > 0:
				return errNoPath
			}
			return nil
		},
	}
	endpointFlags(cmd, &start, &goal)
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "print only the summary line")
	return cmd
}

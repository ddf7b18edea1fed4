// Package batch runs many independent searches concurrently.
package batch

import (
	"context"
	"fmt"
	"runtime/debug"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/Faultbox/gridpath/pkg/pathfind"
)

// Job is one search request.
type Job struct {
	ID    uuid.UUID
	Name  string
	Grid  pathfind.Grid
	Start pathfind.Point
	Goal  pathfind.Point
}

// NewJob creates a job with a fresh ID.
func NewJob(name string, grid pathfind.Grid, start, goal pathfind.Point) Job {
	return Job{ID: uuid.New(), Name: name, Grid: grid, Start: start, Goal: goal}
}

// Outcome is the result of one Job. Err holds per-job failures such as
// invalid input; those do not stop the rest of the batch.
type Outcome struct {
	Job     Job
	Result  pathfind.Result
	Err     error
	Elapsed time.Duration
}

// Runner executes jobs on a bounded number of goroutines.
type Runner struct {
	finder  *pathfind.PathFinder
	workers int
	log     *zap.Logger
}

// NewRunner creates a Runner. workers < 1 is treated as 1.
func NewRunner(finder *pathfind.PathFinder, workers int, log *zap.Logger) *Runner {
	if finder == nil {
		finder = pathfind.New()
	}
	if workers < 1 {
		workers = 1
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Runner{finder: finder, workers: workers, log: log}
}

// Run executes all jobs and returns their outcomes in job order.
// It stops early only if ctx is cancelled, returning the context error.
func (r *Runner) Run(ctx context.Context, jobs []Job) ([]Outcome, error) {
	outcomes := make([]Outcome, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	for i, job := range jobs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() (err error) {
			defer func() {
				if rec := recover(); rec != nil {
					r.log.Error("search panicked",
						zap.Stringer("job", job.ID),
						zap.Any("panic", rec),
						zap.ByteString("stack", debug.Stack()))
					outcomes[i] = Outcome{Job: job, Err: fmt.Errorf("search panic: %v", rec)}
				}
			}()

			began := time.Now()
			res, err := r.finder.SearchContext(gctx, job.Grid, job.Start, job.Goal)
			outcomes[i] = Outcome{Job: job, Result: res, Err: err, Elapsed: time.Since(began)}
			if ctxErr := gctx.Err(); ctxErr != nil {
				return ctxErr
			}

			r.log.Debug("job finished",
				zap.Stringer("job", job.ID),
				zap.String("name", job.Name),
				zap.Bool("found", res.Found),
				zap.Error(err))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return outcomes, err
	}
	// The loop may have stopped before scheduling every job.
	if err := ctx.Err(); err != nil {
		return outcomes, err
	}
	return outcomes, nil
}

// Summary counts outcomes by kind.
type Summary struct {
	Found, NotFound, Failed int
}

// Summarize tallies outcomes.
func Summarize(outcomes []Outcome) Summary {
	var s Summary
	for _, o := range outcomes {
		switch {
		case o.Err != nil:
			s.Failed++
		case o.Result.Found:
			s.Found++
		default:
			s.NotFound++
		}
	}
	return s
}

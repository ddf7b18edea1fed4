package pathfind

import (
	"container/heap"
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"
)

// ErrInvalidInput is returned when the grid is missing or when start or
// goal is out of bounds or blocked.
var ErrInvalidInput = errors.New("pathfind: invalid input")

// Result is the outcome of a completed search.
// Found is false when the goal cannot be reached; that is not an error.
type Result struct {
	Path     Path
	Found    bool
	Expanded int // cells moved to the closed set
}

// Cost returns the number of moves in the path, or -1 if none was found.
func (r Result) Cost() int {
	if !r.Found {
		return -1
	}
	return r.Path.Cost()
}

// Option configures a PathFinder.
type Option func(*PathFinder)

// WithLogger sets the logger used for per-search debug output.
func WithLogger(log *zap.Logger) Option {
	return func(pf *PathFinder) {
		if log != nil {
			pf.log = log
		}
	}
}

// PathFinder runs A* searches on 4-connected grids with unit move cost.
// It keeps no state between calls and is safe for concurrent use.
type PathFinder struct {
	log *zap.Logger
}

// New creates a new pathfinder.
func New(opts ...Option) *PathFinder {
	pf := &PathFinder{log: zap.NewNop()}
	for _, opt := range opts {
		opt(pf)
	}
	return pf
}

var defaultFinder = New()

// Search runs a search with a default PathFinder.
func Search(grid Grid, start, goal Point) (Result, error) {
	return defaultFinder.Search(grid, start, goal)
}

// Search finds a shortest orthogonal path from start to goal.
func (pf *PathFinder) Search(grid Grid, start, goal Point) (Result, error) {
	return pf.search(context.Background(), grid, start, goal)
}

// SearchContext is Search with cancellation. ctx is checked once per
// expanded cell; on cancellation the context error is returned.
func (pf *PathFinder) SearchContext(ctx context.Context, grid Grid, start, goal Point) (Result, error) {
	return pf.search(ctx, grid, start, goal)
}

// Directions in expansion order: left, right, up, down.
var neighborOffsets = [4]Point{
	{-1, 0},
	{1, 0},
	{0, -1},
	{0, 1},
}

func (pf *PathFinder) search(ctx context.Context, grid Grid, start, goal Point) (Result, error) {
	if err := validateEndpoints(grid, start, goal); err != nil {
		return Result{}, err
	}

	width, height := grid.Width(), grid.Height()
	cells := make([]cell, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cells[y*width+x] = cell{
				g:       unreached,
				f:       unreached,
				parent:  -1,
				index:   -1,
				blocked: grid.IsBlocked(x, y),
			}
		}
	}

	open := &openHeap{cells: cells}
	seq := 0

	startID := start.Y*width + start.X
	goalID := goal.Y*width + goal.X
	cells[startID].g = 0
	cells[startID].f = Manhattan(start, goal)
	cells[startID].state = opened
	cells[startID].seq = seq
	seq++
	heap.Push(open, startID)

	expanded := 0
	for open.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return Result{Expanded: expanded}, err
		}

		current := heap.Pop(open).(int)
		if current == goalID {
			path := reconstructPath(cells, current, width)
			pf.log.Debug("path found",
				zap.Stringer("start", start),
				zap.Stringer("goal", goal),
				zap.Int("cost", path.Cost()),
				zap.Int("expanded", expanded))
			return Result{Path: path, Found: true, Expanded: expanded}, nil
		}

		cur := &cells[current]
		cur.state = closed
		expanded++

		cx, cy := current%width, current/width
		for _, d := range neighborOffsets {
			nx, ny := cx+d.X, cy+d.Y
			if nx < 0 || nx >= width || ny < 0 || ny >= height {
				continue
			}
			id := ny*width + nx
			n := &cells[id]
			if n.blocked || n.state == closed {
				continue
			}

			g := cur.g + 1
			discovered := n.state == undiscovered
			if discovered {
				n.state = opened
				n.seq = seq
				seq++
			}
			// Equal cost keeps the existing parent.
			if g >= n.g {
				continue
			}
			n.parent = current
			n.g = g
			n.f = g + Manhattan(Point{nx, ny}, goal)
			if discovered {
				heap.Push(open, id)
			} else {
				heap.Fix(open, n.index)
			}
		}
	}

	pf.log.Debug("no path",
		zap.Stringer("start", start),
		zap.Stringer("goal", goal),
		zap.Int("expanded", expanded))
	return Result{Expanded: expanded}, nil
}

func validateEndpoints(grid Grid, start, goal Point) error {
	if grid == nil {
		return fmt.Errorf("%w: nil grid", ErrInvalidInput)
	}
	for _, ep := range []struct {
		name string
		p    Point
	}{{"start", start}, {"goal", goal}} {
		if !InBounds(grid, ep.p) {
			return fmt.Errorf("%w: %s %s outside %dx%d grid",
				ErrInvalidInput, ep.name, ep.p, grid.Width(), grid.Height())
		}
		if grid.IsBlocked(ep.p.X, ep.p.Y) {
			return fmt.Errorf("%w: %s %s is blocked", ErrInvalidInput, ep.name, ep.p)
		}
	}
	return nil
}

func reconstructPath(cells []cell, id, width int) Path {
	var path Path
	for id >= 0 {
		path = append(path, Point{X: id % width, Y: id / width})
		id = cells[id].parent
	}
	// Reverse path (it's built from goal to start)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

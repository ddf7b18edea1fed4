package pathfind

import (
	"errors"
	"fmt"
)

// ErrInvalidPath is returned by Path.Validate.
var ErrInvalidPath = errors.New("pathfind: invalid path")

// Path is an ordered list of tiles from start to goal, inclusive.
type Path []Point

// Cost returns the number of moves, which is one less than the tile count.
func (p Path) Cost() int {
	if len(p) == 0 {
		return 0
	}
	return len(p) - 1
}

// Contains reports whether the path visits pt.
func (p Path) Contains(pt Point) bool {
	for _, q := range p {
		if q == pt {
			return true
		}
	}
	return false
}

// Validate checks that the path runs from start to goal over free tiles
// of grid using single orthogonal steps.
func (p Path) Validate(grid Grid, start, goal Point) error {
	if len(p) == 0 {
		return fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	if p[0] != start {
		return fmt.Errorf("%w: begins at %s, want %s", ErrInvalidPath, p[0], start)
	}
	if last := p[len(p)-1]; last != goal {
		return fmt.Errorf("%w: ends at %s, want %s", ErrInvalidPath, last, goal)
	}
	for i, pt := range p {
		if !InBounds(grid, pt) {
			return fmt.Errorf("%w: step %d %s out of bounds", ErrInvalidPath, i, pt)
		}
		if grid.IsBlocked(pt.X, pt.Y) {
			return fmt.Errorf("%w: step %d %s is blocked", ErrInvalidPath, i, pt)
		}
		if i > 0 && Manhattan(p[i-1], pt) != 1 {
			return fmt.Errorf("%w: step %d %s -> %s is not a single move", ErrInvalidPath, i, p[i-1], pt)
		}
	}
	return nil
}

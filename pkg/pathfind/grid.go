// Package pathfind provides shortest-path search over rectangular tile grids.
package pathfind

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is a tile coordinate. X grows to the right, Y grows downward.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// String returns the point as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// ParsePoint parses a coordinate written as "x,y".
func ParsePoint(s string) (Point, error) {
	xs, ys, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return Point{}, fmt.Errorf("invalid point %q: expected x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return Point{}, fmt.Errorf("invalid point %q: %w", s, err)
	}
	return Point{X: x, Y: y}, nil
}

//go:generate mockgen -destination=mocks/mock_grid.go -package=mocks . Grid

// Grid is the read-only view of a map that the search needs.
// Implementations may store cells however they like.
type Grid interface {
	Width() int
	Height() int
	IsBlocked(x, y int) bool
}

// InBounds reports whether p lies inside g.
func InBounds(g Grid, p Point) bool {
	return p.X >= 0 && p.X < g.Width() && p.Y >= 0 && p.Y < g.Height()
}

// Manhattan returns |a.X-b.X| + |a.Y-b.Y|.
// It never overestimates on a 4-connected unit-cost grid.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

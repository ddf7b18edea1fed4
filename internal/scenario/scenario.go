// Package scenario loads map files into search inputs.
package scenario

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/Faultbox/gridpath/pkg/formats"
	"github.com/Faultbox/gridpath/pkg/pathfind"
)

// ErrMissingEndpoint is returned when a map gives no start or goal and
// none was supplied.
var ErrMissingEndpoint = errors.New("scenario: missing start or goal")

// Scenario is a grid with the endpoints of one search.
type Scenario struct {
	Name  string
	Grid  pathfind.Grid
	Start pathfind.Point
	Goal  pathfind.Point
}

// Endpoints optionally override the markers stored in a map file.
type Endpoints struct {
	Start, Goal *pathfind.Point
}

// Load reads the map at path. Files ending in .gat are parsed as GAT
// tables, which carry no markers; anything else is a text grid.
func Load(path string, ep Endpoints) (*Scenario, error) {
	s := &Scenario{Name: filepath.Base(path)}

	var start, goal pathfind.Point
	var hasStart, hasGoal bool

	if strings.EqualFold(filepath.Ext(path), ".gat") {
		gat, err := formats.ParseGATFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		s.Grid = gat.Grid()
	} else {
		text, err := formats.ParseTextFile(path)
		if err != nil {
			return nil, fmt.Errorf("loading %s: %w", path, err)
		}
		s.Grid = text
		start, hasStart = text.Start()
		goal, hasGoal = text.Goal()
	}

	if ep.Start != nil {
		start, hasStart = *ep.Start, true
	}
	if ep.Goal != nil {
		goal, hasGoal = *ep.Goal, true
	}
	if !hasStart || !hasGoal {
		return nil, fmt.Errorf("%w in %s", ErrMissingEndpoint, path)
	}

	s.Start, s.Goal = start, goal
	return s, nil
}

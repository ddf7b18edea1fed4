package formats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Faultbox/gridpath/pkg/pathfind"
)

// Text grid markers. Any other character is a free tile.
const (
	TextBlocked = 'X'
	TextStart   = 'S'
	TextGoal    = 'G'
)

// Text grid errors.
var (
	ErrEmptyGrid       = errors.New("text grid: no rows")
	ErrRaggedGrid      = errors.New("text grid: rows differ in length")
	ErrDuplicateMarker = errors.New("text grid: marker appears more than once")
)

// maxTextRow is the longest row ParseText accepts, in bytes.
const maxTextRow = 1 << 20

// TextGrid is a grid read from rows of characters, one per tile.
type TextGrid struct {
	width, height int
	blocked       []bool

	start, goal       pathfind.Point
	hasStart, hasGoal bool
}

// Width returns the number of tiles per row.
func (g *TextGrid) Width() int { return g.width }

// Height returns the number of rows.
func (g *TextGrid) Height() int { return g.height }

// IsBlocked reports whether (x, y) is a wall. Out-of-range tiles count as walls.
func (g *TextGrid) IsBlocked(x, y int) bool {
	if x < 0 || y < 0 || x >= g.width || y >= g.height {
		return true
	}
	return g.blocked[y*g.width+x]
}

// Start returns the 'S' marker position, if the grid has one.
func (g *TextGrid) Start() (pathfind.Point, bool) { return g.start, g.hasStart }

// Goal returns the 'G' marker position, if the grid has one.
func (g *TextGrid) Goal() (pathfind.Point, bool) { return g.goal, g.hasGoal }

// ParseText reads a text grid. Each UTF-8 character is one tile and rows
// may be up to 1 MiB long. Trailing blank lines are ignored; a blank line in
// the middle of the grid is a ragged row.
func ParseText(r io.Reader) (*TextGrid, error) {
	var rows [][]rune
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxTextRow)
	for sc.Scan() {
		rows = append(rows, []rune(strings.TrimRight(sc.Text(), "\r")))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading text grid: %w", err)
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}

	g := &TextGrid{
		width:   len(rows[0]),
		height:  len(rows),
		blocked: make([]bool, len(rows[0])*len(rows)),
	}
	for y, row := range rows {
		if len(row) != g.width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrRaggedGrid, y, len(row), g.width)
		}
		for x := 0; x < len(row); x++ {
			switch row[x] {
			case TextBlocked:
				g.blocked[y*g.width+x] = true
			case TextStart:
				if g.hasStart {
					return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrDuplicateMarker, TextStart, x, y)
				}
				g.start, g.hasStart = pathfind.Pt(x, y), true
			case TextGoal:
				if g.hasGoal {
					return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrDuplicateMarker, TextGoal, x, y)
				}
				g.goal, g.hasGoal = pathfind.Pt(x, y), true
			}
		}
	}
	return g, nil
}

// ParseTextString parses a text grid held in a string.
func ParseTextString(s string) (*TextGrid, error) {
	return ParseText(strings.NewReader(s))
}

// ParseTextFile parses a text grid from disk.
func ParseTextFile(path string) (*TextGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening text grid: %w", err)
	}
	defer f.Close()
	return ParseText(f)
}

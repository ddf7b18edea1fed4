// Package formats provides readers for walkability grid files.
package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"

	"github.com/Faultbox/gridpath/pkg/pathfind"
)

// GAT format errors.
var (
	ErrInvalidGATMagic       = errors.New("invalid GAT magic: expected 'GRAT'")
	ErrUnsupportedGATVersion = errors.New("unsupported GAT version")
	ErrTruncatedGATData      = errors.New("truncated GAT data")
	ErrGATDimensions         = errors.New("invalid GAT dimensions")
)

// maxGATSide bounds each GAT dimension.
const maxGATSide = 4096

// GATVersion represents the GAT file version.
type GATVersion struct {
	Major uint8
	Minor uint8
}

// String returns the version as "Major.Minor".
func (v GATVersion) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// GATCellType represents the walkability type of a cell.
type GATCellType uint32

// Cell type constants.
const (
	GATWalkable      GATCellType = 0 // Normal walkable ground
	GATBlocked       GATCellType = 1 // Cannot walk through
	GATWater         GATCellType = 2 // Deep water
	GATWalkableWater GATCellType = 3 // Shore/shallow water
	GATSnipeable     GATCellType = 4 // Cliff: not walkable
	GATBlockedSnipe  GATCellType = 5 // Blocked
)

// String returns a human-readable cell type name.
func (t GATCellType) String() string {
	switch t {
	case GATWalkable:
		return "Walkable"
	case GATBlocked:
		return "Blocked"
	case GATWater:
		return "Water"
	case GATWalkableWater:
		return "Walkable+Water"
	case GATSnipeable:
		return "Snipeable"
	case GATBlockedSnipe:
		return "Blocked+Snipe"
	default:
		return fmt.Sprintf("Unknown(%d)", t)
	}
}

// IsWalkable returns true if the cell type allows walking.
// Every other type, including unknown ones, blocks the search.
func (t GATCellType) IsWalkable() bool {
	return t == GATWalkable || t == GATWalkableWater
}

// GATCell is a single cell: four corner heights followed by its type.
type GATCell struct {
	Heights [4]float32
	Type    GATCellType
}

// GAT represents a parsed Ground Altitude Table file.
type GAT struct {
	Version GATVersion
	Width   uint32
	Height  uint32
	Cells   []GATCell
}

// GetCell returns the cell at the given coordinates.
// Returns nil if coordinates are out of bounds.
func (g *GAT) GetCell(x, y int) *GATCell {
	if x < 0 || y < 0 || x >= int(g.Width) || y >= int(g.Height) {
		return nil
	}
	return &g.Cells[y*int(g.Width)+x]
}

// IsWalkable checks if the cell at (x, y) is walkable.
func (g *GAT) IsWalkable(x, y int) bool {
	cell := g.GetCell(x, y)
	if cell == nil {
		return false
	}
	return cell.Type.IsWalkable()
}

// CountByType returns the count of cells for each type.
func (g *GAT) CountByType() map[GATCellType]int {
	counts := make(map[GATCellType]int)
	for _, cell := range g.Cells {
		counts[cell.Type]++
	}
	return counts
}

// Grid returns a read-only pathfind.Grid view of the table.
func (g *GAT) Grid() pathfind.Grid {
	return gatGrid{gat: g}
}

type gatGrid struct {
	gat *GAT
}

func (v gatGrid) Width() int              { return int(v.gat.Width) }
func (v gatGrid) Height() int             { return int(v.gat.Height) }
func (v gatGrid) IsBlocked(x, y int) bool { return !v.gat.IsWalkable(x, y) }

// ParseGAT parses a GAT file from raw bytes.
func ParseGAT(data []byte) (*GAT, error) {
	if len(data) < 14 {
		return nil, ErrTruncatedGATData
	}

	if string(data[0:4]) != "GRAT" {
		return nil, ErrInvalidGATMagic
	}

	// Version is stored as [minor, major]
	version := GATVersion{
		Major: data[5],
		Minor: data[4],
	}
	if version.Major < 1 || version.Major > 3 {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedGATVersion, version)
	}

	r := bytes.NewReader(data[6:])

	var width, height uint32
	if err := binary.Read(r, binary.LittleEndian, &width); err != nil {
		return nil, fmt.Errorf("%w: reading width", ErrTruncatedGATData)
	}
	if err := binary.Read(r, binary.LittleEndian, &height); err != nil {
		return nil, fmt.Errorf("%w: reading height", ErrTruncatedGATData)
	}
	if width == 0 || height == 0 || width > maxGATSide || height > maxGATSide {
		return nil, fmt.Errorf("%w: %dx%d", ErrGATDimensions, width, height)
	}

	cellCount := int(width * height)
	gat := &GAT{
		Version: version,
		Width:   width,
		Height:  height,
		Cells:   make([]GATCell, cellCount),
	}
	for i := 0; i < cellCount; i++ {
		if err := binary.Read(r, binary.LittleEndian, &gat.Cells[i]); err != nil {
			return nil, fmt.Errorf("%w: cell %d", ErrTruncatedGATData, i)
		}
	}

	return gat, nil
}

// ParseGATFile parses a GAT file from disk.
func ParseGATFile(path string) (*GAT, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading GAT file: %w", err)
	}
	return ParseGAT(data)
}

// EncodeGAT serializes g in the version 1.2 layout.
func EncodeGAT(g *GAT) []byte {
	buf := new(bytes.Buffer)
	buf.WriteString("GRAT")
	buf.WriteByte(2) // minor
	buf.WriteByte(1) // major
	_ = binary.Write(buf, binary.LittleEndian, g.Width)
	_ = binary.Write(buf, binary.LittleEndian, g.Height)
	_ = binary.Write(buf, binary.LittleEndian, g.Cells)
	return buf.Bytes()
}

// GATFromGrid builds a flat GAT with one cell per grid tile. Grids that
// ParseGAT would reject fail with ErrGATDimensions.
func GATFromGrid(grid pathfind.Grid) (*GAT, error) {
	w, h := grid.Width(), grid.Height()
	if w <= 0 || h <= 0 || w > maxGATSide || h > maxGATSide {
		return nil, fmt.Errorf("%w: %dx%d", ErrGATDimensions, w, h)
	}
	gat := &GAT{
		Version: GATVersion{Major: 1, Minor: 2},
		Width:   uint32(w),
		Height:  uint32(h),
		Cells:   make([]GATCell, w*h),
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if grid.IsBlocked(x, y) {
				gat.Cells[y*w+x].Type = GATBlocked
			}
		}
	}
	return gat, nil
}

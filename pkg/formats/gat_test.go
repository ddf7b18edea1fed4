package formats

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"

	"github.com/Faultbox/gridpath/pkg/pathfind"
)

// createTestGAT creates a minimal valid GAT file for testing.
func createTestGAT(width, height uint32, cellTypes []GATCellType) []byte {
	buf := new(bytes.Buffer)

	buf.WriteString("GRAT")
	buf.WriteByte(2) // minor
	buf.WriteByte(1) // major

	binary.Write(buf, binary.LittleEndian, width)
	binary.Write(buf, binary.LittleEndian, height)

	cellCount := int(width * height)
	for i := 0; i < cellCount; i++ {
		for j := 0; j < 4; j++ {
			binary.Write(buf, binary.LittleEndian, float32(j))
		}
		cellType := GATWalkable
		if i < len(cellTypes) {
			cellType = cellTypes[i]
		}
		binary.Write(buf, binary.LittleEndian, uint32(cellType))
	}

	return buf.Bytes()
}

func TestParseGAT_ValidFile(t *testing.T) {
	gat, err := ParseGAT(createTestGAT(4, 3, nil))
	if err != nil {
		t.Fatalf("ParseGAT failed: %v", err)
	}

	if gat.Version.String() != "1.2" {
		t.Errorf("expected version 1.2, got %s", gat.Version)
	}
	if gat.Width != 4 || gat.Height != 3 {
		t.Errorf("expected 4x3, got %dx%d", gat.Width, gat.Height)
	}
	if len(gat.Cells) != 12 {
		t.Errorf("expected 12 cells, got %d", len(gat.Cells))
	}
	if gat.Cells[5].Heights != [4]float32{0, 1, 2, 3} {
		t.Errorf("unexpected heights %v", gat.Cells[5].Heights)
	}
}

func TestParseGAT_Errors(t *testing.T) {
	valid := createTestGAT(2, 2, nil)
	badVersion := append([]byte(nil), valid...)
	badVersion[5] = 9

	tests := []struct {
		name string
		data []byte
		want error
	}{
		{"short header", []byte("GRAT"), ErrTruncatedGATData},
		{"bad magic", []byte("XXXX\x02\x01\x04\x00\x00\x00\x04\x00\x00\x00"), ErrInvalidGATMagic},
		{"bad version", badVersion, ErrUnsupportedGATVersion},
		{"zero width", createTestGAT(0, 2, nil), ErrGATDimensions},
		{"missing cells", valid[:len(valid)-3], ErrTruncatedGATData},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseGAT(tc.data)
			if !errors.Is(err, tc.want) {
				t.Errorf("ParseGAT error = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestGATCellType_IsWalkable(t *testing.T) {
	tests := []struct {
		cellType GATCellType
		expected bool
	}{
		{GATWalkable, true},
		{GATBlocked, false},
		{GATWater, false},
		{GATWalkableWater, true},
		{GATSnipeable, false},
		{GATBlockedSnipe, false},
		{GATCellType(42), false},
	}

	for _, tc := range tests {
		if tc.cellType.IsWalkable() != tc.expected {
			t.Errorf("%v.IsWalkable() = %v, expected %v", tc.cellType, tc.cellType.IsWalkable(), tc.expected)
		}
	}
}

func TestGATCellType_String(t *testing.T) {
	if GATWalkableWater.String() != "Walkable+Water" {
		t.Errorf("unexpected name %q", GATWalkableWater.String())
	}
	if GATCellType(99).String() != "Unknown(99)" {
		t.Errorf("unexpected name %q", GATCellType(99).String())
	}
}

func TestGAT_GetCell(t *testing.T) {
	gat, _ := ParseGAT(createTestGAT(4, 4, nil))

	if gat.GetCell(2, 3) == nil {
		t.Error("GetCell(2, 3) returned nil for valid coordinates")
	}
	for _, xy := range [][2]int{{-1, 0}, {0, -1}, {4, 0}, {0, 4}} {
		if gat.GetCell(xy[0], xy[1]) != nil {
			t.Errorf("GetCell(%d, %d) should return nil", xy[0], xy[1])
		}
	}
}

func TestGAT_Grid(t *testing.T) {
	cellTypes := []GATCellType{
		GATWalkable,      // (0,0)
		GATBlocked,       // (1,0)
		GATWater,         // (0,1)
		GATWalkableWater, // (1,1)
	}
	gat, err := ParseGAT(createTestGAT(2, 2, cellTypes))
	if err != nil {
		t.Fatalf("ParseGAT failed: %v", err)
	}

	grid := gat.Grid()
	if grid.Width() != 2 || grid.Height() != 2 {
		t.Fatalf("expected 2x2 grid, got %dx%d", grid.Width(), grid.Height())
	}

	want := map[[2]int]bool{{0, 0}: false, {1, 0}: true, {0, 1}: true, {1, 1}: false}
	for xy, blocked := range want {
		if got := grid.IsBlocked(xy[0], xy[1]); got != blocked {
			t.Errorf("IsBlocked(%d,%d) = %v, want %v", xy[0], xy[1], got, blocked)
		}
	}
}

func TestGAT_GridSearch(t *testing.T) {
	// 5x5 map with a wall in column 2 open only at the bottom.
	cellTypes := make([]GATCellType, 25)
	for y := 0; y < 4; y++ {
		cellTypes[y*5+2] = GATBlocked
	}
	gat, err := ParseGAT(createTestGAT(5, 5, cellTypes))
	if err != nil {
		t.Fatalf("ParseGAT failed: %v", err)
	}

	res, err := pathfind.Search(gat.Grid(), pathfind.Pt(0, 0), pathfind.Pt(4, 0))
	if err != nil {
		t.Fatalf("Search failed: %v", err)
	}
	if !res.Found {
		t.Fatal("expected a path around the wall")
	}
	if res.Cost() != 12 {
		t.Errorf("expected cost 12, got %d", res.Cost())
	}
	if !res.Path.Contains(pathfind.Pt(2, 4)) {
		t.Error("path should pass through the gap at (2,4)")
	}
}

func TestGAT_CountByType(t *testing.T) {
	cellTypes := []GATCellType{
		GATWalkable, GATWalkable, GATWalkable,
		GATBlocked, GATBlocked,
		GATWater,
	}
	gat, _ := ParseGAT(createTestGAT(3, 2, cellTypes))

	counts := gat.CountByType()
	if counts[GATWalkable] != 3 || counts[GATBlocked] != 2 || counts[GATWater] != 1 {
		t.Errorf("unexpected counts %v", counts)
	}
}

func TestEncodeGAT_RoundTrip(t *testing.T) {
	text, err := ParseTextString("S-X\n--X\nX-G\n")
	if err != nil {
		t.Fatalf("ParseTextString failed: %v", err)
	}

	built, err := GATFromGrid(text)
	if err != nil {
		t.Fatalf("GATFromGrid failed: %v", err)
	}
	gat, err := ParseGAT(EncodeGAT(built))
	if err != nil {
		t.Fatalf("ParseGAT failed: %v", err)
	}

	grid := gat.Grid()
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			if grid.IsBlocked(x, y) != text.IsBlocked(x, y) {
				t.Errorf("tile (%d,%d) blocked mismatch", x, y)
			}
		}
	}
}

// sizedGrid is an all-free grid of any size.
type sizedGrid struct{ w, h int }

func (g sizedGrid) Width() int              { return g.w }
func (g sizedGrid) Height() int             { return g.h }
func (g sizedGrid) IsBlocked(int, int) bool { return false }

func TestGATFromGrid_Dimensions(t *testing.T) {
	tests := []struct {
		name    string
		w, h    int
		wantErr bool
	}{
		{"widest", maxGATSide, 1, false},
		{"tallest", 1, maxGATSide, false},
		{"too wide", 5002, 1, true},
		{"too tall", 1, maxGATSide + 1, true},
		{"empty", 0, 3, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			gat, err := GATFromGrid(sizedGrid{tc.w, tc.h})
			if tc.wantErr {
				if !errors.Is(err, ErrGATDimensions) {
					t.Errorf("expected ErrGATDimensions, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("GATFromGrid failed: %v", err)
			}
			if _, err := ParseGAT(EncodeGAT(gat)); err != nil {
				t.Errorf("encoded GAT does not parse back: %v", err)
			}
		})
	}
}

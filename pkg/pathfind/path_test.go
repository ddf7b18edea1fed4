package pathfind_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Faultbox/gridpath/pkg/pathfind"
)

func TestPathValidate(t *testing.T) {
	grid := rowGrid{
		"---",
		"-X-",
		"---",
	}
	start, goal := pathfind.Pt(0, 0), pathfind.Pt(2, 2)

	tests := []struct {
		name    string
		path    pathfind.Path
		wantErr bool
	}{
		{"valid", pts([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2}), false},
		{"empty", nil, true},
		{"wrong start", pts([2]int{1, 0}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2}), true},
		{"wrong end", pts([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}), true},
		{"diagonal step", pts([2]int{0, 0}, [2]int{1, 0}, [2]int{2, 1}, [2]int{2, 2}), true},
		{"through wall", pts([2]int{0, 0}, [2]int{0, 1}, [2]int{1, 1}, [2]int{2, 1}, [2]int{2, 2}), true},
		{"repeated tile", pts([2]int{0, 0}, [2]int{0, 0}, [2]int{1, 0}, [2]int{2, 0}, [2]int{2, 1}, [2]int{2, 2}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.path.Validate(grid, start, goal)
			if tt.wantErr {
				assert.ErrorIs(t, err, pathfind.ErrInvalidPath)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestPathCostAndContains(t *testing.T) {
	p := pts([2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2})
	assert.Equal(t, 2, p.Cost())
	assert.True(t, p.Contains(pathfind.Pt(0, 1)))
	assert.False(t, p.Contains(pathfind.Pt(1, 1)))
	assert.Equal(t, 0, pathfind.Path(nil).Cost())
}

func TestParsePoint(t *testing.T) {
	p, err := pathfind.ParsePoint(" 12, 7 ")
	require.NoError(t, err)
	assert.Equal(t, pathfind.Pt(12, 7), p)
	assert.Equal(t, "(12,7)", p.String())

	for _, bad := range []string{"", "3", "a,1", "1,b", "1;2"} {
		_, err := pathfind.ParsePoint(bad)
		assert.Error(t, err, "input %q", bad)
	}
}

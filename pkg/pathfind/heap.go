package pathfind

import "math"

// unreached marks g/f scores of cells no path has touched yet.
const unreached = math.MaxInt

type cellState uint8

const (
	undiscovered cellState = iota
	opened
	closed
)

// cell is the per-search record for one tile. Cells live in a dense
// arena indexed by y*width+x; parent is an arena index or -1.
type cell struct {
	g, f    int
	parent  int
	seq     int // order of insertion into the open set
	index   int // position in openHeap, -1 when not queued
	state   cellState
	blocked bool
}

// openHeap orders arena indices by f, then by insertion order, which
// reproduces a first-match linear scan over an append-only open list.
type openHeap struct {
	items []int
	cells []cell
}

func (h *openHeap) Len() int { return len(h.items) }

func (h *openHeap) Less(i, j int) bool {
	a, b := &h.cells[h.items[i]], &h.cells[h.items[j]]
	if a.f != b.f {
		return a.f < b.f
	}
	return a.seq < b.seq
}

func (h *openHeap) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.cells[h.items[i]].index = i
	h.cells[h.items[j]].index = j
}

func (h *openHeap) Push(x interface{}) {
	id := x.(int)
	h.cells[id].index = len(h.items)
	h.items = append(h.items, id)
}

func (h *openHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	id := old[n-1]
	h.items = old[:n-1]
	h.cells[id].index = -1
	return id
}

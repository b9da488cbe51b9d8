package entity

import "github.com/Gregoor/snagor/game/types"

// Trail is a fixed-length history of cells behind the head, kept in a ring
// buffer so a shift never allocates. Index 0 is the cell nearest the head.
type Trail struct {
	cells []types.Point
	start int
}

// NewTrail builds a trail from cells ordered newest first.
func NewTrail(cells ...types.Point) *Trail {
	buf := make([]types.Point, len(cells))
	copy(buf, cells)
	return &Trail{cells: buf}
}

func (t *Trail) Len() int {
	return len(t.cells)
}

// At returns the i-th cell, 0 being the newest and Len()-1 the oldest.
func (t *Trail) At(i int) types.Point {
	return t.cells[(t.start+i)%len(t.cells)]
}

// Shift prepends p and drops the oldest cell; the length is unchanged.
func (t *Trail) Shift(p types.Point) {
	if len(t.cells) == 0 {
		return
	}
	t.start = (t.start + len(t.cells) - 1) % len(t.cells)
	t.cells[t.start] = p
}

// Cells returns a copy of the trail, newest first.
func (t *Trail) Cells() []types.Point {
	out := make([]types.Point, len(t.cells))
	for i := range out {
		out[i] = t.At(i)
	}
	return out
}

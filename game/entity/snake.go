package entity

import "github.com/Gregoor/snagor/game/types"

// Snake is the grid-space body: the settled head cell, the cell it is moving
// toward, the committed heading and the trail behind it.
type Snake struct {
	Committed types.Point
	Pending   types.Point
	Heading   types.Heading
	Trail     *Trail
}

// NewSnake places the head at head with a straight trail of trailLen cells
// extending behind it, opposite to heading.
func NewSnake(head types.Point, heading types.Heading, trailLen int) *Snake {
	back := heading.Opposite().Offset()
	cells := make([]types.Point, trailLen)
	for i := range cells {
		cells[i] = head.Add(back.Scale(i + 1)).Clamp(0, types.GridSize-1)
	}
	s := &Snake{
		Committed: head,
		Heading:   heading,
		Trail:     NewTrail(cells...),
	}
	s.Pending = s.nextCell()
	return s
}

// SetDirection adopts dir unless it would turn the snake straight back into
// itself. It reports whether dir was adopted.
func (s *Snake) SetDirection(dir types.Heading) bool {
	if dir.Reverses(s.Heading) {
		return false
	}
	s.Heading = dir
	return true
}

// Advance moves the head onto the pending cell, shifting the trail, and
// recomputes the next pending cell from the current heading.
func (s *Snake) Advance() {
	s.Trail.Shift(s.Committed)
	s.Committed = s.Pending
	s.Pending = s.nextCell()
}

func (s *Snake) GetHead() types.Point {
	return s.Committed
}

func (s *Snake) nextCell() types.Point {
	return s.Committed.Add(s.Heading.Offset()).Clamp(0, types.GridSize-1)
}

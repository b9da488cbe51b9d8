package ui

import (
	"github.com/Gregoor/snagor/game/types"
)

const (
	// DefaultOverlap enlarges each square slightly so neighbouring cells
	// do not show anti-aliasing seams.
	DefaultOverlap = 1.03
	gridLineWidth  = 3
)

// Renderer maps grid-space positions to paint calls. It keeps no state
// between frames; the scale is passed on every call.
type Renderer struct {
	Overlap    float32
	Fill       Color
	Background Color
	GridLine   Color
	ShowGrid   bool
}

func NewRenderer() *Renderer {
	return &Renderer{
		Overlap:    DefaultOverlap,
		Fill:       White,
		Background: Black,
		GridLine:   GridGray,
		ShowGrid:   true,
	}
}

// Draw clears the surface, optionally strokes the background grid, then
// paints one square per position. scale is pixels per grid cell.
func (r *Renderer) Draw(s Surface, positions []types.Vec, scale float32) {
	s.Clear(r.Background)
	if r.ShowGrid {
		DrawGrid(s, scale, r.GridLine)
	}

	size := scale * r.Overlap
	for _, p := range positions {
		s.FillRect(float32(p.X)*scale, float32(p.Y)*scale, size, size, r.Fill)
	}
}

// DrawGrid strokes GridSize+1 lines along each axis.
func DrawGrid(s Surface, scale float32, c Color) {
	extent := float32(types.GridSize) * scale
	for i := 0; i <= types.GridSize; i++ {
		at := float32(i) * scale
		s.StrokeLine(at, 0, at, extent, gridLineWidth, c)
	}
	for i := 0; i <= types.GridSize; i++ {
		at := float32(i) * scale
		s.StrokeLine(0, at, extent, at, gridLineWidth, c)
	}
}

// Viewport fits the square play field into a window.
type Viewport struct {
	Scale   float32 // pixels per cell
	PxSize  float32 // side of the play field in pixels
	OffsetX float32
	OffsetY float32
}

// NewViewport computes the largest play field that fits in width x height,
// centred horizontally and pinned to the top edge.
func NewViewport(width, height int) Viewport {
	side := width
	if height < side {
		side = height
	}
	if side < 0 {
		side = 0
	}
	scale := float32(side) / types.GridSize
	px := scale * types.GridSize
	return Viewport{
		Scale:   scale,
		PxSize:  px,
		OffsetX: (float32(width) - px) / 2,
	}
}

// Package rlsurface implements ui.Surface on top of raylib.
package rlsurface

import (
	"github.com/Gregoor/snagor/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Surface paints into the current raylib frame, shifted by an offset so the
// play field can be centred in the window. Calls must happen between
// rl.BeginDrawing and rl.EndDrawing.
type Surface struct {
	OffsetX float32
	OffsetY float32
}

// For positions a surface at the viewport's offset.
func For(vp ui.Viewport) *Surface {
	return &Surface{OffsetX: vp.OffsetX, OffsetY: vp.OffsetY}
}

func (s *Surface) Clear(c ui.Color) {
	rl.ClearBackground(toRaylib(c))
}

func (s *Surface) FillRect(x, y, w, h float32, c ui.Color) {
	rl.DrawRectangleRec(rl.Rectangle{X: s.OffsetX + x, Y: s.OffsetY + y, Width: w, Height: h}, toRaylib(c))
}

func (s *Surface) StrokeLine(x1, y1, x2, y2, thick float32, c ui.Color) {
	rl.DrawLineEx(
		rl.Vector2{X: s.OffsetX + x1, Y: s.OffsetY + y1},
		rl.Vector2{X: s.OffsetX + x2, Y: s.OffsetY + y2},
		thick, toRaylib(c))
}

func toRaylib(c ui.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

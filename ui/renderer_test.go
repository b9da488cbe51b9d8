package ui

import (
	"testing"

	"github.com/Gregoor/snagor/game/types"

	. "github.com/smartystreets/goconvey/convey"
)

type rect struct {
	X, Y, W, H float32
	C          Color
}

type line struct {
	X1, Y1, X2, Y2 float32
}

// recorder is a Surface that remembers every call.
type recorder struct {
	ops    []string
	rects  []rect
	lines  []line
	clears []Color
}

func (r *recorder) Clear(c Color) {
	r.ops = append(r.ops, "clear")
	r.clears = append(r.clears, c)
}

func (r *recorder) FillRect(x, y, w, h float32, c Color) {
	r.ops = append(r.ops, "rect")
	r.rects = append(r.rects, rect{X: x, Y: y, W: w, H: h, C: c})
}

func (r *recorder) StrokeLine(x1, y1, x2, y2, thick float32, c Color) {
	r.ops = append(r.ops, "line")
	r.lines = append(r.lines, line{X1: x1, Y1: y1, X2: x2, Y2: y2})
}

func TestRendererDraw(t *testing.T) {
	Convey("Given a renderer without the grid layer", t, func() {
		r := NewRenderer()
		r.ShowGrid = false
		s := &recorder{}
		positions := []types.Vec{{X: 1.5, Y: 2}, {X: 0, Y: 0}}

		r.Draw(s, positions, 10)

		Convey("It clears first, then paints one square per position", func() {
			So(s.ops, ShouldResemble, []string{"clear", "rect", "rect"})
			So(s.clears[0], ShouldResemble, Black)
		})

		Convey("Squares are scaled and slightly oversized", func() {
			So(s.rects[0].X, ShouldAlmostEqual, 15, 1e-4)
			So(s.rects[0].Y, ShouldAlmostEqual, 20, 1e-4)
			So(s.rects[0].W, ShouldAlmostEqual, 10.3, 1e-4)
			So(s.rects[0].H, ShouldAlmostEqual, 10.3, 1e-4)
			So(s.rects[0].C, ShouldResemble, White)
		})

		Convey("The scale is taken per call", func() {
			s2 := &recorder{}
			r.Draw(s2, positions, 20)
			So(s2.rects[0].X, ShouldAlmostEqual, 30, 1e-4)
			So(s2.rects[0].W, ShouldAlmostEqual, 20.6, 1e-4)
		})
	})

	Convey("With the grid layer the lines go under the squares", t, func() {
		r := NewRenderer()
		s := &recorder{}
		r.Draw(s, []types.Vec{{X: 3, Y: 3}}, 5)

		So(s.ops[0], ShouldEqual, "clear")
		So(s.ops[len(s.ops)-1], ShouldEqual, "rect")
		So(s.lines, ShouldHaveLength, 2*(types.GridSize+1))
	})
}

func TestDrawGrid(t *testing.T) {
	Convey("DrawGrid spans the whole field on both axes", t, func() {
		s := &recorder{}
		DrawGrid(s, 4, GridGray)

		extent := float32(types.GridSize * 4)
		So(s.lines[0], ShouldResemble, line{X1: 0, Y1: 0, X2: 0, Y2: extent})
		So(s.lines[types.GridSize], ShouldResemble, line{X1: extent, Y1: 0, X2: extent, Y2: extent})
		So(s.lines[len(s.lines)-1], ShouldResemble, line{X1: 0, Y1: extent, X2: extent, Y2: extent})
	})
}

func TestViewport(t *testing.T) {
	Convey("A wide window is limited by its height", t, func() {
		vp := NewViewport(1000, 600)
		So(vp.Scale, ShouldAlmostEqual, 30, 1e-4)
		So(vp.PxSize, ShouldAlmostEqual, 600, 1e-4)
		So(vp.OffsetX, ShouldAlmostEqual, 200, 1e-4)
		So(vp.OffsetY, ShouldAlmostEqual, 0, 1e-4)
	})

	Convey("A tall window is limited by its width", t, func() {
		vp := NewViewport(400, 900)
		So(vp.Scale, ShouldAlmostEqual, 20, 1e-4)
		So(vp.OffsetX, ShouldAlmostEqual, 0, 1e-4)
	})

	Convey("A collapsed window yields a zero scale", t, func() {
		vp := NewViewport(-5, 10)
		So(vp.Scale, ShouldAlmostEqual, 0, 1e-4)
	})
}

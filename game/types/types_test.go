package types

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPoint(t *testing.T) {
	Convey("Point arithmetic is component-wise", t, func() {
		p := Point{X: 3, Y: -2}
		So(p.Add(Point{X: 1, Y: 1}), ShouldResemble, Point{X: 4, Y: -1})
		So(p.Sub(Point{X: 1, Y: 1}), ShouldResemble, Point{X: 2, Y: -3})
		So(p.Scale(2), ShouldResemble, Point{X: 6, Y: -4})
		So(p.MagSq(), ShouldEqual, 13)
	})

	Convey("Clamp keeps points on the grid", t, func() {
		So(Point{X: -1, Y: GridSize}.Clamp(0, GridSize-1), ShouldResemble, Point{X: 0, Y: GridSize - 1})
		So(Point{X: 4, Y: 5}.Clamp(0, GridSize-1), ShouldResemble, Point{X: 4, Y: 5})
		So(Point{X: GridSize - 1, Y: 0}.InBounds(), ShouldBeTrue)
		So(Point{X: GridSize, Y: 0}.InBounds(), ShouldBeFalse)
	})

	Convey("Lerp blends from one cell toward another", t, func() {
		from, to := Point{X: 2, Y: 4}, Point{X: 3, Y: 4}
		So(Lerp(from, to, 0), ShouldResemble, Vec{X: 2, Y: 4})
		So(Lerp(from, to, 1), ShouldResemble, Vec{X: 3, Y: 4})
		So(Lerp(from, to, 0.25).X, ShouldAlmostEqual, 2.25)
	})
}

func TestHeading(t *testing.T) {
	Convey("Every heading has a unit offset", t, func() {
		for _, h := range Headings {
			So(h.Offset().MagSq(), ShouldEqual, 1)
		}
		So(Up.Offset(), ShouldResemble, Point{X: 0, Y: -1})
	})

	Convey("Only exact opposites reverse each other", t, func() {
		So(Left.Reverses(Right), ShouldBeTrue)
		So(Up.Reverses(Down), ShouldBeTrue)
		So(Up.Reverses(Left), ShouldBeFalse)
		So(Right.Reverses(Right), ShouldBeFalse)
		for _, h := range Headings {
			So(h.Opposite().Reverses(h), ShouldBeTrue)
		}
	})

	Convey("Headings round-trip through their names", t, func() {
		for _, h := range Headings {
			got, err := ParseHeading(h.String())
			So(err, ShouldBeNil)
			So(got, ShouldEqual, h)
		}
		got, err := ParseHeading(" UP ")
		So(err, ShouldBeNil)
		So(got, ShouldEqual, Up)

		_, err = ParseHeading("north")
		So(err, ShouldNotBeNil)
	})

	Convey("Out-of-range headings are invalid", t, func() {
		So(Heading(7).Valid(), ShouldBeFalse)
		So(Heading(7).String(), ShouldEqual, "Heading(7)")
	})
}

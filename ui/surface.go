package ui

type Color struct {
	R, G, B, A uint8
}

var (
	White    = Color{R: 255, G: 255, B: 255, A: 255}
	Black    = Color{R: 0, G: 0, B: 0, A: 255}
	GridGray = Color{R: 0x33, G: 0x33, B: 0x32, A: 255}
)

// Surface is anything the renderer can paint on. Coordinates are pixels
// relative to the top-left corner of the play field.
type Surface interface {
	Clear(c Color)
	FillRect(x, y, w, h float32, c Color)
	StrokeLine(x1, y1, x2, y2, thick float32, c Color)
}

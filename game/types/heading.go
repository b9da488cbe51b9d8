package types

import (
	"fmt"
	"strings"
)

// Heading is one of the four cardinal directions of motion.
type Heading int

const (
	Left Heading = iota
	Right
	Up
	Down
)

// offsets is indexed by Heading; screen space, so Up is -Y.
var offsets = [...]Point{
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
	Up:    {X: 0, Y: -1},
	Down:  {X: 0, Y: 1},
}

var headingNames = [...]string{
	Left:  "left",
	Right: "right",
	Up:    "up",
	Down:  "down",
}

// Headings lists every valid heading in ordinal order.
var Headings = [...]Heading{Left, Right, Up, Down}

// Offset returns the unit cell offset for h.
func (h Heading) Offset() Point {
	return offsets[h]
}

func (h Heading) Opposite() Heading {
	switch h {
	case Left:
		return Right
	case Right:
		return Left
	case Up:
		return Down
	default:
		return Up
	}
}

// Reverses reports whether h points exactly against other, i.e. the sum of
// their offsets has zero magnitude.
func (h Heading) Reverses(other Heading) bool {
	return h.Offset().Add(other.Offset()).MagSq() == 0
}

func (h Heading) Valid() bool {
	return h >= Left && h <= Down
}

func (h Heading) String() string {
	if !h.Valid() {
		return fmt.Sprintf("Heading(%d)", int(h))
	}
	return headingNames[h]
}

// ParseHeading accepts the lower-case names produced by String.
func ParseHeading(s string) (Heading, error) {
	name := strings.ToLower(strings.TrimSpace(s))
	for _, h := range Headings {
		if headingNames[h] == name {
			return h, nil
		}
	}
	return 0, fmt.Errorf("unknown heading %q", s)
}

package input

import (
	"github.com/Gregoor/snagor/game/types"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// KeyMap translates raylib key codes into headings. Keys not in the map are
// ignored and never reach the motion controller.
type KeyMap map[int32]types.Heading

// DefaultKeyMap binds the arrow keys and WASD.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		rl.KeyLeft:  types.Left,
		rl.KeyRight: types.Right,
		rl.KeyUp:    types.Up,
		rl.KeyDown:  types.Down,
		rl.KeyA:     types.Left,
		rl.KeyD:     types.Right,
		rl.KeyW:     types.Up,
		rl.KeyS:     types.Down,
	}
}

// Heading looks up a single key.
func (km KeyMap) Heading(key int32) (types.Heading, bool) {
	h, ok := km[key]
	return h, ok
}

// Drain feeds keys from next (rl.GetKeyPressed in the frame loop, which
// returns 0 once the queue is empty) and returns the last mapped heading.
// Later presses win, matching the single-slot input buffer downstream.
func (km KeyMap) Drain(next func() int32) (types.Heading, bool) {
	var (
		last  types.Heading
		found bool
	)
	for key := next(); key != 0; key = next() {
		if h, ok := km[key]; ok {
			last, found = h, true
		}
	}
	return last, found
}

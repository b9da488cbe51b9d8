package ai

import (
	"github.com/Gregoor/snagor/game/types"

	"golang.org/x/exp/rand"
)

// Action is a turn relative to the current heading.
type Action int

const (
	Straight Action = iota
	TurnLeft
	TurnRight
)

// Pilot is the slice of the motion controller the wanderer needs.
type Pilot interface {
	Committed() types.Point
	Pending() types.Point
	Heading() types.Heading
	RecordInput(types.Heading)
}

// Wanderer steers the snake at random for attract mode. It only ever
// requests headings through RecordInput, so the controller's rules apply.
type Wanderer struct {
	// TurnChance is the probability of turning on any given commit.
	TurnChance float64
	rng        *rand.Rand
}

func NewWanderer(seed uint64, turnChance float64) *Wanderer {
	if turnChance < 0 {
		turnChance = 0
	}
	if turnChance > 1 {
		turnChance = 1
	}
	return &Wanderer{
		TurnChance: turnChance,
		rng:        rand.New(rand.NewSource(seed)),
	}
}

// Choose picks the next action. A snake pinned against a wall always turns.
func (w *Wanderer) Choose(p Pilot) Action {
	blocked := p.Pending() == p.Committed()
	if !blocked && w.rng.Float64() >= w.TurnChance {
		return Straight
	}
	if w.rng.Intn(2) == 0 {
		return TurnLeft
	}
	return TurnRight
}

// Step chooses an action and records the resulting heading on p.
func (w *Wanderer) Step(p Pilot) Action {
	action := w.Choose(p)
	if action != Straight {
		p.RecordInput(Apply(p.Heading(), action))
	}
	return action
}

// Apply rotates h by action. Screen space has Y pointing down, so a left
// turn from Right is Up.
func Apply(h types.Heading, action Action) types.Heading {
	switch action {
	case TurnLeft:
		return turn(h, -1)
	case TurnRight:
		return turn(h, 1)
	default:
		return h
	}
}

// clockwise lists headings in clockwise screen order.
var clockwise = [...]types.Heading{types.Up, types.Right, types.Down, types.Left}

func turn(h types.Heading, step int) types.Heading {
	for i, c := range clockwise {
		if c == h {
			return clockwise[(i+step+len(clockwise))%len(clockwise)]
		}
	}
	return h
}

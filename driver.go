package main

import (
	"log"
	"time"

	"github.com/Gregoor/snagor/ai"
	"github.com/Gregoor/snagor/config"
	"github.com/Gregoor/snagor/game"
	"github.com/Gregoor/snagor/game/types"
	"github.com/Gregoor/snagor/input"
	"github.com/Gregoor/snagor/ui"
)

// driver is the per-frame unit of work: read input, tick, draw. The frame
// loop in main calls Frame once per rendered frame.
type driver struct {
	motion   *game.Motion
	clock    game.FrameClock
	keys     input.KeyMap
	pilot    *ai.Wanderer
	renderer *ui.Renderer
	buf      []types.Vec
}

func newDriver(cfg *config.Config) *driver {
	d := &driver{
		motion: game.NewMotion(game.Options{
			Speed:       cfg.Speed,
			TrailLength: cfg.TrailLength,
		}),
		keys:     input.DefaultKeyMap(),
		renderer: ui.NewRenderer(),
	}
	d.renderer.Overlap = float32(cfg.Overlap)
	d.renderer.ShowGrid = cfg.ShowGrid
	if cfg.Autopilot.Enabled {
		d.pilot = ai.NewWanderer(cfg.Autopilot.Seed, cfg.Autopilot.TurnChance)
	}
	return d
}

// Frame runs one tick+render. nextKey yields queued key codes until it
// returns 0.
func (d *driver) Frame(now time.Time, nextKey func() int32, s ui.Surface, scale float32) {
	if h, ok := d.keys.Drain(nextKey); ok {
		d.motion.RecordInput(h)
	}

	if d.motion.Tick(d.clock.Elapsed(now)) {
		log.Printf("commit %d: head=%v heading=%v", d.motion.Commits(), d.motion.Committed(), d.motion.Heading())
		if d.pilot != nil {
			if _, pending := d.motion.Requested(); !pending {
				d.pilot.Step(d.motion)
			}
		}
	}

	d.buf = d.motion.AppendDrawPositions(d.buf[:0])
	d.renderer.Draw(s, d.buf, scale)
}

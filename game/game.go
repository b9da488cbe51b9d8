package game

import (
	"time"

	"github.com/Gregoor/snagor/game/entity"
	"github.com/Gregoor/snagor/game/types"
)

// Defaults for a new Motion.
const (
	DefaultSpeed       = 6.0 // cells per second
	DefaultTrailLength = 3
	MinTrailLength     = 2 // the tail is interpolated between the two oldest cells
)

type Options struct {
	Speed       float64
	TrailLength int
}

func DefaultOptions() Options {
	return Options{Speed: DefaultSpeed, TrailLength: DefaultTrailLength}
}

// Motion is the grid-space state machine. It advances the snake by at most
// one cell per Tick and exposes interpolated positions for drawing. It is not
// safe for concurrent use; the frame loop owns it.
type Motion struct {
	snake     *entity.Snake
	requested types.Heading
	hasInput  bool
	progress  float64
	speed     float64
	commits   int
}

// NewMotion starts the head at the grid centre heading right, with a straight
// trail extending to its left.
func NewMotion(opts Options) *Motion {
	if opts.Speed <= 0 {
		opts.Speed = DefaultSpeed
	}
	if opts.TrailLength < MinTrailLength {
		opts.TrailLength = DefaultTrailLength
	}
	center := types.GridSize / 2
	return &Motion{
		snake: entity.NewSnake(types.Point{X: center, Y: center}, types.Right, opts.TrailLength),
		speed: opts.Speed,
	}
}

// NewMotionFrom wraps an existing snake, e.g. one placed against a wall.
func NewMotionFrom(snake *entity.Snake, speed float64) *Motion {
	if speed <= 0 {
		speed = DefaultSpeed
	}
	return &Motion{snake: snake, speed: speed}
}

// RecordInput stores h as the requested heading, replacing any request not
// yet consumed by a commit.
func (m *Motion) RecordInput(h types.Heading) {
	if !h.Valid() {
		return
	}
	m.requested = h
	m.hasInput = true
}

// Tick advances the state by elapsed wall-clock time and reports whether a
// commit happened. A commit is due when the previous cycle reached full
// progress; progress then restarts from zero, dropping any overshoot.
func (m *Motion) Tick(elapsed time.Duration) bool {
	if elapsed < 0 {
		elapsed = 0
	}

	committed := false
	if m.progress >= 1 {
		m.commit()
		committed = true
	}

	if m.progress < 1 {
		m.progress += m.speed * elapsed.Seconds()
		if m.progress > 1 {
			m.progress = 1
		}
	}
	return committed
}

func (m *Motion) commit() {
	if m.hasInput {
		m.snake.SetDirection(m.requested)
		m.hasInput = false
	}
	m.snake.Advance()
	m.progress = 0
	m.commits++
}

// DrawPositions returns the positions to paint this frame in grid space.
func (m *Motion) DrawPositions() []types.Vec {
	return m.AppendDrawPositions(make([]types.Vec, 0, m.snake.Trail.Len()+2))
}

// AppendDrawPositions appends, in order: the interpolated head, the
// interpolated tail end, the committed head cell and every trail cell except
// the oldest.
func (m *Motion) AppendDrawPositions(dst []types.Vec) []types.Vec {
	trail := m.snake.Trail
	n := trail.Len()

	dst = append(dst,
		types.Lerp(m.snake.Committed, m.snake.Pending, m.progress),
		types.Lerp(trail.At(n-1), trail.At(n-2), m.progress),
		m.snake.Committed.Vec(),
	)
	for i := 0; i < n-1; i++ {
		dst = append(dst, trail.At(i).Vec())
	}
	return dst
}

func (m *Motion) Committed() types.Point { return m.snake.Committed }
func (m *Motion) Pending() types.Point { return m.snake.Pending }
func (m *Motion) Heading() types.Heading { return m.snake.Heading }
func (m *Motion) Progress() float64 { return m.progress }
func (m *Motion) Speed() float64 { return m.speed }

// Commits counts the commits since the Motion was created.
func (m *Motion) Commits() int { return m.commits }

// Requested returns the pending input, if any.
func (m *Motion) Requested() (types.Heading, bool) {
	return m.requested, m.hasInput
}

// Trail returns a copy of the trail, newest first.
func (m *Motion) Trail() []types.Point {
	return m.snake.Trail.Cells()
}

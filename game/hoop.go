package game

import (
	"time"

	"github.com/simukka/flappy-dunk/common"
)

// Hoop is a passable obstacle scrolling from right to left.
type Hoop struct {
	ID       uint64
	X, Y     float64
	W, H     float64
	Kind     HoopKind
	Missed   bool    // Already counted as a miss
	Rotation float64 // Swing animation, renderer only
	Swing    float64 // Swing speed, sign is the direction
}

// Bounds returns the collision box.
func (h *Hoop) Bounds() Rect {
	return Rect{X: h.X, Y: h.Y, W: h.W, H: h.H}
}

// Advance scrolls the hoop left by speed and swings it.
func (h *Hoop) Advance(speed, maxSwing float64) {
	h.X -= speed
	if h.Rotation >= maxSwing || h.Rotation <= -maxSwing {
		h.Swing = -h.Swing
	}
	h.Rotation += h.Swing
}

// Gone reports whether the trailing edge has left the screen.
func (h *Hoop) Gone() bool {
	return h.X+h.W < 0
}

// HoopPool holds the active hoops.
type HoopPool = common.Pool[Hoop]

// NewHoopPool creates a pool holding at most capacity hoops.
func NewHoopPool(capacity int) *HoopPool {
	return common.NewPool[Hoop](capacity)
}

// Spawner decides when and where new hoops appear.
type Spawner struct {
	tuning HoopTuning
	field  FieldTuning
	rng    common.Source
	since  time.Duration
	primed bool
}

// NewSpawner creates a spawner drawing placements from rng.
func NewSpawner(field FieldTuning, tuning HoopTuning, rng common.Source) *Spawner {
	return &Spawner{tuning: tuning, field: field, rng: rng}
}

// Reset makes the next Advance spawn immediately.
func (s *Spawner) Reset() {
	s.since = 0
	s.primed = false
}

// Advance accumulates elapsed time and reports whether a hoop is due. The first
// call after Reset is always due.
func (s *Spawner) Advance(elapsed, interval time.Duration) bool {
	if !s.primed {
		s.primed = true
		s.since = 0
		return true
	}
	s.since += elapsed
	if s.since < interval {
		return false
	}
	s.since = 0
	return true
}

// Place fills h with a new hoop for the given difficulty. Bottom hoops sit at
// the base line, top hoops one gap above it; both jitter more at higher levels.
func (s *Spawner) Place(h *Hoop, id uint64, levelIndex int, level Level) {
	base := s.field.Height - s.tuning.BaseOffset
	jitter := (s.rng.Random() - 0.5) * s.tuning.JitterPerLevel * float64(levelIndex)

	kind := HoopBottom
	y := base + jitter
	if common.Chance(s.rng, 0.5) {
		kind = HoopTop
		y = base - level.Gap + jitter
	}

	*h = Hoop{
		ID:    id,
		X:     s.tuning.SpawnX,
		Y:     clamp(y, 0, s.field.Height-s.tuning.Height),
		W:     s.tuning.Width,
		H:     s.tuning.Height,
		Kind:  kind,
		Swing: s.tuning.SwingSpeed,
	}
}

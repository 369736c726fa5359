// Package scene holds the presentation state shared by the front-ends:
// transient effects spawned from snapshot events and HUD text.
package scene

import (
	"math"
	"strconv"

	"github.com/simukka/flappy-dunk/common"
	"github.com/simukka/flappy-dunk/game"
)

// Effect pool sizes.
const (
	MaxParticles     = 200
	MaxPopups        = 16
	MaxFlashes       = 8
	MaxNets          = 8
	ParticlesPerDunk = 10
)

// Particle is a fading spark thrown out of a scored hoop.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Size   float64
	Life   float64
	Tint   int // Index into the front-end particle palette
}

// Popup is the floating points label of a scoring pass.
type Popup struct {
	X, Y   float64
	VY     float64
	Life   float64
	Scale  float64
	Points int
}

// Flash is an expanding glow around the player.
type Flash struct {
	X, Y      float64
	Radius    float64
	MaxRadius float64
	Alpha     float64
}

// NetWave animates the net of a scored hoop.
type NetWave struct {
	X, Y      float64
	W, H      float64
	Phase     float64
	Amplitude float64
	Life      float64
}

// Banner is the level-up announcement.
type Banner struct {
	Text string
	Life float64
}

// Effects owns every transient presentation effect. It is driven by the
// per-frame events carried in snapshots and never feeds back into the core.
type Effects struct {
	Particles *common.Pool[Particle]
	Popups    *common.Pool[Popup]
	Flashes   *common.Pool[Flash]
	Nets      *common.Pool[NetWave]
	Banner    Banner

	rng     common.Source
	tints   int
	lastRun int
}

// NewEffects creates the effect pools. rng only drives particle spread and
// tints is the size of the particle palette.
func NewEffects(rng common.Source, tints int) *Effects {
	if tints < 1 {
		tints = 1
	}
	return &Effects{
		Particles: common.NewPool[Particle](MaxParticles),
		Popups:    common.NewPool[Popup](MaxPopups),
		Flashes:   common.NewPool[Flash](MaxFlashes),
		Nets:      common.NewPool[NetWave](MaxNets),
		rng:       rng,
		tints:     tints,
	}
}

// Clear drops every active effect.
func (e *Effects) Clear() {
	e.Particles.Clear()
	e.Popups.Clear()
	e.Flashes.Clear()
	e.Nets.Clear()
	e.Banner = Banner{}
}

// Observe spawns effects for the events of one snapshot.
func (e *Effects) Observe(s game.Snapshot) {
	if s.Run != e.lastRun {
		e.lastRun = s.Run
		e.Clear()
	}
	for _, h := range s.ScoredHoops {
		cx, cy := h.X+h.W/2, h.Y+h.H/2
		e.burst(cx, cy)
		if p := e.Popups.Acquire(); p != nil {
			*p = Popup{X: cx, Y: h.Y, VY: -2, Life: 1, Scale: 1, Points: s.LastAward}
		}
		if f := e.Flashes.Acquire(); f != nil {
			*f = Flash{
				X:         s.Player.X + s.Player.W/2,
				Y:         s.Player.Y + s.Player.H/2,
				Radius:    10,
				MaxRadius: 80,
				Alpha:     1,
			}
		}
		if n := e.Nets.Acquire(); n != nil {
			*n = NetWave{X: h.X, Y: h.Y + h.H/2, W: h.W, H: 30, Amplitude: 5, Life: 1}
		}
	}
	if s.LeveledUp {
		e.Banner = Banner{Text: "LEVEL " + strconv.Itoa(s.Level+1), Life: 1}
	}
}

func (e *Effects) burst(x, y float64) {
	for i := 0; i < ParticlesPerDunk; i++ {
		p := e.Particles.Acquire()
		if p == nil {
			return
		}
		*p = Particle{
			X:     x,
			Y:     y,
			VX:    (e.rng.Random() - 0.5) * 8,
			VY:    (e.rng.Random() - 0.5) * 8,
			Size:  e.rng.Random()*4 + 2,
			Life:  1,
			Tint:  common.IntBetween(e.rng, 0, e.tints),
		}
	}
}

// Step ages every effect by one frame and releases the expired ones.
func (e *Effects) Step() {
	e.Particles.ForEachReverse(func(p *Particle, i int) {
		p.X += p.VX
		p.Y += p.VY
		p.Life -= 0.02
		p.Size -= 0.05
		if p.Life <= 0 || p.Size <= 0 {
			e.Particles.Release(i)
		}
	})
	e.Popups.ForEachReverse(func(p *Popup, i int) {
		p.Y += p.VY
		p.Life -= 0.02
		p.Scale = 1 + math.Sin(p.Life*math.Pi)*0.5
		if p.Life <= 0 {
			e.Popups.Release(i)
		}
	})
	e.Flashes.ForEachReverse(func(f *Flash, i int) {
		f.Radius += 5
		f.Alpha -= 0.05
		if f.Radius >= f.MaxRadius || f.Alpha <= 0 {
			e.Flashes.Release(i)
		}
	})
	e.Nets.ForEachReverse(func(n *NetWave, i int) {
		n.Phase += 0.3
		n.Amplitude *= 0.95
		n.Life -= 0.02
		if n.Life <= 0 {
			e.Nets.Release(i)
		}
	})
	if e.Banner.Life > 0 {
		e.Banner.Life -= 0.01
	}
}

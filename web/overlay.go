package web

import (
	"strconv"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/flappy-dunk/game"
	"github.com/simukka/flappy-dunk/scene"
)

// Debug panel styling.
var debugStyle = struct {
	Background, Border, Heading, Label, Muted string
	Hitbox, HoopBox, MissedBox                 string
	Gauge                                      []string // healthy to critical
	Font, HeadingFont, TagFont                 string
}{
	Background:  "rgba(20, 24, 32, 0.8)",
	Border:      "#f1c40f",
	Heading:     "#f1c40f",
	Label:       "#bdc3c7",
	Muted:       "#7f8c8d",
	Hitbox:      "#2ecc71",
	HoopBox:     "#e91e63",
	MissedBox:   "#7f8c8d",
	Gauge:       []string{"#2ecc71", "#a3d977", "#f1c40f", "#e74c3c"},
	Font:        "12px monospace",
	HeadingFont: "bold 13px monospace",
	TagFont:     "9px monospace",
}

// fpsMeter averages frame rate over one-second windows of requestAnimationFrame time.
type fpsMeter struct {
	frames int
	since  float64
	rate   float64
}

func (m *fpsMeter) tick(nowMs float64) {
	m.frames++
	if span := nowMs - m.since; span >= 1000 {
		m.rate = float64(m.frames) * 1000 / span
		m.frames, m.since = 0, nowMs
	}
}

type statRow struct {
	label, value, color string
}

// StatsOverlay is the F10 debug panel. It also outlines every collision box.
type StatsOverlay struct {
	Visible bool
	fps     fpsMeter

	X, Y, Width, RowHeight float64
}

// NewStatsOverlay pins the panel to the top-right corner of the court.
func NewStatsOverlay(fieldWidth float64) *StatsOverlay {
	const width = 264
	return &StatsOverlay{X: fieldWidth - width - 16, Y: 16, Width: width, RowHeight: 18}
}

func (s *StatsOverlay) Toggle() { s.Visible = !s.Visible }

// UpdateFPS records one rendered frame at nowMs.
func (s *StatsOverlay) UpdateFPS(nowMs float64) { s.fps.tick(nowMs) }

// FPS is the rate measured over the last complete window.
func (s *StatsOverlay) FPS() float64 { return s.fps.rate }

func (s *StatsOverlay) rows(snap game.Snapshot, fx *scene.Effects) []statRow {
	p := snap.Player
	f1 := func(v float64) string { return strconv.FormatFloat(v, 'f', 1, 64) }
	f0 := func(v float64) string { return strconv.FormatFloat(v, 'f', 0, 64) }
	of := func(n, max int) string { return strconv.Itoa(n) + "/" + strconv.Itoa(max) }
	return []statRow{
		{"fps", f1(s.fps.rate), s.gauge(0)},
		{label: "run"},
		{"state", snap.State.String(), debugStyle.Label},
		{"run/tick", strconv.Itoa(snap.Run) + " / " + strconv.FormatUint(snap.Tick, 10), debugStyle.Muted},
		{"speed", f1(snap.Speed), Theme.LevelUpColor},
		{"misses", of(snap.Misses, snap.MaxMissed), s.missColor(snap)},
		{label: "pools"},
		{"hoops", strconv.Itoa(len(snap.Hoops)), Theme.RimColor},
		{"particles", of(fx.Particles.Len(), fx.Particles.MaxSize), Theme.BallColor},
		{"popups", of(fx.Popups.Len(), fx.Popups.MaxSize), Theme.SuccessColor},
		{label: "ball"},
		{"x, y", f0(p.X) + ", " + f0(p.Y), debugStyle.Muted},
		{"vy", f1(p.VY), Theme.SkyTop},
	}
}

// Render draws the collision boxes and the panel when visible.
func (s *StatsOverlay) Render(ctx *js.Object, snap game.Snapshot, fx *scene.Effects) {
	if !s.Visible {
		return
	}
	s.renderHitboxes(ctx, snap)

	rows := s.rows(snap, fx)
	height := 40 + float64(len(rows))*s.RowHeight
	ctx.Set("fillStyle", debugStyle.Background)
	ctx.Call("fillRect", s.X, s.Y, s.Width, height)
	ctx.Set("strokeStyle", debugStyle.Border)
	ctx.Set("lineWidth", 1)
	ctx.Call("strokeRect", s.X, s.Y, s.Width, height)

	ctx.Set("textAlign", "left")
	ctx.Set("fillStyle", debugStyle.Heading)
	ctx.Set("font", debugStyle.HeadingFont)
	ctx.Call("fillText", "DEBUG  (F10 hides)", s.X+10, s.Y+20)

	ctx.Set("font", debugStyle.Font)
	y := s.Y + 44
	for _, r := range rows {
		if r.value == "" {
			ctx.Set("fillStyle", debugStyle.Muted)
			ctx.Call("fillText", "· "+r.label, s.X+10, y)
		} else {
			ctx.Set("fillStyle", debugStyle.Label)
			ctx.Call("fillText", r.label, s.X+18, y)
			ctx.Set("fillStyle", r.color)
			ctx.Set("textAlign", "right")
			ctx.Call("fillText", r.value, s.X+s.Width-14, y)
			ctx.Set("textAlign", "left")
		}
		y += s.RowHeight
	}
}

func (s *StatsOverlay) renderHitboxes(ctx *js.Object, snap game.Snapshot) {
	p := snap.Player
	ctx.Set("lineWidth", 2)
	ctx.Set("strokeStyle", debugStyle.Hitbox)
	ctx.Call("strokeRect", p.X, p.Y, p.W, p.H)

	ctx.Set("lineWidth", 1)
	ctx.Set("font", debugStyle.TagFont)
	ctx.Set("textAlign", "center")
	for _, h := range snap.Hoops {
		c := debugStyle.HoopBox
		if h.Missed {
			c = debugStyle.MissedBox
		}
		ctx.Set("strokeStyle", c)
		ctx.Set("fillStyle", c)
		ctx.Call("strokeRect", h.X, h.Y, h.W, h.H)
		ctx.Call("fillText", h.Kind.String()+" "+strconv.FormatUint(h.ID, 10), h.X+h.W/2, h.Y-4)
	}
	ctx.Set("textAlign", "left")
}

// gauge picks a colour by severity, 0 being healthy.
func (s *StatsOverlay) gauge(level int) string {
	if level >= len(debugStyle.Gauge) {
		level = len(debugStyle.Gauge) - 1
	}
	return debugStyle.Gauge[level]
}

// missColor reddens as the remaining chances shrink.
func (s *StatsOverlay) missColor(snap game.Snapshot) string {
	if snap.MaxMissed <= 0 {
		return s.gauge(0)
	}
	left := 100 * (snap.MaxMissed - snap.Misses) / snap.MaxMissed
	switch {
	case left > 75:
		return s.gauge(0)
	case left > 50:
		return s.gauge(1)
	case left > 25:
		return s.gauge(2)
	default:
		return s.gauge(3)
	}
}

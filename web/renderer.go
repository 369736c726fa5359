package web

import (
	"math"
	"strconv"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/flappy-dunk/game"
	"github.com/simukka/flappy-dunk/leaderboard"
	"github.com/simukka/flappy-dunk/scene"
)

// Renderer draws snapshots onto a 2D canvas context.
type Renderer struct {
	Ctx     *js.Object
	Sprites *Sprites
	Effects *scene.Effects
	Stats   *StatsOverlay

	// Selected reports the mode highlighted on the title screen.
	Selected func() game.Mode
	// Board returns the stored scores shown on menu screens.
	Board func(game.Mode) []leaderboard.Entry
	// Muted reports the audio mute state for the HUD icon.
	Muted func() bool

	width, height float64
	cloudOffset   float64
}

var _ game.Renderer = (*Renderer)(nil)

// NewRenderer prepares sprites for t and draws onto ctx.
func NewRenderer(ctx *js.Object, t game.Tuning, fx *scene.Effects, stats *StatsOverlay) *Renderer {
	return &Renderer{
		Ctx:      ctx,
		Sprites:  NewSprites(t),
		Effects:  fx,
		Stats:    stats,
		Selected: func() game.Mode { return game.ModeClassic },
		Board:    func(game.Mode) []leaderboard.Entry { return nil },
		Muted:    func() bool { return false },
		width:    t.Field.Width,
		height:   t.Field.Height,
	}
}

// RenderFrame draws one complete frame.
func (r *Renderer) RenderFrame(s game.Snapshot) {
	r.Effects.Observe(s)
	r.Effects.Step()
	if s.State == game.StatePlaying {
		r.cloudOffset += s.Speed * 0.5
	}

	ctx := r.Ctx
	ctx.Call("drawImage", r.Sprites.Sky, 0, 0)
	r.renderClouds()

	for _, h := range s.Hoops {
		drawRotated(ctx, r.Sprites.HoopBack, h.X+h.W/2, h.Y+h.H/2, h.Rotation)
	}
	r.renderPlayer(s.Player)
	for _, h := range s.Hoops {
		drawRotated(ctx, r.Sprites.HoopFront, h.X+h.W/2, h.Y+h.H/2, h.Rotation)
	}
	r.renderEffects()

	switch s.State {
	case game.StateIdle:
		r.renderTitle(s)
	case game.StatePlaying:
		r.renderHUD(s)
		r.renderWarning(s)
		r.renderTip(s)
		r.renderBanner()
	case game.StateTerminated:
		r.renderHUD(s)
		r.renderGameOver(s)
	}

	r.Stats.Render(ctx, s, r.Effects)
}

func (r *Renderer) renderClouds() {
	ctx := r.Ctx
	ctx.Set("fillStyle", Theme.CloudColor)
	span := r.width + 200
	for i := 0; i < 3; i++ {
		x := math.Mod(float64(i)*300-r.cloudOffset, span)
		if x < 0 {
			x += span
		}
		x -= 100
		y := 50 + float64(i)*80
		ctx.Call("beginPath")
		ctx.Call("arc", x, y, 30, 0, math.Pi*2)
		ctx.Call("arc", x+30, y, 30, 0, math.Pi*2)
		ctx.Call("arc", x+60, y, 30, 0, math.Pi*2)
		ctx.Call("fill")
	}
}

func (r *Renderer) renderPlayer(p game.Player) {
	if !p.Alive {
		r.Ctx.Set("globalAlpha", 0.5)
		defer r.Ctx.Set("globalAlpha", 1)
	}
	drawRotated(r.Ctx, r.Sprites.Ball, p.X+p.W/2, p.Y+p.H/2, p.Rotation)
}

func (r *Renderer) renderEffects() {
	ctx := r.Ctx
	ctx.Call("save")

	for _, n := range r.Effects.Nets.Slice() {
		ctx.Set("globalAlpha", n.Life)
		ctx.Set("strokeStyle", Theme.NetColor)
		ctx.Set("lineWidth", Theme.NetLineWidth)
		const lines = 6
		for i := 0; i < lines; i++ {
			x := n.X + float64(i)*n.W/(lines-1)
			ctx.Call("beginPath")
			ctx.Call("moveTo", x, n.Y)
			for y := 0.0; y < n.H; y += 5 {
				wave := math.Sin(n.Phase+float64(i)*0.5) * n.Amplitude * (1 - y/n.H)
				ctx.Call("lineTo", x+wave, n.Y+y)
			}
			ctx.Call("stroke")
		}
	}

	for _, p := range r.Effects.Particles.Slice() {
		ctx.Set("globalAlpha", p.Life)
		ctx.Set("fillStyle", Theme.ParticleColors[p.Tint%len(Theme.ParticleColors)])
		ctx.Call("beginPath")
		ctx.Call("arc", p.X, p.Y, p.Size, 0, math.Pi*2)
		ctx.Call("fill")
	}

	for _, f := range r.Effects.Flashes.Slice() {
		ctx.Set("globalAlpha", f.Alpha)
		gradient := ctx.Call("createRadialGradient", f.X, f.Y, 0, f.X, f.Y, f.Radius)
		gradient.Call("addColorStop", 0, "rgba("+Theme.FlashColor+", 1)")
		gradient.Call("addColorStop", 1, "rgba("+Theme.FlashColor+", 0)")
		ctx.Set("fillStyle", gradient)
		ctx.Call("beginPath")
		ctx.Call("arc", f.X, f.Y, f.Radius, 0, math.Pi*2)
		ctx.Call("fill")
	}

	ctx.Set("textAlign", "center")
	for _, p := range r.Effects.Popups.Slice() {
		ctx.Set("globalAlpha", math.Max(p.Life, 0))
		ctx.Set("font", "bold "+strconv.Itoa(int(24*p.Scale))+"px "+Theme.PopupFont)
		ctx.Set("strokeStyle", Theme.TextShadow)
		ctx.Set("lineWidth", 3)
		label := "+" + strconv.Itoa(p.Points)
		ctx.Call("strokeText", label, p.X, p.Y)
		ctx.Set("fillStyle", PopupColor(p.Life))
		ctx.Call("fillText", label, p.X, p.Y)
	}

	ctx.Call("restore")
}

func (r *Renderer) text(s string, x, y float64, font, color, align string) {
	ctx := r.Ctx
	ctx.Set("font", font)
	ctx.Set("textAlign", align)
	ctx.Set("fillStyle", Theme.TextShadow)
	ctx.Call("fillText", s, x+2, y+2)
	ctx.Set("fillStyle", color)
	ctx.Call("fillText", s, x, y)
}

func (r *Renderer) renderHUD(s game.Snapshot) {
	y := 36.0
	for _, line := range scene.HUDLines(s) {
		r.text(line, 16, y, Theme.HUDFont, Theme.ScoreColor, "left")
		y += 30
	}
	if r.Muted() {
		r.text("MUTED [M]", r.width-16, r.height-32, Theme.SmallFont, Theme.TextColor, "right")
	}
	r.Ctx.Set("textAlign", "left")
}

func (r *Renderer) renderWarning(s game.Snapshot) {
	text, alpha, ok := scene.ChancesWarning(s)
	if !ok {
		return
	}
	ctx := r.Ctx
	color := "rgba(" + Theme.WarningColor + ", " + strconv.FormatFloat(alpha, 'f', 2, 64) + ")"
	ctx.Set("font", "bold 20px Arial")
	ctx.Set("textAlign", "center")
	ctx.Set("fillStyle", color)
	ctx.Call("fillText", text, r.width/2, 40)
	if scene.LastChance(s) {
		ctx.Set("strokeStyle", color)
		ctx.Set("lineWidth", 3)
		ctx.Call("beginPath")
		ctx.Call("arc", r.width/2, 34, 30, 0, math.Pi*2)
		ctx.Call("stroke")
	}
	ctx.Set("textAlign", "left")
}

func (r *Renderer) renderTip(s game.Snapshot) {
	tip, alpha, ok := scene.TutorialTip(s)
	if !ok {
		return
	}
	ctx := r.Ctx
	y := r.height * 0.78
	ctx.Set("globalAlpha", alpha)
	ctx.Set("fillStyle", Theme.PanelColor)
	ctx.Call("fillRect", r.width/2-170, y-24, 340, 36)
	r.text(tip, r.width/2, y, Theme.SmallFont, Theme.TextColor, "center")
	ctx.Set("globalAlpha", 1)
}

func (r *Renderer) renderBanner() {
	b := r.Effects.Banner
	if b.Life <= 0 {
		return
	}
	r.Ctx.Set("globalAlpha", math.Min(1, b.Life*2))
	r.text(b.Text, r.width/2, r.height/3, Theme.BannerFont, Theme.LevelUpColor, "center")
	r.Ctx.Set("globalAlpha", 1)
	r.Ctx.Set("textAlign", "left")
}

func (r *Renderer) panel() {
	r.Ctx.Set("fillStyle", Theme.PanelColor)
	r.Ctx.Call("fillRect", 0, 0, r.width, r.height)
}

func (r *Renderer) renderTitle(s game.Snapshot) {
	r.panel()
	cx := r.width / 2
	r.text("FLAPPY DUNK", cx, r.height/4, Theme.TitleFont, Theme.TextColor, "center")

	selected := r.Selected()
	y := r.height/4 + 60
	for i, mode := range game.Modes {
		color := Theme.UnselectedText
		label := strconv.Itoa(i+1) + "  " + scene.ModeLabels[mode]
		if mode == selected {
			color = Theme.SelectedColor
			label = "> " + label + " <"
		}
		r.text(label, cx, y, Theme.HUDFont, color, "center")
		y += 34
	}
	r.text("Tap, click or press Space to start", cx, y+10, Theme.SmallFont, Theme.TextColor, "center")
	r.renderBoard(selected, y+50)
	r.Ctx.Set("textAlign", "left")
}

func (r *Renderer) renderGameOver(s game.Snapshot) {
	r.panel()
	cx := r.width / 2
	headline, details := scene.GameOverLines(s)
	color := Theme.FailureColor
	if s.Outcome == game.OutcomeSuccess {
		color = Theme.SuccessColor
	}
	r.text(headline, cx, r.height/4, Theme.TitleFont, color, "center")
	y := r.height/4 + 50
	for _, line := range details {
		r.text(line, cx, y, Theme.HUDFont, Theme.TextColor, "center")
		y += 32
	}
	r.renderBoard(s.Mode, y+10)
	r.Ctx.Set("textAlign", "left")
}

// renderBoard lists the top five stored scores of mode.
func (r *Renderer) renderBoard(mode game.Mode, y float64) {
	entries := r.Board(mode)
	if len(entries) == 0 {
		return
	}
	cx := r.width / 2
	r.text(scene.ModeLabels[mode]+" leaderboard", cx, y, Theme.SmallFont, Theme.SelectedColor, "center")
	if len(entries) > 5 {
		entries = entries[:5]
	}
	for i, e := range entries {
		y += 22
		line := strconv.Itoa(i+1) + ". " + strconv.Itoa(e.Score) + "  " + e.Date.Local().Format("2006-01-02")
		r.text(line, cx, y, Theme.SmallFont, Theme.TextColor, "center")
	}
}

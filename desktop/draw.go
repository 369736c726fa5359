package desktop

import (
	"image/color"
	"math"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/simukka/flappy-dunk/game"
	"github.com/simukka/flappy-dunk/scene"
	"golang.org/x/image/font/basicfont"
)

const (
	glyphW     = 7
	lineHeight = 18
	skyBands   = 32
)

func (a *App) drawScene(screen *ebiten.Image, s game.Snapshot) {
	a.drawSky(screen)

	for _, h := range s.Hoops {
		a.drawRim(screen, h, math.Pi, Palette.RimShadow)
	}
	a.drawBall(screen, s.Player)
	for _, h := range s.Hoops {
		a.drawNet(screen, h)
		a.drawRim(screen, h, 0, Palette.Rim)
	}
	a.drawEffects(screen)

	switch s.State {
	case game.StateIdle:
		a.drawTitle(screen)
	case game.StatePlaying:
		a.drawHUD(screen, s)
		a.drawWarning(screen, s)
		a.drawTip(screen, s)
		a.drawBanner(screen)
	case game.StateTerminated:
		a.drawHUD(screen, s)
		a.drawGameOver(screen, s)
	}

	if a.showStats {
		a.drawStats(screen, s)
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

func (a *App) drawSky(screen *ebiten.Image) {
	w, h := float32(a.field.Width), float32(a.field.Height)
	band := h / skyBands
	for i := 0; i < skyBands; i++ {
		t := float64(i) / (skyBands - 1)
		c := color.RGBA{
			R: lerp(Palette.SkyTop.R, Palette.SkyBottom.R, t),
			G: lerp(Palette.SkyTop.G, Palette.SkyBottom.G, t),
			B: lerp(Palette.SkyTop.B, Palette.SkyBottom.B, t),
			A: 0xff,
		}
		vector.DrawFilledRect(screen, 0, float32(i)*band, w, band+1, c, false)
	}

	span := a.field.Width + 200
	for i := 0; i < 3; i++ {
		x := math.Mod(float64(i)*300-a.clouds, span)
		if x < 0 {
			x += span
		}
		x -= 100
		y := float32(50 + i*80)
		for j := 0; j < 3; j++ {
			vector.DrawFilledCircle(screen, float32(x)+float32(j*30), y, 30, Palette.Cloud, true)
		}
	}

	vector.DrawFilledRect(screen, 0, h-20, w, 20, Palette.Grass, false)
	vector.DrawFilledRect(screen, 0, h-8, w, 8, Palette.Ground, false)
}

func (a *App) drawBall(screen *ebiten.Image, p game.Player) {
	cx, cy := float32(p.X+p.W/2), float32(p.Y+p.H/2)
	r := float32(math.Min(p.W, p.H) / 2)
	fill, line := Palette.Ball, Palette.BallLine
	if !p.Alive {
		fill, line = fade(fill, 0.5), fade(line, 0.5)
	}
	vector.DrawFilledCircle(screen, cx, cy, r, fill, true)
	vector.StrokeCircle(screen, cx, cy, r, 2, line, true)

	sin, cos := math.Sincos(p.Rotation)
	dx, dy := float32(cos)*r, float32(sin)*r
	vector.StrokeLine(screen, cx-dx, cy-dy, cx+dx, cy+dy, 2, line, true)
	vector.StrokeLine(screen, cx+dy, cy-dx, cx-dy, cy+dx, 2, line, true)
}

// rimPoint rotates an offset from the hoop centre by the swing angle.
func rimPoint(h game.Hoop, dx, dy float64) (float32, float32) {
	sin, cos := math.Sincos(h.Rotation)
	cx, cy := h.X+h.W/2, h.Y+h.H/2
	return float32(cx + dx*cos - dy*sin), float32(cy + dx*sin + dy*cos)
}

// drawRim draws half of the rim ellipse starting at angle start.
func (a *App) drawRim(screen *ebiten.Image, h game.Hoop, start float64, c color.RGBA) {
	rx, ry := h.W/2-4, h.H/6
	const segments = 12
	px, py := rimPoint(h, rx*math.Cos(start), ry*math.Sin(start))
	for i := 1; i <= segments; i++ {
		t := start + math.Pi*float64(i)/segments
		x, y := rimPoint(h, rx*math.Cos(t), ry*math.Sin(t))
		vector.StrokeLine(screen, px, py, x, y, 5, c, true)
		px, py = x, y
	}
}

func (a *App) drawNet(screen *ebiten.Image, h game.Hoop) {
	for i := 0; i <= 5; i++ {
		dx := -h.W/2 + 6 + float64(i)*(h.W-12)/5
		x0, y0 := rimPoint(h, dx, 0)
		x1, y1 := rimPoint(h, dx*0.6, h.H/2-2)
		vector.StrokeLine(screen, x0, y0, x1, y1, 1.5, Palette.Net, true)
	}
}

func (a *App) drawEffects(screen *ebiten.Image) {
	for _, n := range a.fx.Nets.Slice() {
		c := fade(Palette.Net, n.Life)
		for i := 0; i < 6; i++ {
			x := n.X + float64(i)*n.W/5
			wave := math.Sin(n.Phase+float64(i)*0.5) * n.Amplitude
			vector.StrokeLine(screen, float32(x), float32(n.Y), float32(x+wave), float32(n.Y+n.H), 1.5, c, true)
		}
	}
	for _, p := range a.fx.Particles.Slice() {
		c := fade(Palette.Particles[p.Tint%len(Palette.Particles)], p.Life)
		vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Size), c, true)
	}
	for _, f := range a.fx.Flashes.Slice() {
		vector.DrawFilledCircle(screen, float32(f.X), float32(f.Y), float32(f.Radius), fade(Palette.Flash, f.Alpha*0.4), true)
	}
	for _, p := range a.fx.Popups.Slice() {
		label := "+" + strconv.Itoa(p.Points)
		drawHeadline(screen, a.faces.banner, label, p.X, p.Y, fade(Palette.Popup, p.Life))
	}
}

// drawText draws s with a drop shadow, optionally centred on x.
func drawText(screen *ebiten.Image, s string, x, y float64, c color.RGBA, centered bool) {
	if centered {
		x -= float64(len(s)*glyphW) / 2
	}
	text.Draw(screen, s, basicfont.Face7x13, int(x)+1, int(y)+1, fade(Palette.Shadow, float64(c.A)/255))
	text.Draw(screen, s, basicfont.Face7x13, int(x), int(y), c)
}

func (a *App) drawHUD(screen *ebiten.Image, s game.Snapshot) {
	y := 24.0
	for _, line := range scene.HUDLines(s) {
		drawText(screen, line, 16, y, Palette.Text, false)
		y += lineHeight
	}
	if a.muted() {
		drawText(screen, "MUTED [M]", a.field.Width-80, a.field.Height-32, Palette.Text, false)
	}
}

func (a *App) drawWarning(screen *ebiten.Image, s game.Snapshot) {
	msg, alpha, ok := scene.ChancesWarning(s)
	if !ok {
		return
	}
	c := fade(Palette.Warning, alpha)
	drawText(screen, msg, a.field.Width/2, 40, c, true)
	if scene.LastChance(s) {
		vector.StrokeCircle(screen, float32(a.field.Width/2), 36, 30, 3, c, true)
	}
}

func (a *App) drawTip(screen *ebiten.Image, s game.Snapshot) {
	tip, alpha, ok := scene.TutorialTip(s)
	if !ok {
		return
	}
	y := a.field.Height * 0.78
	w := float32(len(tip)*glyphW + 40)
	vector.DrawFilledRect(screen, float32(a.field.Width/2)-w/2, float32(y)-22, w, 32, fade(Palette.Panel, alpha), false)
	drawText(screen, tip, a.field.Width/2, y, fade(Palette.Text, alpha), true)
}

func (a *App) drawBanner(screen *ebiten.Image) {
	b := a.fx.Banner
	if b.Life <= 0 {
		return
	}
	drawHeadline(screen, a.faces.banner, b.Text, a.field.Width/2, a.field.Height/3, fade(Palette.LevelUp, b.Life*2))
}

func (a *App) drawPanel(screen *ebiten.Image) {
	vector.DrawFilledRect(screen, 0, 0, float32(a.field.Width), float32(a.field.Height), Palette.Panel, false)
}

func (a *App) drawTitle(screen *ebiten.Image) {
	a.drawPanel(screen)
	cx := a.field.Width / 2
	y := a.field.Height / 4
	drawHeadline(screen, a.faces.title, "FLAPPY DUNK", cx, y, Palette.Text)

	selected := a.core.Selected()
	y += 40
	for i, mode := range game.Modes {
		c := Palette.Dim
		label := strconv.Itoa(i+1) + "  " + scene.ModeLabels[mode]
		if mode == selected {
			c = Palette.Selected
			label = "> " + label + " <"
		}
		drawText(screen, label, cx, y, c, true)
		y += 24
	}
	drawText(screen, "Click or press Space to start, D for autopilot", cx, y+10, Palette.Text, true)
	a.drawBoard(screen, selected, y+40)
}

func (a *App) drawGameOver(screen *ebiten.Image, s game.Snapshot) {
	a.drawPanel(screen)
	cx := a.field.Width / 2
	headline, details := scene.GameOverLines(s)
	c := Palette.Failure
	if s.Outcome == game.OutcomeSuccess {
		c = Palette.Success
	}
	y := a.field.Height / 4
	drawHeadline(screen, a.faces.title, headline, cx, y, c)
	y += 36
	for _, line := range details {
		drawText(screen, line, cx, y, Palette.Text, true)
		y += 22
	}
	a.drawBoard(screen, s.Mode, y+10)
}

// drawBoard lists the top five stored scores of mode.
func (a *App) drawBoard(screen *ebiten.Image, mode game.Mode, y float64) {
	entries := a.board(mode)
	if len(entries) == 0 {
		return
	}
	cx := a.field.Width / 2
	drawText(screen, scene.ModeLabels[mode]+" leaderboard", cx, y, Palette.Selected, true)
	for i, e := range entries[:min(5, len(entries))] {
		y += lineHeight
		line := strconv.Itoa(i+1) + ". " + strconv.Itoa(e.Score) + "  " + e.Date.Local().Format("2006-01-02")
		drawText(screen, line, cx, y, Palette.Text, true)
	}
}

func (a *App) drawStats(screen *ebiten.Image, s game.Snapshot) {
	p := s.Player
	vector.StrokeRect(screen, float32(p.X), float32(p.Y), float32(p.W), float32(p.H), 1, Palette.Hitbox, false)
	for _, h := range s.Hoops {
		c := Palette.Failure
		if h.Missed {
			c = Palette.Dim
		}
		vector.StrokeRect(screen, float32(h.X), float32(h.Y), float32(h.W), float32(h.H), 1, c, false)
	}

	x := a.field.Width - 200
	lines := []string{
		"TPS " + strconv.FormatFloat(ebiten.ActualTPS(), 'f', 1, 64) + "  FPS " + strconv.FormatFloat(ebiten.ActualFPS(), 'f', 1, 64),
		"state " + s.State.String() + "  run " + strconv.Itoa(s.Run),
		"tick " + strconv.FormatUint(s.Tick, 10),
		"speed " + strconv.FormatFloat(s.Speed, 'f', 1, 64),
		"hoops " + strconv.Itoa(len(s.Hoops)) + "  particles " + strconv.Itoa(a.fx.Particles.Len()),
		"vy " + strconv.FormatFloat(p.VY, 'f', 1, 64),
	}
	vector.DrawFilledRect(screen, float32(x-8), 8, 196, float32(len(lines)*lineHeight+10), Palette.Panel, false)
	y := 24.0
	for _, l := range lines {
		drawText(screen, l, x, y, Palette.Hitbox, false)
		y += lineHeight
	}
}

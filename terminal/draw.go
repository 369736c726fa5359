package terminal

import (
	"strconv"

	"github.com/gdamore/tcell/v2"
	"github.com/simukka/flappy-dunk/game"
	"github.com/simukka/flappy-dunk/scene"
)

// draw renders the latest snapshot onto the screen.
func (a *App) draw() {
	s := a.screen
	snap := a.snap
	s.Clear()
	w, h := s.Size()
	v := NewView(snap.Field, w, h)

	for x := 0; x < w; x++ {
		s.SetContent(x, h-1, '=', nil, Theme.Ground)
	}
	for _, p := range a.fx.Particles.Slice() {
		if col, row := v.Cell(p.X, p.Y); v.Contains(col, row) {
			s.SetContent(col, row, '*', nil, Theme.Spark)
		}
	}
	for _, hoop := range snap.Hoops {
		drawHoop(s, v, hoop)
	}
	drawBall(s, v, snap.Player)
	for _, p := range a.fx.Popups.Slice() {
		col, row := v.Cell(p.X, p.Y)
		drawCentered(s, col, row, "+"+strconv.Itoa(p.Points), Theme.Popup)
	}

	switch snap.State {
	case game.StateIdle:
		a.drawTitle(w, h)
	case game.StatePlaying:
		a.drawHUD(w, h)
		if msg, _, ok := scene.ChancesWarning(snap); ok {
			st := Theme.Text
			if scene.LastChance(snap) {
				st = Theme.Warning
			}
			drawCentered(s, w/2, 1, msg, st)
		}
		if tip, _, ok := scene.TutorialTip(snap); ok {
			drawCentered(s, w/2, h*3/4, tip, Theme.Text)
		}
		if b := a.fx.Banner; b.Life > 0 {
			drawCentered(s, w/2, h/3, b.Text, Theme.Banner)
		}
	case game.StateTerminated:
		a.drawHUD(w, h)
		a.drawGameOver(w, h)
	}
	s.Show()
}

// drawHoop draws the rim as a bar and the net narrowing below it.
func drawHoop(s tcell.Screen, v View, hoop game.Hoop) {
	left, top := v.Cell(hoop.X, hoop.Y)
	right, bottom := v.Cell(hoop.X+hoop.W, hoop.Y+hoop.H)
	rim := Theme.Rim
	if hoop.Missed {
		rim = Theme.RimMiss
	}
	for col := left; col <= right; col++ {
		ch := '='
		switch col {
		case left:
			ch = '('
		case right:
			ch = ')'
		}
		if v.Contains(col, top) {
			s.SetContent(col, top, ch, nil, rim)
		}
	}
	for row := top + 1; row <= bottom; row++ {
		inset := row - top
		l, r := left+inset, right-inset
		if l >= r {
			break
		}
		if v.Contains(l, row) {
			s.SetContent(l, row, '\\', nil, Theme.Net)
		}
		if v.Contains(r, row) {
			s.SetContent(r, row, '/', nil, Theme.Net)
		}
	}
}

func drawBall(s tcell.Screen, v View, p game.Player) {
	col, row := v.Cell(p.X+p.W/2, p.Y+p.H/2)
	if !v.Contains(col, row) {
		return
	}
	if p.Alive {
		s.SetContent(col, row, '@', nil, Theme.Ball)
		return
	}
	s.SetContent(col, row, 'x', nil, Theme.BallDead)
}

func (a *App) drawHUD(w, h int) {
	for i, line := range scene.HUDLines(a.snap) {
		drawText(a.screen, 1, i, line, Theme.Text)
	}
	if a.bell.Muted {
		drawText(a.screen, w-8, h-2, "[muted]", Theme.Dim)
	}
	if a.demo {
		drawText(a.screen, w-8, 0, "[demo]", Theme.Dim)
	}
}

func (a *App) drawTitle(w, h int) {
	s := a.screen
	y := h / 4
	drawCentered(s, w/2, y, "FLAPPY DUNK", Theme.Banner)
	y += 2
	selected := a.core.Selected()
	for i, mode := range game.Modes {
		label := strconv.Itoa(i+1) + "  " + scene.ModeLabels[mode]
		st := Theme.Dim
		if mode == selected {
			label = "> " + label + " <"
			st = Theme.Selected
		}
		drawCentered(s, w/2, y, label, st)
		y++
	}
	y++
	drawCentered(s, w/2, y, "Space to start, D for autopilot, Q to quit", Theme.Text)
	a.drawBoard(w, y+2, selected)
}

func (a *App) drawGameOver(w, h int) {
	s := a.screen
	headline, details := scene.GameOverLines(a.snap)
	st := Theme.Failure
	if a.snap.Outcome == game.OutcomeSuccess {
		st = Theme.Success
	}
	y := h / 4
	drawCentered(s, w/2, y, headline, st)
	y += 2
	for _, line := range details {
		drawCentered(s, w/2, y, line, Theme.Text)
		y++
	}
	a.drawBoard(w, y+1, a.snap.Mode)
}

// drawBoard lists the top five stored scores of mode.
func (a *App) drawBoard(w, y int, mode game.Mode) {
	if a.store == nil {
		return
	}
	entries := a.store.Top(mode)
	if len(entries) == 0 {
		return
	}
	drawCentered(a.screen, w/2, y, scene.ModeLabels[mode]+" leaderboard", Theme.Selected)
	for i, e := range entries[:min(5, len(entries))] {
		y++
		line := strconv.Itoa(i+1) + ". " + strconv.Itoa(e.Score) + "  " + e.Date.Local().Format("2006-01-02")
		drawCentered(a.screen, w/2, y, line, Theme.Text)
	}
}

package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	sfx "github.com/simukka/flappy-dunk/audio"
	"github.com/simukka/flappy-dunk/game"
)

var tapKeys = []ebiten.Key{ebiten.KeySpace, ebiten.KeyArrowUp, ebiten.KeyW, ebiten.KeyX, ebiten.KeyEnter}

var modeKeys = map[ebiten.Key]game.Mode{
	ebiten.KeyDigit1:  game.ModeClassic,
	ebiten.KeyDigit2:  game.ModeTime,
	ebiten.KeyDigit3:  game.ModeChallenge,
	ebiten.KeyNumpad1: game.ModeClassic,
	ebiten.KeyNumpad2: game.ModeTime,
	ebiten.KeyNumpad3: game.ModeChallenge,
}

func (a *App) tapped() bool {
	for _, k := range tapKeys {
		if inpututil.IsKeyJustPressed(k) {
			return true
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(inpututil.AppendJustPressedTouchIDs(nil)) > 0
}

func (a *App) handleInput() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if a.tapped() {
		a.core.Tap()
	}
	for key, mode := range modeKeys {
		if inpututil.IsKeyJustPressed(key) {
			if err := a.core.SelectMode(mode); err != nil {
				a.log.Warnf("Select mode: %v", err)
			}
			if a.sounds != nil {
				a.sounds.PlaySound(sfx.SoundClick)
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && a.sounds != nil {
		a.log.Infof("Muted: %v", a.sounds.ToggleMute())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		a.demo = !a.demo
		a.log.Infof("Autopilot: %v", a.demo)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF10) {
		a.showStats = !a.showStats
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	return nil
}

package web

import (
	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/flappy-dunk/audio"
	"github.com/simukka/flappy-dunk/game"
)

// Action is a control resolved from a raw key code.
type Action int

const (
	ActionNone Action = iota
	ActionTap
	ActionClassic
	ActionTime
	ActionChallenge
	ActionMute
	ActionStats
	ActionFullscreen
	ActionDemo
)

// KeyMap maps browser key codes to actions.
var KeyMap = map[int]Action{
	13:  ActionTap,        // Enter
	32:  ActionTap,        // Space
	38:  ActionTap,        // Up
	87:  ActionTap,        // W
	88:  ActionTap,        // X
	49:  ActionClassic,    // 1
	50:  ActionTime,       // 2
	51:  ActionChallenge,  // 3
	97:  ActionClassic,    // Numpad 1
	98:  ActionTime,       // Numpad 2
	99:  ActionChallenge,  // Numpad 3
	77:  ActionMute,       // M
	121: ActionStats,      // F10
	70:  ActionFullscreen, // F
	68:  ActionDemo,       // D
}

// TranslateKeyCode resolves a key code to its action.
func TranslateKeyCode(keyCode int) Action {
	return KeyMap[keyCode]
}

// ModeFor returns the mode a selection action picks.
func ModeFor(a Action) (game.Mode, bool) {
	switch a {
	case ActionClassic:
		return game.ModeClassic, true
	case ActionTime:
		return game.ModeTime, true
	case ActionChallenge:
		return game.ModeChallenge, true
	}
	return "", false
}

// Dispatch applies an action to the app. It reports whether the action was
// handled so the browser default can be suppressed.
func (a *App) Dispatch(action Action) bool {
	if mode, ok := ModeFor(action); ok {
		if err := a.Game.SelectMode(mode); err != nil {
			a.Log.Warnf("Select mode: %v", err)
		}
		a.Audio.PlaySound(audio.SoundClick)
		return true
	}
	switch action {
	case ActionTap:
		a.Tap()
	case ActionMute:
		muted := a.Audio.ToggleMute()
		a.Log.Infof("Muted: %v", muted)
	case ActionStats:
		a.Stats.Toggle()
	case ActionFullscreen:
		requestFullscreen(a.Canvas)
	case ActionDemo:
		a.Demo = !a.Demo
		a.Log.Infof("Autopilot: %v", a.Demo)
	default:
		return false
	}
	return true
}

// SetupInputHandlers registers keyboard, mouse and touch handlers.
func (a *App) SetupInputHandlers() {
	doc := js.Global.Get("document")

	doc.Call("addEventListener", "keydown", func(event *js.Object) {
		if event.Get("repeat").Bool() {
			return
		}
		if a.Dispatch(TranslateKeyCode(event.Get("keyCode").Int())) {
			event.Call("preventDefault")
		}
	})

	a.Canvas.Call("addEventListener", "mousedown", func(event *js.Object) {
		a.Tap()
	})

	a.Canvas.Call("addEventListener", "touchstart", func(event *js.Object) {
		event.Call("preventDefault")
		a.Tap()
	}, js.M{"passive": false})
}

func requestFullscreen(canvas *js.Object) {
	for _, method := range []string{"requestFullscreen", "webkitRequestFullscreen", "mozRequestFullScreen"} {
		fn := canvas.Get(method)
		if fn != nil && fn != js.Undefined {
			canvas.Call(method)
			return
		}
	}
}

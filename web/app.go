// Package web is the browser front-end: a canvas renderer, Web Audio
// sounds and localStorage leaderboards around the game core.
package web

import (
	"fmt"
	"time"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/flappy-dunk/audio"
	"github.com/simukka/flappy-dunk/common"
	"github.com/simukka/flappy-dunk/game"
	"github.com/simukka/flappy-dunk/scene"
)

// FrameDuration is the minimum time between two core updates in
// milliseconds.
const FrameDuration = float64(game.FrameDuration) / float64(time.Millisecond)

// maxStep caps the elapsed time fed to the core after a stalled tab.
const maxStep = 250 * time.Millisecond

// Options configure the browser app.
type Options struct {
	Tuning         game.Tuning
	Seed           uint32
	LeaderboardURL string // Empty keeps scores local
	LogLevel       common.Level
	Audio          audio.Config
}

// App owns the canvas, the core and every browser collaborator.
type App struct {
	Canvas   *js.Object
	Ctx      *js.Object
	Game     *game.Game
	Renderer *Renderer
	Audio    *audio.Manager
	Store    *LocalStore
	Stats    *StatsOverlay
	Log      common.Logger

	// Demo lets the autopilot fly.
	Demo      bool
	Autopilot game.Autopilot

	LastFrameTime    float64
	AnimationFrameID int
	audioReady       bool
}

// NewApp wires the core to the canvas.
func NewApp(canvas, ctx *js.Object, opts Options) (*App, error) {
	log := NewConsoleLogger(opts.LogLevel)

	kv, ok := OpenLocalStorage()
	var store *LocalStore
	if ok {
		store = NewLocalStore(kv, opts.LeaderboardURL, log)
	} else {
		log.Warnf("localStorage unavailable, scores will not survive a reload")
		store = NewLocalStore(MemoryKV{}, opts.LeaderboardURL, log)
	}

	stats := NewStatsOverlay(opts.Tuning.Field.Width)
	fx := scene.NewEffects(common.NewSeededRNG(opts.Seed^0x9e3779b9), len(Theme.ParticleColors))
	renderer := NewRenderer(ctx, opts.Tuning, fx, stats)
	manager := audio.NewManager(opts.Audio, log)

	g, err := game.New(opts.Tuning,
		game.WithSeed(opts.Seed),
		game.WithRenderer(renderer),
		game.WithSound(manager),
		game.WithStore(store),
		game.WithClock(IntervalClock{}),
		game.WithLogger(log),
	)
	if err != nil {
		return nil, fmt.Errorf("new app: %w", err)
	}

	renderer.Selected = g.Selected
	renderer.Board = store.Top
	renderer.Muted = manager.Muted

	a := &App{
		Canvas:    canvas,
		Ctx:       ctx,
		Game:      g,
		Renderer:  renderer,
		Audio:     manager,
		Store:     store,
		Stats:     stats,
		Log:       log,
		Autopilot: game.Autopilot{Margin: 8},
	}
	return a, nil
}

// Start installs input handlers and begins the animation loop.
func (a *App) Start() {
	a.SetupInputHandlers()
	a.Log.Infof("Flappy Dunk started, seed %d", a.Game.Seed())
	a.AnimationFrameID = js.Global.Call("requestAnimationFrame", a.GameLoopRAF).Int()
}

// Stop cancels the animation loop.
func (a *App) Stop() {
	js.Global.Call("cancelAnimationFrame", a.AnimationFrameID)
}

// Tap forwards the primary input and unlocks audio on the first gesture.
func (a *App) Tap() {
	a.unlockAudio()
	a.Game.Tap()
}

func (a *App) unlockAudio() {
	if !a.audioReady {
		a.audioReady = a.Audio.Init()
	}
	a.Audio.Resume()
}

// GameLoopRAF is the main game loop using requestAnimationFrame.
func (a *App) GameLoopRAF(currentTime float64) {
	a.AnimationFrameID = js.Global.Call("requestAnimationFrame", a.GameLoopRAF).Int()

	a.Stats.UpdateFPS(currentTime)

	delta := currentTime - a.LastFrameTime
	if delta < FrameDuration {
		return
	}
	a.LastFrameTime = currentTime

	elapsed := time.Duration(delta * float64(time.Millisecond))
	if elapsed > maxStep {
		elapsed = maxStep
	}
	a.Step(elapsed)
}

// Step runs one core update, letting the autopilot act first in demo mode.
func (a *App) Step(elapsed time.Duration) {
	if a.Demo && a.Game.State() == game.StatePlaying && a.Autopilot.Decide(a.Game.Snapshot()) {
		a.Game.PrimaryAction()
	}
	a.Game.Update(elapsed)
}

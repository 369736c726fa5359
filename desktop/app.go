// Package desktop runs the game in an Ebiten window.
package desktop

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/simukka/flappy-dunk/common"
	"github.com/simukka/flappy-dunk/game"
	"github.com/simukka/flappy-dunk/leaderboard"
	"github.com/simukka/flappy-dunk/scene"
)

// demoRestartDelay is how many ticks the autopilot waits on menu screens.
const demoRestartDelay = 120

// Options configure the desktop app.
type Options struct {
	Tuning game.Tuning
	Seed   uint32
	Mode   game.Mode
	Demo   bool
	Store  *leaderboard.FileStore
	Sounds *Sounds // nil plays nothing
	Log    common.Logger
}

// App implements ebiten.Game around the core. The core is stepped once per
// Ebiten tick with the nominal frame duration.
type App struct {
	core      *game.Game
	snap      game.Snapshot
	fx        *scene.Effects
	faces     faces
	sounds    *Sounds
	store     *leaderboard.FileStore
	log       common.Logger
	autopilot game.Autopilot
	demo      bool
	idle      int
	showStats bool
	field     game.FieldTuning
	clouds    float64
}

var _ ebiten.Game = (*App)(nil)

// NewApp wires the core to the window.
func NewApp(opts Options) (*App, error) {
	if opts.Log == nil {
		opts.Log = common.Nop
	}
	a := &App{
		fx:        scene.NewEffects(common.NewSeededRNG(opts.Seed^0x9e3779b9), len(Palette.Particles)),
		sounds:    opts.Sounds,
		store:     opts.Store,
		log:       opts.Log,
		autopilot: game.Autopilot{Margin: 8},
		demo:      opts.Demo,
		field:     opts.Tuning.Field,
	}

	fonts, err := loadFaces()
	if err != nil {
		return nil, fmt.Errorf("new desktop app: %w", err)
	}
	a.faces = fonts

	gameOpts := []game.Option{
		game.WithSeed(opts.Seed),
		game.WithRenderer(game.RendererFunc(a.capture)),
		game.WithLogger(opts.Log),
	}
	if opts.Sounds != nil {
		gameOpts = append(gameOpts, game.WithSound(opts.Sounds))
	}
	if opts.Store != nil {
		gameOpts = append(gameOpts, game.WithStore(opts.Store))
	}
	core, err := game.New(opts.Tuning, gameOpts...)
	if err != nil {
		return nil, fmt.Errorf("new desktop app: %w", err)
	}
	a.core = core
	if opts.Mode != "" {
		if err := core.SelectMode(opts.Mode); err != nil {
			return nil, err
		}
	}
	a.snap = core.Snapshot()
	return a, nil
}

// capture keeps the latest snapshot for Draw and feeds the effects.
func (a *App) capture(s game.Snapshot) {
	a.snap = s
	a.fx.Observe(s)
	a.fx.Step()
	if s.State == game.StatePlaying {
		a.clouds += s.Speed * 0.5
	}
}

// Update handles input and advances the core by one frame.
func (a *App) Update() error {
	if err := a.handleInput(); err != nil {
		return err
	}
	if a.demo && a.core.State() == game.StatePlaying && a.autopilot.Decide(a.snap) {
		a.core.PrimaryAction()
	}
	if a.demo && a.core.State() != game.StatePlaying {
		a.idle++
		if a.idle >= demoRestartDelay {
			a.idle = 0
			a.core.Tap()
		}
	}
	a.core.Update(game.FrameDuration)
	return nil
}

// Draw renders the latest snapshot.
func (a *App) Draw(screen *ebiten.Image) {
	a.drawScene(screen, a.snap)
}

// Layout keeps the logical screen at the field size.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(a.field.Width), int(a.field.Height)
}

func (a *App) board(mode game.Mode) []leaderboard.Entry {
	if a.store == nil {
		return nil
	}
	return a.store.Top(mode)
}

func (a *App) muted() bool {
	return a.sounds != nil && a.sounds.Muted()
}

package terminal

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/simukka/flappy-dunk/common"
	"github.com/simukka/flappy-dunk/game"
	"github.com/simukka/flappy-dunk/leaderboard"
	"github.com/simukka/flappy-dunk/scene"
)

// demoRestartDelay is how many ticks the autopilot waits on menu screens.
const demoRestartDelay = 90

// Options configure the terminal app.
type Options struct {
	Tuning game.Tuning
	Seed   uint32
	Mode   game.Mode
	Demo   bool
	Muted  bool
	Store  *leaderboard.FileStore
	Log    common.Logger
}

// Bell rings the terminal bell for the loud sound events.
type Bell struct {
	screen tcell.Screen
	Muted  bool
}

// PlaySound beeps on failures and level-ups; the other sounds are too
// frequent for a bell.
func (b *Bell) PlaySound(s game.Sound) {
	if b.Muted {
		return
	}
	switch s {
	case game.SoundMissFatal, game.SoundLevelUp:
		_ = b.screen.Beep()
	}
}

// App drives the core from a tcell screen. The caller owns the screen's
// Init and Fini.
type App struct {
	screen    tcell.Screen
	core      *game.Game
	snap      game.Snapshot
	fx        *scene.Effects
	bell      *Bell
	store     *leaderboard.FileStore
	log       common.Logger
	autopilot game.Autopilot
	demo      bool
	idle      int
}

// NewApp wires the core to screen.
func NewApp(screen tcell.Screen, opts Options) (*App, error) {
	if opts.Log == nil {
		opts.Log = common.Nop
	}
	a := &App{
		screen:    screen,
		fx:        scene.NewEffects(common.NewSeededRNG(opts.Seed^0x9e3779b9), 1),
		bell:      &Bell{screen: screen, Muted: opts.Muted},
		store:     opts.Store,
		log:       opts.Log,
		autopilot: game.Autopilot{Margin: 8},
		demo:      opts.Demo,
	}

	gameOpts := []game.Option{
		game.WithSeed(opts.Seed),
		game.WithRenderer(game.RendererFunc(a.capture)),
		game.WithSound(a.bell),
		game.WithLogger(opts.Log),
	}
	if opts.Store != nil {
		gameOpts = append(gameOpts, game.WithStore(opts.Store))
	}
	core, err := game.New(opts.Tuning, gameOpts...)
	if err != nil {
		return nil, fmt.Errorf("new terminal app: %w", err)
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

func (a *App) capture(s game.Snapshot) {
	a.snap = s
	a.fx.Observe(s)
	a.fx.Step()
}

// HandleKey applies one key press and reports whether the app should quit.
func (a *App) HandleKey(e *tcell.EventKey) (quit bool) {
	switch e.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp, tcell.KeyEnter:
		a.core.Tap()
		return false
	case tcell.KeyRune:
	default:
		return false
	}

	switch r := e.Rune(); r {
	case 'q', 'Q':
		return true
	case ' ', 'w', 'W', 'x', 'X':
		a.core.Tap()
	case '1', '2', '3':
		mode := game.Modes[r-'1']
		if err := a.core.SelectMode(mode); err != nil {
			a.log.Warnf("Select mode: %v", err)
		}
		a.snap = a.core.Snapshot()
	case 'm', 'M':
		a.bell.Muted = !a.bell.Muted
	case 'd', 'D':
		a.demo = !a.demo
		a.log.Infof("Autopilot: %v", a.demo)
	}
	return false
}

// Tick advances the core by one frame and redraws.
func (a *App) Tick() {
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
	a.draw()
}

// Run polls input and ticks at the nominal frame rate until ctx is done or
// the player quits.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(game.FrameDuration)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				a.screen.Sync()
			case *tcell.EventKey:
				if a.HandleKey(e) {
					return nil
				}
			}
		case <-ticker.C:
			a.Tick()
		}
	}
}

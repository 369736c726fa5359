package game

import (
	"fmt"
	"time"

	"github.com/simukka/flappy-dunk/common"
)

// Game holds the complete state of the core. It is not safe for concurrent
// use: the host drives Update, input and clock callbacks from one goroutine.
type Game struct {
	tuning Tuning

	// Core state
	player  Player
	hoops   *HoopPool
	spawner *Spawner
	scorer  *Scorer

	state      State
	mode       Mode
	selected   Mode
	reason     Reason
	run        int
	tick       uint64
	nextHoopID uint64
	highScore  int
	timeLeft   time.Duration
	countdown  Timer
	lastAward  int
	lastResult *RunResult

	// Per-frame events, reset at the start of every Update
	frameScored  []Hoop
	frameMissed  []Hoop
	frameLevelUp bool

	// Collaborators
	rng      common.Source
	seed     uint32
	renderer Renderer
	sound    SoundPlayer
	store    ScoreStore
	clock    Clock
	ownClock *FrameClock
	log      common.Logger
	now      func() time.Time
}

// Option configures a Game.
type Option func(*Game)

// WithSource sets the random source used for hoop placement.
func WithSource(src common.Source) Option {
	return func(g *Game) { g.rng = src }
}

// WithSeed sets the base seed; run n is seeded with common.RunSeed(seed, n).
func WithSeed(seed uint32) Option {
	return func(g *Game) { g.seed = seed }
}

// WithRenderer sets the frame consumer.
func WithRenderer(r Renderer) Option {
	return func(g *Game) { g.renderer = r }
}

// WithSound sets the sound sink.
func WithSound(s SoundPlayer) Option {
	return func(g *Game) { g.sound = s }
}

// WithStore sets the score store.
func WithStore(s ScoreStore) Option {
	return func(g *Game) { g.store = s }
}

// WithClock sets the clock driving the timed-mode countdown. Without one, the
// game keeps its own FrameClock and advances it from Update.
func WithClock(c Clock) Option {
	return func(g *Game) { g.clock = c }
}

// WithLogger sets the logger.
func WithLogger(l common.Logger) Option {
	return func(g *Game) { g.log = l }
}

// WithNow overrides the wall clock used to timestamp results.
func WithNow(now func() time.Time) Option {
	return func(g *Game) { g.now = now }
}

// New validates the tuning and creates an idle game.
func New(t Tuning, opts ...Option) (*Game, error) {
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	levels := append([]Level(nil), t.Levels...)
	t.Levels = levels

	g := &Game{
		tuning:   t,
		state:    StateIdle,
		mode:     ModeClassic,
		selected: ModeClassic,
		renderer: nopRenderer{},
		sound:    nopSound{},
		store:    nopStore{},
		log:      common.Nop,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = common.NewSeededRNG(g.seed)
	}
	if g.clock == nil {
		g.ownClock = NewFrameClock()
		g.clock = g.ownClock
	}

	g.hoops = NewHoopPool(t.Hoop.Capacity)
	g.spawner = NewSpawner(t.Field, t.Hoop, g.rng)
	g.scorer = NewScorer(t.Scoring, levels)
	g.player = newPlayer(t.Player)
	g.highScore = g.store.HighScore(g.selected)
	return g, nil
}

// State returns the state machine position.
func (g *Game) State() State {
	return g.state
}

// Mode returns the mode of the current or last run.
func (g *Game) Mode() Mode {
	return g.mode
}

// Selected returns the mode the next Tap from idle will start.
func (g *Game) Selected() Mode {
	return g.selected
}

// Tuning returns the validated tuning.
func (g *Game) Tuning() Tuning {
	return g.tuning
}

// Seed returns the base seed.
func (g *Game) Seed() uint32 {
	return g.seed
}

// Result returns the record of the last terminated run.
func (g *Game) Result() (RunResult, bool) {
	if g.lastResult == nil {
		return RunResult{}, false
	}
	return *g.lastResult, true
}

// SelectMode picks the mode for the next start. Ignored while playing.
func (g *Game) SelectMode(mode Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("select mode: unknown mode %q", mode)
	}
	if g.state == StatePlaying {
		return nil
	}
	g.selected = mode
	g.highScore = g.store.HighScore(mode)
	return nil
}

// Start begins a run in mode from idle or after a terminated run. It is a
// no-op while playing.
func (g *Game) Start(mode Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("start: unknown mode %q", mode)
	}
	if g.state == StatePlaying {
		return nil
	}
	g.selected = mode
	g.begin(mode)
	return nil
}

// Restart begins a new run after a terminated one, in the mode picked on the
// game-over screen or else the mode just played.
func (g *Game) Restart() {
	if g.state != StateTerminated {
		return
	}
	g.begin(g.selected)
}

// Abort drops a run in progress and returns to idle. Nothing is persisted and
// no result is recorded. The run number is kept, so the next start still
// advances it.
func (g *Game) Abort() {
	if g.state != StatePlaying {
		return
	}
	g.stopCountdown()
	g.state = StateIdle
	g.log.Infof("run %d aborted: mode=%s score=%d", g.run, g.mode, g.scorer.Score)
}

// PrimaryAction applies the jump impulse while playing.
func (g *Game) PrimaryAction() {
	if g.state != StatePlaying {
		return
	}
	g.player.Jump(g.tuning.Physics)
	g.sound.PlaySound(SoundJump)
}

// Tap is the single-button input: start from idle, jump while playing and
// restart after game over.
func (g *Game) Tap() {
	switch g.state {
	case StateIdle:
		_ = g.Start(g.selected)
	case StatePlaying:
		g.PrimaryAction()
	case StateTerminated:
		g.Restart()
	}
}

// begin resets every piece of run state and enters playing.
func (g *Game) begin(mode Mode) {
	g.stopCountdown()

	g.run++
	g.rng.SetSeed(common.RunSeed(g.seed, g.run))
	g.mode = mode
	g.reason = ReasonNone
	g.tick = 0
	g.lastAward = 0
	g.player = newPlayer(g.tuning.Player)
	g.hoops.Clear()
	g.spawner.Reset()
	g.scorer.Reset()
	g.frameScored = g.frameScored[:0]
	g.frameMissed = g.frameMissed[:0]
	g.frameLevelUp = false
	g.highScore = g.store.HighScore(mode)
	g.timeLeft = 0

	if mode == ModeTime {
		g.timeLeft = g.tuning.Modes.TimeLimit
		g.countdown = g.clock.Every(time.Second, g.countdownTick(g.run))
	}

	g.state = StatePlaying
	g.log.Infof("run %d started: mode=%s seed=%d high=%d", g.run, mode, g.seed, g.highScore)
}

// countdownTick returns the timed-mode callback bound to one run. Callbacks
// from a stale run or after termination do nothing.
func (g *Game) countdownTick(run int) func() {
	return func() {
		if g.run != run || g.state != StatePlaying {
			return
		}
		g.timeLeft -= time.Second
		if g.timeLeft <= 0 {
			g.timeLeft = 0
			g.terminate(ReasonTimeUp)
		}
	}
}

func (g *Game) stopCountdown() {
	if g.countdown != nil {
		g.countdown.Stop()
		g.countdown = nil
	}
}

func (g *Game) target() int {
	if g.mode == ModeChallenge {
		return g.tuning.Modes.ChallengeTarget
	}
	return 0
}

// terminate performs the playing -> terminated transition exactly once per run.
func (g *Game) terminate(reason Reason) {
	if g.state != StatePlaying {
		return
	}
	g.stopCountdown()
	g.state = StateTerminated
	g.reason = reason

	outcome := reason.Outcome()
	if outcome == OutcomeFailure {
		g.player.Alive = false
		g.sound.PlaySound(SoundMissFatal)
	}

	res := RunResult{
		Score:     g.scorer.Score,
		Mode:      g.mode,
		Timestamp: g.now(),
		Outcome:   outcome,
		Reason:    reason,
		Level:     g.scorer.Level,
	}
	g.lastResult = &res
	if res.Score > g.highScore {
		g.highScore = res.Score
	}

	g.log.Infof("run %d ended: %s (%s) score=%d level=%d mode=%s",
		g.run, outcome, reason, res.Score, res.Level+1, res.Mode)

	if err := g.store.PersistRunResult(res); err != nil {
		g.log.Warnf("persist run %d: %v", g.run, err)
	}
}

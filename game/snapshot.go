package game

import "time"

// Snapshot is an immutable copy of everything the presentation may draw.
type Snapshot struct {
	Tick        uint64
	Run         int
	State       State
	Mode        Mode
	Player      Player
	Hoops       []Hoop
	Score       int
	HighScore   int
	Level       int // Difficulty index, 0-based
	Levels      int // Size of the difficulty table
	Speed       float64
	Misses      int
	MaxMissed   int
	TimeLeft    time.Duration // Timed mode only
	Target      int           // Challenge mode only
	Outcome     Outcome
	Reason      Reason
	LastAward   int    // Points of the most recent scoring pass
	ScoredHoops []Hoop // Hoops scored during this frame
	MissedHoops []Hoop // Hoops missed during this frame
	LeveledUp   bool   // Difficulty advanced during this frame
	Field       FieldTuning
}

// Snapshot returns a deep copy of the current state.
func (g *Game) Snapshot() Snapshot {
	hoops := make([]Hoop, 0, g.hoops.Len())
	for _, h := range g.hoops.Slice() {
		hoops = append(hoops, *h)
	}
	return Snapshot{
		Tick:        g.tick,
		Run:         g.run,
		State:       g.state,
		Mode:        g.mode,
		Player:      g.player,
		Hoops:       hoops,
		Score:       g.scorer.Score,
		HighScore:   g.highScore,
		Level:       g.scorer.Level,
		Levels:      len(g.tuning.Levels),
		Speed:       g.scorer.Current().Speed,
		Misses:      g.scorer.Misses,
		MaxMissed:   g.scorer.MaxMissed(),
		TimeLeft:    g.timeLeft,
		Target:      g.target(),
		Outcome:     g.reason.Outcome(),
		Reason:      g.reason,
		LastAward:   g.lastAward,
		ScoredHoops: append([]Hoop(nil), g.frameScored...),
		MissedHoops: append([]Hoop(nil), g.frameMissed...),
		LeveledUp:   g.frameLevelUp,
		Field:       g.tuning.Field,
	}
}

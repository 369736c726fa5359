package game

import "time"

// Renderer consumes one snapshot per frame.
type Renderer interface {
	RenderFrame(Snapshot)
}

// SoundPlayer plays sound events without blocking.
type SoundPlayer interface {
	PlaySound(Sound)
}

// ScoreStore persists finished runs and answers high-score queries. Errors
// are logged by the core and otherwise ignored.
type ScoreStore interface {
	PersistRunResult(RunResult) error
	HighScore(Mode) int
}

// RunResult is the terminal record of one run.
type RunResult struct {
	Score     int       `json:"score"`
	Mode      Mode      `json:"mode"`
	Timestamp time.Time `json:"date"`
	Outcome   Outcome   `json:"-"`
	Reason    Reason    `json:"reason,omitempty"`
	Level     int       `json:"level"`
}

// Success reports whether the run ended on a success terminal.
func (r RunResult) Success() bool {
	return r.Outcome == OutcomeSuccess
}

type nopRenderer struct{}

func (nopRenderer) RenderFrame(Snapshot) {}

type nopSound struct{}

func (nopSound) PlaySound(Sound) {}

type nopStore struct{}

func (nopStore) PersistRunResult(RunResult) error { return nil }
func (nopStore) HighScore(Mode) int               { return 0 }

// RendererFunc adapts a function to Renderer.
type RendererFunc func(Snapshot)

func (f RendererFunc) RenderFrame(s Snapshot) { f(s) }

// SoundFunc adapts a function to SoundPlayer.
type SoundFunc func(Sound)

func (f SoundFunc) PlaySound(s Sound) { f(s) }

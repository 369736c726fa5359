package game

import (
	"fmt"
	"time"
)

// FrameDuration is the nominal frame length hosts step the core with.
const FrameDuration = time.Second / 60

// Mode selects the terminal rules of a run.
type Mode string

const (
	// ModeClassic ends only on failure.
	ModeClassic Mode = "classic"
	// ModeTime adds a countdown; reaching zero ends the run.
	ModeTime Mode = "time"
	// ModeChallenge ends successfully once the target score is reached.
	ModeChallenge Mode = "challenge"
)

// Modes lists every mode in menu order.
var Modes = []Mode{ModeClassic, ModeTime, ModeChallenge}

// Valid reports whether m is a known mode.
func (m Mode) Valid() bool {
	switch m {
	case ModeClassic, ModeTime, ModeChallenge:
		return true
	}
	return false
}

// ParseMode converts a mode name into a Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !m.Valid() {
		return "", fmt.Errorf("unknown game mode %q", s)
	}
	return m, nil
}

// State is the game state machine position.
type State int

const (
	StateIdle State = iota
	StatePlaying
	StateTerminated
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlaying:
		return "playing"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}

// Outcome says whether a terminated run was won or lost.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeFailure
	OutcomeSuccess
)

func (o Outcome) String() string {
	switch o {
	case OutcomeFailure:
		return "failure"
	case OutcomeSuccess:
		return "success"
	default:
		return "none"
	}
}

// Reason names the terminal condition that ended a run.
type Reason string

const (
	ReasonNone          Reason = ""
	ReasonOutOfBounds   Reason = "out-of-bounds"
	ReasonTooManyMisses Reason = "too-many-misses"
	ReasonTimeUp        Reason = "time-up"
	ReasonTargetReached Reason = "target-reached"
)

// Outcome returns the outcome implied by the reason.
func (r Reason) Outcome() Outcome {
	switch r {
	case ReasonNone:
		return OutcomeNone
	case ReasonTargetReached:
		return OutcomeSuccess
	default:
		return OutcomeFailure
	}
}

// Sound is a fire-and-forget sound event.
type Sound string

const (
	SoundJump      Sound = "jump"
	SoundScore     Sound = "score"
	SoundMissFatal Sound = "miss-fatal"
	SoundLevelUp   Sound = "level-up"
)

// HoopKind is the vertical variant of a hoop.
type HoopKind int

const (
	HoopBottom HoopKind = iota
	HoopTop
)

func (k HoopKind) String() string {
	if k == HoopTop {
		return "top"
	}
	return "bottom"
}

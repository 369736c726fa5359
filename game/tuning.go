package game

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed tuning.toml
var defaultTuningTOML []byte

var (
	// ErrNoLevels is returned when the difficulty table is empty.
	ErrNoLevels = errors.New("difficulty table has no levels")
	// ErrInvalidTuning wraps every other tuning validation failure.
	ErrInvalidTuning = errors.New("invalid tuning")
)

// Tuning holds every gameplay constant. It is loaded from TOML and validated
// before the first frame.
type Tuning struct {
	Field   FieldTuning   `toml:"field"`
	Player  PlayerTuning  `toml:"player"`
	Physics PhysicsTuning `toml:"physics"`
	Hoop    HoopTuning    `toml:"hoop"`
	Scoring ScoringTuning `toml:"scoring"`
	Modes   ModeTuning    `toml:"modes"`
	Levels  []Level       `toml:"levels"`
}

// FieldTuning is the playable area. The playable vertical band is [0, Height].
type FieldTuning struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// PlayerTuning places and sizes the player box.
type PlayerTuning struct {
	X      float64 `toml:"x"`
	StartY float64 `toml:"start_y"`
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// PhysicsTuning is in pixels and seconds; FrameUnit is the fixed time step
// applied per frame.
type PhysicsTuning struct {
	Gravity       float64 `toml:"gravity"`
	JumpImpulse   float64 `toml:"jump_impulse"`
	FrameUnit     float64 `toml:"frame_unit"`
	RotationSpeed float64 `toml:"rotation_speed"`
	MaxRotation   float64 `toml:"max_rotation"`
}

// HoopTuning sizes and places spawned hoops.
type HoopTuning struct {
	Width          float64 `toml:"width"`
	Height         float64 `toml:"height"`
	SpawnX         float64 `toml:"spawn_x"`
	BaseOffset     float64 `toml:"base_offset"`
	JitterPerLevel float64 `toml:"jitter_per_level"`
	SwingSpeed     float64 `toml:"swing_speed"`
	MaxSwing       float64 `toml:"max_swing"`
	Capacity       int     `toml:"capacity"`
}

// ScoringTuning drives the scorer.
type ScoringTuning struct {
	Base           int     `toml:"base"`
	BonusFactor    float64 `toml:"bonus_factor"`
	DifficultyStep float64 `toml:"difficulty_step"`
	ComboBonus     int     `toml:"combo_bonus"`
	LevelThreshold int     `toml:"level_threshold"`
	MaxMissed      int     `toml:"max_missed"`
}

// ModeTuning holds the per-mode terminal parameters.
type ModeTuning struct {
	TimeLimit       time.Duration `toml:"time_limit"`
	ChallengeTarget int           `toml:"challenge_target"`
}

// Level is one entry of the difficulty table.
type Level struct {
	Speed         float64       `toml:"speed"`
	SpawnInterval time.Duration `toml:"spawn_interval"`
	Gap           float64       `toml:"gap"`
}

// DefaultTuning returns the embedded tuning.
func DefaultTuning() Tuning {
	var t Tuning
	if _, err := toml.Decode(string(defaultTuningTOML), &t); err != nil {
		panic("game: embedded tuning.toml: " + err.Error())
	}
	return t
}

// ParseTuning overlays data on top of the default tuning and validates the
// result. Keys missing from data keep their default values; a levels table in
// data replaces the default table entirely.
func ParseTuning(data []byte) (Tuning, error) {
	t := DefaultTuning()
	t.Levels = nil
	md, err := toml.Decode(string(data), &t)
	if err != nil {
		return Tuning{}, fmt.Errorf("decode tuning: %w", err)
	}
	if !md.IsDefined("levels") {
		t.Levels = DefaultTuning().Levels
	}
	if err := t.Validate(); err != nil {
		return Tuning{}, err
	}
	return t, nil
}

// LoadTuning reads a TOML tuning file. An empty path yields the defaults.
func LoadTuning(path string) (Tuning, error) {
	if path == "" {
		return DefaultTuning(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Tuning{}, fmt.Errorf("read tuning %s: %w", path, err)
	}
	t, err := ParseTuning(data)
	if err != nil {
		return Tuning{}, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}

// Validate checks the startup preconditions of the core.
func (t Tuning) Validate() error {
	if len(t.Levels) == 0 {
		return ErrNoLevels
	}
	invalid := func(format string, args ...interface{}) error {
		return fmt.Errorf("%w: %s", ErrInvalidTuning, fmt.Sprintf(format, args...))
	}
	switch {
	case t.Field.Width <= 0 || t.Field.Height <= 0:
		return invalid("field size %vx%v must be positive", t.Field.Width, t.Field.Height)
	case t.Player.Width <= 0 || t.Player.Height <= 0:
		return invalid("player size %vx%v must be positive", t.Player.Width, t.Player.Height)
	case t.Player.X < 0:
		return invalid("player x %v must not be negative", t.Player.X)
	case t.Player.StartY < 0 || t.Player.StartY+t.Player.Height > t.Field.Height:
		return invalid("player start y %v lies outside the field", t.Player.StartY)
	case t.Physics.FrameUnit <= 0:
		return invalid("frame unit %v must be positive", t.Physics.FrameUnit)
	case t.Physics.MaxRotation < 0:
		return invalid("max rotation %v must not be negative", t.Physics.MaxRotation)
	case t.Hoop.Width <= 0 || t.Hoop.Height <= 0:
		return invalid("hoop size %vx%v must be positive", t.Hoop.Width, t.Hoop.Height)
	case t.Hoop.Capacity <= 0:
		return invalid("hoop capacity %d must be positive", t.Hoop.Capacity)
	case t.Scoring.LevelThreshold <= 0:
		return invalid("level threshold %d must be positive", t.Scoring.LevelThreshold)
	case t.Scoring.MaxMissed <= 0:
		return invalid("max missed %d must be positive", t.Scoring.MaxMissed)
	case t.Modes.TimeLimit < time.Second:
		return invalid("time limit %v must be at least one second", t.Modes.TimeLimit)
	case t.Modes.ChallengeTarget <= 0:
		return invalid("challenge target %d must be positive", t.Modes.ChallengeTarget)
	}
	for i, lvl := range t.Levels {
		if lvl.Speed <= 0 || lvl.SpawnInterval <= 0 || lvl.Gap < 0 {
			return invalid("level %d: speed %v, interval %v and gap %v out of range",
				i, lvl.Speed, lvl.SpawnInterval, lvl.Gap)
		}
	}
	return nil
}

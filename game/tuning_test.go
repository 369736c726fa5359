package game

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDefaultTuning(t *testing.T) {
	tun := DefaultTuning()

	if tun.Physics.Gravity != 600 || tun.Physics.JumpImpulse != -350 {
		t.Errorf("Expected gravity 600 and jump -350, got %v and %v", tun.Physics.Gravity, tun.Physics.JumpImpulse)
	}
	if len(tun.Levels) != 5 {
		t.Fatalf("Expected 5 levels, got %d", len(tun.Levels))
	}
	if tun.Levels[0].SpawnInterval != 2500*time.Millisecond || tun.Levels[4].Gap != 140 {
		t.Errorf("Unexpected level table %+v", tun.Levels)
	}
	if tun.Modes.TimeLimit != time.Minute || tun.Modes.ChallengeTarget != 100 {
		t.Errorf("Expected 60s and target 100, got %v and %d", tun.Modes.TimeLimit, tun.Modes.ChallengeTarget)
	}
	if err := tun.Validate(); err != nil {
		t.Errorf("Expected defaults to validate, got %v", err)
	}
}

func TestParseTuning_OverlaysDefaults(t *testing.T) {
	tun, err := ParseTuning([]byte(`
[physics]
gravity = 900.0

[modes]
time_limit = "90s"
`))
	if err != nil {
		t.Fatalf("ParseTuning: %v", err)
	}
	if tun.Physics.Gravity != 900 {
		t.Errorf("Expected gravity 900, got %v", tun.Physics.Gravity)
	}
	if tun.Physics.JumpImpulse != -350 {
		t.Errorf("Expected default jump, got %v", tun.Physics.JumpImpulse)
	}
	if tun.Modes.TimeLimit != 90*time.Second {
		t.Errorf("Expected 90s, got %v", tun.Modes.TimeLimit)
	}
	if len(tun.Levels) != 5 {
		t.Errorf("Expected default level table, got %d levels", len(tun.Levels))
	}
}

func TestParseTuning_LevelsReplaceTable(t *testing.T) {
	tun, err := ParseTuning([]byte(`
[[levels]]
speed = 1.0
spawn_interval = "3s"
gap = 200.0
`))
	if err != nil {
		t.Fatalf("ParseTuning: %v", err)
	}
	if len(tun.Levels) != 1 || tun.Levels[0].SpawnInterval != 3*time.Second {
		t.Errorf("Expected the single custom level, got %+v", tun.Levels)
	}
}

func TestParseTuning_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
		want error
	}{
		{"empty level table", "levels = []", ErrNoLevels},
		{"zero threshold", "[scoring]\nlevel_threshold = 0", ErrInvalidTuning},
		{"short time limit", "[modes]\ntime_limit = \"500ms\"", ErrInvalidTuning},
		{"player outside field", "[player]\nstart_y = 590.0", ErrInvalidTuning},
		{"zero speed level", "[[levels]]\nspeed = 0.0\nspawn_interval = \"1s\"\ngap = 100.0", ErrInvalidTuning},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTuning([]byte(tt.data))
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected %v, got %v", tt.want, err)
			}
		})
	}
}

func TestParseTuning_Malformed(t *testing.T) {
	if _, err := ParseTuning([]byte("[physics\ngravity = ")); err == nil {
		t.Error("Expected a decode error")
	}
}

func TestLoadTuning(t *testing.T) {
	if tun, err := LoadTuning(""); err != nil || len(tun.Levels) != 5 {
		t.Errorf("Expected defaults for empty path, got %v", err)
	}

	path := filepath.Join(t.TempDir(), "tuning.toml")
	if err := os.WriteFile(path, []byte("[scoring]\nmax_missed = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	tun, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if tun.Scoring.MaxMissed != 3 {
		t.Errorf("Expected max missed 3, got %d", tun.Scoring.MaxMissed)
	}

	if _, err := LoadTuning(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

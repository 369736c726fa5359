package web

import (
	"testing"

	"github.com/simukka/flappy-dunk/game"
)

func TestTranslateKeyCode(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected Action
	}{
		{"Space taps", 32, ActionTap},
		{"Up taps", 38, ActionTap},
		{"1 selects classic", 49, ActionClassic},
		{"2 selects time", 50, ActionTime},
		{"Numpad 3 selects challenge", 99, ActionChallenge},
		{"M mutes", 77, ActionMute},
		{"F10 toggles stats", 121, ActionStats},
		{"Unknown key does nothing", 999, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TranslateKeyCode(tt.input); got != tt.expected {
				t.Errorf("TranslateKeyCode(%d) = %d, expected %d", tt.input, got, tt.expected)
			}
		})
	}
}

func TestModeFor(t *testing.T) {
	tests := []struct {
		action Action
		mode   game.Mode
		ok     bool
	}{
		{ActionClassic, game.ModeClassic, true},
		{ActionTime, game.ModeTime, true},
		{ActionChallenge, game.ModeChallenge, true},
		{ActionTap, "", false},
	}
	for _, tt := range tests {
		mode, ok := ModeFor(tt.action)
		if mode != tt.mode || ok != tt.ok {
			t.Errorf("ModeFor(%d) = %q, %v; expected %q, %v", tt.action, mode, ok, tt.mode, tt.ok)
		}
	}
}

func TestKeyMap_SelectionKeysCoverEveryMode(t *testing.T) {
	seen := map[game.Mode]bool{}
	for _, action := range KeyMap {
		if mode, ok := ModeFor(action); ok {
			seen[mode] = true
		}
	}
	for _, mode := range game.Modes {
		if !seen[mode] {
			t.Errorf("Expected a key for mode %s", mode)
		}
	}
}

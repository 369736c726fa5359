package web

import (
	"testing"

	"github.com/simukka/flappy-dunk/game"
)

func TestStatsOverlay_UpdateFPS(t *testing.T) {
	s := NewStatsOverlay(800)
	for i := 1; i <= 60; i++ {
		s.UpdateFPS(float64(i) * 1000 / 60)
	}
	if fps := s.FPS(); fps < 59 || fps > 61 {
		t.Errorf("Expected ~60 FPS, got %f", fps)
	}
	if s.fps.frames != 0 {
		t.Errorf("Expected the frame counter reset, got %d", s.fps.frames)
	}
}

func TestStatsOverlay_Toggle(t *testing.T) {
	s := NewStatsOverlay(800)
	if s.Visible {
		t.Fatal("Expected hidden by default")
	}
	s.Toggle()
	if !s.Visible {
		t.Error("Expected visible after toggle")
	}
	if s.X != 520 {
		t.Errorf("Expected panel at x=520, got %f", s.X)
	}
}

func TestStatsOverlay_MissColor(t *testing.T) {
	s := NewStatsOverlay(800)
	tests := []struct {
		misses int
		level  int
	}{
		{0, 0},
		{2, 1},
		{3, 2},
		{4, 3},
		{5, 3},
	}
	for _, tt := range tests {
		snap := game.Snapshot{Misses: tt.misses, MaxMissed: 5}
		if got, want := s.missColor(snap), debugStyle.Gauge[tt.level]; got != want {
			t.Errorf("misses=%d: expected %s, got %s", tt.misses, want, got)
		}
	}
}

package game

import (
	"math"
	"testing"
	"time"

	"github.com/simukka/flappy-dunk/common"
)

func TestHoopAdvance_ScrollsAndSwings(t *testing.T) {
	h := Hoop{X: 100, W: 80, Swing: 0.02}
	maxSwing := math.Pi / 8

	h.Advance(2.5, maxSwing)
	if h.X != 97.5 {
		t.Errorf("Expected x 97.5, got %f", h.X)
	}
	for i := 0; i < 100; i++ {
		h.Advance(0, maxSwing)
		if math.Abs(h.Rotation) > maxSwing+0.02 {
			t.Fatalf("Expected swing within %f, got %f", maxSwing, h.Rotation)
		}
	}
}

func TestHoopGone(t *testing.T) {
	tests := []struct {
		x    float64
		want bool
	}{
		{0, false},
		{-80, false},
		{-80.5, true},
	}
	for _, tt := range tests {
		h := Hoop{X: tt.x, W: 80}
		if got := h.Gone(); got != tt.want {
			t.Errorf("x=%v: expected %v, got %v", tt.x, tt.want, got)
		}
	}
}

func TestSpawner_Timing(t *testing.T) {
	tun := DefaultTuning()
	s := NewSpawner(tun.Field, tun.Hoop, common.NewSeededRNG(1))
	interval := 2 * time.Second

	if !s.Advance(FrameDuration, interval) {
		t.Error("Expected the first advance to spawn")
	}
	if s.Advance(time.Second, interval) {
		t.Error("Expected no spawn after 1s")
	}
	if !s.Advance(time.Second, interval) {
		t.Error("Expected a spawn after 2s")
	}

	s.Reset()
	if !s.Advance(0, interval) {
		t.Error("Expected a spawn right after reset")
	}
}

func TestSpawner_PlaceWithinField(t *testing.T) {
	tun := DefaultTuning()
	s := NewSpawner(tun.Field, tun.Hoop, common.NewSeededRNG(3))

	kinds := map[HoopKind]int{}
	for i := 0; i < 200; i++ {
		lvlIdx := i % len(tun.Levels)
		var h Hoop
		s.Place(&h, uint64(i+1), lvlIdx, tun.Levels[lvlIdx])

		if h.X != tun.Hoop.SpawnX || h.W != tun.Hoop.Width || h.H != tun.Hoop.Height {
			t.Fatalf("Unexpected hoop geometry %+v", h)
		}
		if h.Y < 0 || h.Y+h.H > tun.Field.Height {
			t.Fatalf("Expected hoop inside the field, got y=%f", h.Y)
		}
		if h.Missed {
			t.Fatal("Expected a fresh hoop")
		}
		kinds[h.Kind]++
	}
	if kinds[HoopTop] == 0 || kinds[HoopBottom] == 0 {
		t.Errorf("Expected both kinds, got %v", kinds)
	}
}

func TestSpawner_FirstLevelHasNoJitter(t *testing.T) {
	tun := DefaultTuning()
	s := NewSpawner(tun.Field, tun.Hoop, common.NewSeededRNG(9))
	base := tun.Field.Height - tun.Hoop.BaseOffset

	for i := 0; i < 20; i++ {
		var h Hoop
		s.Place(&h, 1, 0, tun.Levels[0])
		want := base
		if h.Kind == HoopTop {
			want = base - tun.Levels[0].Gap
		}
		if h.Y != want {
			t.Errorf("Expected y %f for %s hoop, got %f", want, h.Kind, h.Y)
		}
	}
}

func TestAutopilot_IdleNeverJumps(t *testing.T) {
	if (Autopilot{}).Decide(Snapshot{State: StateIdle}) {
		t.Error("Expected no jump outside playing")
	}
}

func TestAutopilot_JumpsWhenSinkingBelowHoop(t *testing.T) {
	s := Snapshot{
		State:  StatePlaying,
		Field:  FieldTuning{Width: 800, Height: 600},
		Player: Player{X: 100, Y: 400, W: 40, H: 40, VY: 50},
		Hoops:  []Hoop{{X: 300, Y: 300, W: 80, H: 60}},
	}
	if !(Autopilot{Margin: 5}).Decide(s) {
		t.Error("Expected a jump below the hoop")
	}
	s.Player.Y = 250
	if (Autopilot{Margin: 5}).Decide(s) {
		t.Error("Expected no jump above the hoop")
	}
}

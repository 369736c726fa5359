package web

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/simukka/flappy-dunk/common"
	"github.com/simukka/flappy-dunk/game"
	"github.com/simukka/flappy-dunk/leaderboard"
)

func TestLocalStore_PersistAndReload(t *testing.T) {
	kv := MemoryKV{}
	s := NewLocalStore(kv, "", common.Nop)

	when := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	for _, score := range []int{40, 120, 80} {
		r := game.RunResult{Score: score, Mode: game.ModeTime, Timestamp: when}
		if err := s.PersistRunResult(r); err != nil {
			t.Fatalf("PersistRunResult: %v", err)
		}
	}

	if s.HighScore(game.ModeTime) != 120 {
		t.Errorf("Expected high score 120, got %d", s.HighScore(game.ModeTime))
	}
	if s.HighScore(game.ModeClassic) != 0 {
		t.Errorf("Expected no classic score, got %d", s.HighScore(game.ModeClassic))
	}
	if kv["highScore"] != "120" {
		t.Errorf("Expected highScore key 120, got %q", kv["highScore"])
	}

	reloaded := NewLocalStore(kv, "", common.Nop)
	top := reloaded.Top(game.ModeTime)
	if len(top) != 3 || top[0].Score != 120 || top[2].Score != 40 {
		t.Errorf("Expected reloaded board [120 80 40], got %+v", top)
	}
}

func TestLocalStore_CorruptBoardIgnored(t *testing.T) {
	kv := MemoryKV{"leaderboard_classic": "{not json"}
	s := NewLocalStore(kv, "", common.Nop)
	if len(s.Top(game.ModeClassic)) != 0 {
		t.Error("Expected an empty board after a corrupt entry")
	}
}

func TestLocalStore_ForwardsToRemote(t *testing.T) {
	s := NewLocalStore(MemoryKV{}, "/api/scores", common.Nop)
	var gotURL string
	var gotBody []byte
	s.post = func(url string, body []byte) {
		gotURL, gotBody = url, body
	}

	r := game.RunResult{Score: 55, Mode: game.ModeChallenge, Timestamp: time.Unix(100, 0).UTC()}
	if err := s.PersistRunResult(r); err != nil {
		t.Fatal(err)
	}
	if gotURL != "/api/scores" {
		t.Errorf("Expected post to /api/scores, got %q", gotURL)
	}
	var e leaderboard.Entry
	if err := json.Unmarshal(gotBody, &e); err != nil {
		t.Fatalf("Expected a JSON entry, got %q: %v", gotBody, err)
	}
	if e.Score != 55 || e.Mode != game.ModeChallenge {
		t.Errorf("Unexpected forwarded entry %+v", e)
	}
}

func TestLocalStore_RejectsInvalidMode(t *testing.T) {
	s := NewLocalStore(MemoryKV{}, "", common.Nop)
	if err := s.PersistRunResult(game.RunResult{Score: 1, Mode: "arcade"}); err == nil {
		t.Error("Expected an error for an unknown mode")
	}
}

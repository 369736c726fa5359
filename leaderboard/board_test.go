package leaderboard

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/simukka/flappy-dunk/game"
)

var day = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func entry(score int, mode game.Mode, minute int) Entry {
	return Entry{Score: score, Mode: mode, Date: day.Add(time.Duration(minute) * time.Minute)}
}

func TestBoard_AddRanksBestFirst(t *testing.T) {
	b := NewBoard()

	tests := []struct {
		score int
		want  int
	}{
		{50, 1},
		{80, 1},
		{20, 3},
		{80, 2}, // ties keep the older entry ahead
	}
	for i, tt := range tests {
		rank, err := b.Add(entry(tt.score, game.ModeClassic, i))
		if err != nil {
			t.Fatalf("Add: %v", err)
		}
		if rank != tt.want {
			t.Errorf("Score %d: expected rank %d, got %d", tt.score, tt.want, rank)
		}
	}
	if b.HighScore(game.ModeClassic) != 80 {
		t.Errorf("Expected high score 80, got %d", b.HighScore(game.ModeClassic))
	}
	if b.HighScore(game.ModeTime) != 0 {
		t.Errorf("Expected empty time board, got %d", b.HighScore(game.ModeTime))
	}
}

func TestBoard_KeepsTopTen(t *testing.T) {
	b := NewBoard()
	for i := 1; i <= 15; i++ {
		b.Add(entry(i*10, game.ModeTime, i))
	}

	top := b.Top(game.ModeTime)
	if len(top) != MaxEntries {
		t.Fatalf("Expected %d entries, got %d", MaxEntries, len(top))
	}
	if top[0].Score != 150 || top[MaxEntries-1].Score != 60 {
		t.Errorf("Expected 150..60, got %d..%d", top[0].Score, top[MaxEntries-1].Score)
	}

	rank, err := b.Add(entry(5, game.ModeTime, 99))
	if err != nil || rank != 0 {
		t.Errorf("Expected an unranked entry, got rank %d err %v", rank, err)
	}
}

func TestBoard_CutIdenticalEntryIsUnranked(t *testing.T) {
	b := NewBoard()
	same := entry(50, game.ModeClassic, 0)
	for i := 0; i < MaxEntries; i++ {
		if rank, _ := b.Add(same); rank != i+1 {
			t.Fatalf("Entry %d: expected rank %d, got %d", i, i+1, rank)
		}
	}

	rank, err := b.Add(same)
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if rank != 0 {
		t.Errorf("Expected the tied newcomer cut with rank 0, got %d", rank)
	}
	if got := len(b.Top(game.ModeClassic)); got != MaxEntries {
		t.Errorf("Expected %d entries, got %d", MaxEntries, got)
	}

	rank, _ = b.Add(entry(60, game.ModeClassic, 1))
	if rank != 1 {
		t.Errorf("Expected a better score at rank 1, got %d", rank)
	}
	if top := b.Top(game.ModeClassic); top[MaxEntries-1] != same {
		t.Errorf("Expected the tail to stay %+v, got %+v", same, top[MaxEntries-1])
	}
}

func TestBoard_ModesAreSeparate(t *testing.T) {
	b := NewBoard()
	b.Add(entry(100, game.ModeClassic, 0))
	b.Add(entry(30, game.ModeChallenge, 1))

	if n := len(b.Top(game.ModeChallenge)); n != 1 {
		t.Errorf("Expected 1 challenge entry, got %d", n)
	}
	if b.HighScore(game.ModeChallenge) != 30 {
		t.Errorf("Expected challenge high 30, got %d", b.HighScore(game.ModeChallenge))
	}
}

func TestBoard_RejectsInvalid(t *testing.T) {
	b := NewBoard()
	tests := []struct {
		name string
		e    Entry
	}{
		{"unknown mode", entry(10, game.Mode("zen"), 0)},
		{"negative score", entry(-1, game.ModeClassic, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := b.Add(tt.e); !errors.Is(err, ErrInvalidEntry) {
				t.Errorf("Expected ErrInvalidEntry, got %v", err)
			}
		})
	}
}

func TestBoard_TopIsACopy(t *testing.T) {
	b := NewBoard()
	b.Add(entry(10, game.ModeClassic, 0))

	top := b.Top(game.ModeClassic)
	top[0].Score = 999
	if b.HighScore(game.ModeClassic) != 10 {
		t.Error("Expected Top to return a copy")
	}
}

func TestBoard_Normalize(t *testing.T) {
	b := &Board{Modes: map[game.Mode][]Entry{
		game.ModeClassic: {
			{Score: 10, Date: day},
			{Score: 40, Date: day, Mode: game.ModeClassic},
			{Score: 99, Date: day, Mode: game.ModeTime},
			{Score: -3, Date: day, Mode: game.ModeClassic},
		},
		game.Mode("zen"): {{Score: 7, Date: day}},
	}}

	b.Normalize()

	top := b.Top(game.ModeClassic)
	if len(top) != 2 || top[0].Score != 40 || top[1].Mode != game.ModeClassic {
		t.Errorf("Expected [40 10] classic, got %+v", top)
	}
	if _, ok := b.Modes[game.Mode("zen")]; ok {
		t.Error("Expected unknown mode to be dropped")
	}
}

func TestFileStore_PersistsAcrossOpen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "scores.json")

	s, err := OpenFileStore(path, nil)
	if err != nil {
		t.Fatalf("OpenFileStore: %v", err)
	}
	err = s.PersistRunResult(game.RunResult{Score: 120, Mode: game.ModeChallenge, Timestamp: day})
	if err != nil {
		t.Fatalf("PersistRunResult: %v", err)
	}
	if _, err := s.Submit(entry(60, game.ModeChallenge, 1)); err != nil {
		t.Fatalf("Submit: %v", err)
	}

	again, err := OpenFileStore(path, nil)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	top := again.Top(game.ModeChallenge)
	if len(top) != 2 || top[0].Score != 120 || !top[0].Date.Equal(day) {
		t.Errorf("Expected reloaded [120 60], got %+v", top)
	}
	if again.HighScore(game.ModeChallenge) != 120 {
		t.Errorf("Expected high 120, got %d", again.HighScore(game.ModeChallenge))
	}
}

func TestFileStore_InMemory(t *testing.T) {
	s, err := OpenFileStore("", nil)
	if err != nil {
		t.Fatalf("OpenFileStore: %v", err)
	}
	if rank, err := s.Submit(entry(5, game.ModeClassic, 0)); err != nil || rank != 1 {
		t.Errorf("Expected rank 1, got %d %v", rank, err)
	}
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scores.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenFileStore(path, nil); err == nil {
		t.Error("Expected a decode error")
	}
}

func TestFileStore_InvalidResult(t *testing.T) {
	s, _ := OpenFileStore("", nil)
	if err := s.PersistRunResult(game.RunResult{Score: 1, Mode: game.Mode("zen")}); err == nil {
		t.Error("Expected an error for an unknown mode")
	}
}

// Package leaderboard keeps per-mode top score tables and serves them over
// HTTP.
package leaderboard

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/simukka/flappy-dunk/game"
)

// MaxEntries is the size of every board.
const MaxEntries = 10

// ErrInvalidEntry is returned for entries with an unknown mode or a negative
// score.
var ErrInvalidEntry = errors.New("invalid leaderboard entry")

// Entry is one leaderboard row.
type Entry struct {
	Score int       `json:"score"`
	Date  time.Time `json:"date"`
	Mode  game.Mode `json:"mode"`
}

// EntryFromResult converts a finished run into a leaderboard row.
func EntryFromResult(r game.RunResult) Entry {
	return Entry{Score: r.Score, Date: r.Timestamp, Mode: r.Mode}
}

// Validate checks the entry can be ranked.
func (e Entry) Validate() error {
	if !e.Mode.Valid() {
		return fmt.Errorf("%w: unknown mode %q", ErrInvalidEntry, e.Mode)
	}
	if e.Score < 0 {
		return fmt.Errorf("%w: negative score %d", ErrInvalidEntry, e.Score)
	}
	return nil
}

// Board holds the top entries of every mode, best first. The zero value is
// not usable; call NewBoard. Board is not safe for concurrent use.
type Board struct {
	Modes map[game.Mode][]Entry `json:"modes"`
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{Modes: make(map[game.Mode][]Entry)}
}

// Add ranks e and keeps the best MaxEntries of its mode. It returns the
// 1-based rank, or 0 when the entry did not make the board. Ties keep the
// older entry ahead.
func (b *Board) Add(e Entry) (int, error) {
	if err := e.Validate(); err != nil {
		return 0, err
	}
	list := b.Modes[e.Mode]
	// Insert after every entry scoring at least as much.
	i := sort.Search(len(list), func(i int) bool { return list[i].Score < e.Score })
	if i >= MaxEntries {
		return 0, nil
	}
	list = append(list, Entry{})
	copy(list[i+1:], list[i:])
	list[i] = e
	if len(list) > MaxEntries {
		list = list[:MaxEntries]
	}
	b.Modes[e.Mode] = list
	return i + 1, nil
}

// Top returns a copy of the mode's entries, best first.
func (b *Board) Top(mode game.Mode) []Entry {
	return append([]Entry(nil), b.Modes[mode]...)
}

// HighScore returns the best score of mode, or 0.
func (b *Board) HighScore(mode game.Mode) int {
	if list := b.Modes[mode]; len(list) > 0 {
		return list[0].Score
	}
	return 0
}

// Normalize drops invalid entries and re-ranks every mode, for boards read
// from untrusted storage.
func (b *Board) Normalize() {
	if b.Modes == nil {
		b.Modes = make(map[game.Mode][]Entry)
	}
	loaded := b.Modes
	b.Modes = make(map[game.Mode][]Entry, len(loaded))
	for mode, list := range loaded {
		for _, e := range list {
			if e.Mode == "" {
				e.Mode = mode
			}
			if e.Mode != mode {
				continue
			}
			b.Add(e)
		}
	}
}

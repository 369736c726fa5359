package leaderboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/simukka/flappy-dunk/common"
	"github.com/simukka/flappy-dunk/game"
)

// Store is what the HTTP handler needs from a leaderboard backend.
type Store interface {
	Submit(Entry) (rank int, err error)
	Top(game.Mode) []Entry
	HighScore(game.Mode) int
}

// FileStore is a Board persisted as JSON. An empty path keeps it in memory.
// It is safe for concurrent use and implements game.ScoreStore.
type FileStore struct {
	mu    sync.Mutex
	path  string
	board *Board
	log   common.Logger
}

var (
	_ Store           = (*FileStore)(nil)
	_ game.ScoreStore = (*FileStore)(nil)
)

// OpenFileStore loads the board at path. A missing file starts empty.
func OpenFileStore(path string, log common.Logger) (*FileStore, error) {
	if log == nil {
		log = common.Nop
	}
	s := &FileStore{path: path, board: NewBoard(), log: log}
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		log.Infof("leaderboard %s not found, starting empty", path)
		return s, nil
	case err != nil:
		return nil, fmt.Errorf("read leaderboard: %w", err)
	}
	if err := json.Unmarshal(data, s.board); err != nil {
		return nil, fmt.Errorf("decode leaderboard %s: %w", path, err)
	}
	s.board.Normalize()
	return s, nil
}

// Submit ranks e and saves the board.
func (s *FileStore) Submit(e Entry) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rank, err := s.board.Add(e)
	if err != nil {
		return 0, err
	}
	if rank == 0 {
		return 0, nil
	}
	if err := s.save(); err != nil {
		return rank, err
	}
	return rank, nil
}

// PersistRunResult records a finished run.
func (s *FileStore) PersistRunResult(r game.RunResult) error {
	rank, err := s.Submit(EntryFromResult(r))
	if err != nil {
		return fmt.Errorf("persist %s run: %w", r.Mode, err)
	}
	if rank > 0 {
		s.log.Infof("%s score %d ranked #%d", r.Mode, r.Score, rank)
	}
	return nil
}

// Top returns the mode's entries, best first.
func (s *FileStore) Top(mode game.Mode) []Entry {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Top(mode)
}

// HighScore returns the best score of mode.
func (s *FileStore) HighScore(mode game.Mode) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.HighScore(mode)
}

// save writes the board through a temporary file so a crash never leaves a
// truncated leaderboard behind.
func (s *FileStore) save() error {
	if s.path == "" {
		return nil
	}
	data, err := json.MarshalIndent(s.board, "", "  ")
	if err != nil {
		return fmt.Errorf("encode leaderboard: %w", err)
	}
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create leaderboard dir: %w", err)
		}
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write leaderboard: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace leaderboard: %w", err)
	}
	return nil
}

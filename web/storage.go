package web

import (
	"encoding/json"
	"strconv"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/flappy-dunk/common"
	"github.com/simukka/flappy-dunk/game"
	"github.com/simukka/flappy-dunk/leaderboard"
)

const (
	boardKeyPrefix = "leaderboard_"
	highScoreKey   = "highScore"
)

// KeyValue is the subset of the Web Storage API the score store needs.
type KeyValue interface {
	GetItem(key string) (string, bool)
	SetItem(key, value string) error
}

// LocalStorage adapts window.localStorage.
type LocalStorage struct {
	obj *js.Object
}

// OpenLocalStorage returns the browser storage, or false when it is missing
// or blocked.
func OpenLocalStorage() (ls *LocalStorage, ok bool) {
	defer func() {
		// Accessing localStorage throws in some privacy modes.
		if recover() != nil {
			ls, ok = nil, false
		}
	}()
	obj := js.Global.Get("localStorage")
	if obj == nil || obj == js.Undefined {
		return nil, false
	}
	return &LocalStorage{obj: obj}, true
}

func (s *LocalStorage) GetItem(key string) (string, bool) {
	v := s.obj.Call("getItem", key)
	if v == nil || v == js.Undefined {
		return "", false
	}
	return v.String(), true
}

func (s *LocalStorage) SetItem(key, value string) (err error) {
	defer func() {
		if e := recover(); e != nil {
			if jsErr, ok := e.(*js.Error); ok {
				err = jsErr
				return
			}
			panic(e)
		}
	}()
	s.obj.Call("setItem", key, value)
	return nil
}

// MemoryKV is an in-memory KeyValue used when browser storage is unavailable.
type MemoryKV map[string]string

func (m MemoryKV) GetItem(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MemoryKV) SetItem(key, value string) error {
	m[key] = value
	return nil
}

// LocalStore keeps the per-mode leaderboards in browser storage and forwards
// finished runs to the global leaderboard.
type LocalStore struct {
	kv     KeyValue
	board  *leaderboard.Board
	remote string
	post   func(url string, body []byte)
	log    common.Logger
}

var _ game.ScoreStore = (*LocalStore)(nil)

// NewLocalStore loads every stored board from kv. remote is the leaderboard
// API URL; empty disables forwarding.
func NewLocalStore(kv KeyValue, remote string, log common.Logger) *LocalStore {
	if log == nil {
		log = common.Nop
	}
	s := &LocalStore{
		kv:     kv,
		board:  leaderboard.NewBoard(),
		remote: remote,
		post:   fetchPost,
		log:    log,
	}
	for _, mode := range game.Modes {
		raw, ok := kv.GetItem(boardKeyPrefix + string(mode))
		if !ok {
			continue
		}
		var entries []leaderboard.Entry
		if err := json.Unmarshal([]byte(raw), &entries); err != nil {
			log.Warnf("Ignoring corrupt %s leaderboard: %v", mode, err)
			continue
		}
		for _, e := range entries {
			e.Mode = mode
			if _, err := s.board.Add(e); err != nil {
				log.Warnf("Dropping stored entry: %v", err)
			}
		}
	}
	return s
}

// PersistRunResult ranks the run locally, saves the board and posts it to
// the remote leaderboard without waiting for the response.
func (s *LocalStore) PersistRunResult(r game.RunResult) error {
	e := leaderboard.EntryFromResult(r)
	rank, err := s.board.Add(e)
	if err != nil {
		return err
	}
	if s.remote != "" {
		if body, err := json.Marshal(e); err == nil {
			s.post(s.remote, body)
		}
	}
	if rank == 0 {
		return nil
	}
	data, err := json.Marshal(s.board.Top(r.Mode))
	if err != nil {
		return err
	}
	if err := s.kv.SetItem(boardKeyPrefix+string(r.Mode), string(data)); err != nil {
		return err
	}
	return s.kv.SetItem(highScoreKey, strconv.Itoa(s.bestOverall()))
}

// HighScore returns the best stored score of mode.
func (s *LocalStore) HighScore(mode game.Mode) int {
	return s.board.HighScore(mode)
}

// Top returns the stored board of mode, best first.
func (s *LocalStore) Top(mode game.Mode) []leaderboard.Entry {
	return s.board.Top(mode)
}

func (s *LocalStore) bestOverall() int {
	best := 0
	for _, mode := range game.Modes {
		if hs := s.board.HighScore(mode); hs > best {
			best = hs
		}
	}
	return best
}

func fetchPost(url string, body []byte) {
	fetch := js.Global.Get("fetch")
	if fetch == js.Undefined {
		return
	}
	headers := js.M{"Content-Type": "application/json"}
	js.Global.Call("fetch", url, js.M{
		"method":  "POST",
		"headers": headers,
		"body":    string(body),
	}).Call("catch", func(err *js.Object) {
		js.Global.Get("console").Call("warn", "leaderboard submit failed:", err)
	})
}

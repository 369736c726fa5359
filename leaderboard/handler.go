//go:build !js
// +build !js

package leaderboard

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/simukka/flappy-dunk/common"
	"github.com/simukka/flappy-dunk/game"
)

// maxBody caps submitted JSON bodies.
const maxBody = 4 << 10

// Handler serves the leaderboard API:
//
//	GET  /api/scores?mode=M   top entries of M, or of every mode
//	POST /api/scores          submit {"score":N,"mode":M}
//	GET  /api/highscore?mode=M
//	GET  /api/scores/stream   Server-Sent Events of new ranked entries
//	GET  /api/scores/ws       the same entries over a WebSocket
type Handler struct {
	store Store
	feed  *Feed
	log   common.Logger
	now   func() time.Time
	mux   *http.ServeMux
}

// NewHandler creates the API handler. feed may be nil.
func NewHandler(store Store, feed *Feed, log common.Logger) *Handler {
	if log == nil {
		log = common.Nop
	}
	h := &Handler{store: store, feed: feed, log: log, now: time.Now, mux: http.NewServeMux()}
	h.mux.HandleFunc("/api/scores", h.handleScores)
	h.mux.HandleFunc("/api/highscore", h.handleHighScore)
	if feed != nil {
		h.mux.Handle("/api/scores/stream", feed)
		h.mux.HandleFunc("/api/scores/ws", feed.ServeWebSocket)
	}
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	h.mux.ServeHTTP(w, r)
}

type scoresResponse struct {
	Mode    game.Mode `json:"mode"`
	Entries []Entry   `json:"entries"`
}

type submitRequest struct {
	Score int       `json:"score"`
	Mode  game.Mode `json:"mode"`
	Date  time.Time `json:"date"`
}

type submitResponse struct {
	Rank      int `json:"rank"`
	HighScore int `json:"highScore"`
}

type highScoreResponse struct {
	Mode  game.Mode `json:"mode"`
	Score int       `json:"score"`
}

func (h *Handler) handleScores(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		h.listScores(w, r)
	case http.MethodPost:
		h.submitScore(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *Handler) listScores(w http.ResponseWriter, r *http.Request) {
	modes := game.Modes
	if q := r.URL.Query().Get("mode"); q != "" {
		mode, err := game.ParseMode(q)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		modes = []game.Mode{mode}
	}

	boards := make([]scoresResponse, 0, len(modes))
	for _, m := range modes {
		entries := h.store.Top(m)
		if entries == nil {
			entries = []Entry{}
		}
		boards = append(boards, scoresResponse{Mode: m, Entries: entries})
	}
	if len(boards) == 1 {
		writeJSON(w, http.StatusOK, boards[0])
		return
	}
	writeJSON(w, http.StatusOK, map[string][]scoresResponse{"boards": boards})
}

func (h *Handler) submitScore(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody)).Decode(&req); err != nil {
		http.Error(w, "Invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Date.IsZero() {
		req.Date = h.now()
	}
	e := Entry{Score: req.Score, Date: req.Date.UTC(), Mode: req.Mode}

	rank, err := h.store.Submit(e)
	switch {
	case errors.Is(err, ErrInvalidEntry):
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	case err != nil:
		h.log.Errorf("submit %s score %d: %v", e.Mode, e.Score, err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	h.log.Infof("score %d submitted for %s, rank %d", e.Score, e.Mode, rank)
	if rank > 0 && h.feed != nil {
		h.feed.Publish(e, rank)
	}
	writeJSON(w, http.StatusOK, submitResponse{Rank: rank, HighScore: h.store.HighScore(e.Mode)})
}

func (h *Handler) handleHighScore(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	mode, err := game.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	writeJSON(w, http.StatusOK, highScoreResponse{Mode: mode, Score: h.store.HighScore(mode)})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

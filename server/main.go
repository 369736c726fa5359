//go:build !js
// +build !js

package main

import (
	_ "embed"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/simukka/flappy-dunk/common"
	"github.com/simukka/flappy-dunk/leaderboard"
)

//go:embed index.html
var indexHTML []byte

// newMux routes the game page, the compiled client files next to it and the
// leaderboard API.
func newMux(cfg Config, store leaderboard.Store, feed *leaderboard.Feed, logger common.Logger) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/", pageHandler(http.FileServer(http.Dir(cfg.Static))))
	mux.Handle("/api/", leaderboard.NewHandler(store, feed, logger))
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"status":"healthy","listeners":%d}`, feed.Len())
	})
	return mux
}

// pageHandler answers the root with the embedded page and everything else from files.
func pageHandler(files http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/", "/index.html":
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, _ = w.Write(indexHTML)
		default:
			files.ServeHTTP(w, r)
		}
	}
}

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	logger := common.NewLogger(os.Stderr, cfg.LogLevel)

	store, err := leaderboard.OpenFileStore(cfg.Scores, logger)
	if err != nil {
		log.Fatal(err)
	}
	feed := leaderboard.NewFeed(logger)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Infof("listening on http://localhost%s (client files in %s, scores in %s)", addr, cfg.Static, cfg.Scores)
	logger.Infof("Leaderboard endpoints: /api/scores, /api/highscore, /api/scores/stream, /api/scores/ws")

	if err := http.ListenAndServe(addr, newMux(cfg, store, feed, logger)); err != nil {
		log.Fatal(err)
	}
}

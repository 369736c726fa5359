//go:build !js
// +build !js

package leaderboard

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/simukka/flappy-dunk/common"
	"github.com/simukka/flappy-dunk/game"
)

// feedBuffer is the per-subscriber backlog before messages are dropped.
const feedBuffer = 32

// FeedMessage is one published leaderboard entry with its rank.
type FeedMessage struct {
	Score int       `json:"score" msgpack:"score"`
	Date  time.Time `json:"date" msgpack:"date"`
	Mode  game.Mode `json:"mode" msgpack:"mode"`
	Rank  int       `json:"rank" msgpack:"rank"`
}

// Feed fans new leaderboard entries out to Server-Sent Events and WebSocket
// subscribers. Messages are JSON encoded FeedMessage values.
type Feed struct {
	mu   sync.RWMutex
	subs map[int]chan []byte
	next int
	log  common.Logger
}

// NewFeed creates a feed without subscribers.
func NewFeed(log common.Logger) *Feed {
	if log == nil {
		log = common.Nop
	}
	return &Feed{subs: make(map[int]chan []byte), log: log}
}

// Subscribe registers a listener and returns its id and message channel.
func (f *Feed) Subscribe() (int, <-chan []byte) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.next++
	ch := make(chan []byte, feedBuffer)
	f.subs[f.next] = ch
	return f.next, ch
}

// Unsubscribe removes a listener and closes its channel.
func (f *Feed) Unsubscribe(id int) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if ch, ok := f.subs[id]; ok {
		close(ch)
		delete(f.subs, id)
	}
}

// Len returns the number of subscribers. A nil feed has none.
func (f *Feed) Len() int {
	if f == nil {
		return 0
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return len(f.subs)
}

// Publish sends a ranked entry to every subscriber without blocking. Slow
// subscribers lose the message.
func (f *Feed) Publish(e Entry, rank int) {
	msg, err := json.Marshal(FeedMessage{Score: e.Score, Date: e.Date, Mode: e.Mode, Rank: rank})
	if err != nil {
		f.log.Errorf("encode feed entry: %v", err)
		return
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	for id, ch := range f.subs {
		select {
		case ch <- msg:
		default:
			f.log.Warnf("feed buffer full for subscriber %d", id)
		}
	}
}

// ServeHTTP streams published entries as Server-Sent Events until the client
// disconnects.
func (f *Feed) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "SSE not supported", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	id, msgs := f.Subscribe()
	defer f.Unsubscribe(id)
	f.log.Debugf("feed subscriber %d connected", id)

	fmt.Fprint(w, ": connected\n\n")
	flusher.Flush()

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			f.log.Debugf("feed subscriber %d disconnected", id)
			return
		case msg, ok := <-msgs:
			if !ok {
				return
			}
			fmt.Fprintf(w, "data: %s\n\n", msg)
			flusher.Flush()
		}
	}
}

//go:build !js
// +build !js

package leaderboard

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/vmihailenco/msgpack/v5"
)

const (
	socketWriteWait  = 10 * time.Second
	socketPongWait   = 60 * time.Second
	socketPingPeriod = 25 * time.Second
)

var upgrader = websocket.Upgrader{
	// The feed is public and read-only.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// ServeWebSocket streams published entries over a WebSocket: JSON text
// messages by default, msgpack binary messages with ?format=msgpack.
// Anything the client sends is discarded.
func (f *Feed) ServeWebSocket(w http.ResponseWriter, r *http.Request) {
	binary := false
	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
	case "msgpack":
		binary = true
	default:
		http.Error(w, fmt.Sprintf("unknown feed format %q", format), http.StatusBadRequest)
		return
	}

	// Subscribe before the handshake completes so nothing published after the
	// client's dial returns is lost.
	id, msgs := f.Subscribe()
	defer f.Unsubscribe(id)

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		f.log.Warnf("feed upgrade: %v", err)
		return
	}
	defer conn.Close()
	f.log.Debugf("feed socket %d connected", id)

	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(socketPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(socketPongWait))
	})

	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(socketPingPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-closed:
			f.log.Debugf("feed socket %d disconnected", id)
			return
		case msg, ok := <-msgs:
			_ = conn.SetWriteDeadline(time.Now().Add(socketWriteWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				return
			}
			kind := websocket.TextMessage
			if binary {
				packed, err := toMsgpack(msg)
				if err != nil {
					f.log.Errorf("feed socket %d: %v", id, err)
					continue
				}
				kind, msg = websocket.BinaryMessage, packed
			}
			if err := conn.WriteMessage(kind, msg); err != nil {
				f.log.Debugf("feed socket %d write: %v", id, err)
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(socketWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// toMsgpack re-encodes a published JSON message.
func toMsgpack(msg []byte) ([]byte, error) {
	var m FeedMessage
	if err := json.Unmarshal(msg, &m); err != nil {
		return nil, fmt.Errorf("decode feed message: %w", err)
	}
	data, err := msgpack.Marshal(&m)
	if err != nil {
		return nil, fmt.Errorf("encode feed message: %w", err)
	}
	return data, nil
}

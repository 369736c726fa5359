package web

import (
	"time"

	"github.com/gopherjs/gopherjs/js"
	"github.com/simukka/flappy-dunk/game"
)

// IntervalClock schedules repeating callbacks with setInterval.
type IntervalClock struct{}

var _ game.Clock = IntervalClock{}

type intervalTimer struct {
	id      int
	stopped bool
}

// Every starts a browser interval; the returned timer clears it.
func (IntervalClock) Every(interval time.Duration, fn func()) game.Timer {
	t := &intervalTimer{}
	t.id = js.Global.Call("setInterval", func() {
		if !t.stopped {
			fn()
		}
	}, interval.Milliseconds()).Int()
	return t
}

func (t *intervalTimer) Stop() {
	if t.stopped {
		return
	}
	t.stopped = true
	js.Global.Call("clearInterval", t.id)
}

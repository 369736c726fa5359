package game

import "time"

// Timer is a cancellable periodic callback handle.
type Timer interface {
	Stop()
}

// Clock schedules periodic callbacks. Callbacks must be delivered on the same
// goroutine that drives Update and input, never concurrently with them.
type Clock interface {
	Every(interval time.Duration, fn func()) Timer
}

// FrameClock is a Clock driven by the host's frame loop: callbacks fire from
// inside Advance. It is what the desktop host, the simulator and the tests use.
type FrameClock struct {
	now    time.Duration
	timers []*frameTimer
}

type frameTimer struct {
	interval time.Duration
	next     time.Duration
	fn       func()
	stopped  bool
}

func (t *frameTimer) Stop() {
	t.stopped = true
}

// NewFrameClock creates a clock at time zero.
func NewFrameClock() *FrameClock {
	return &FrameClock{}
}

// Every schedules fn every interval, first firing one interval from now.
func (c *FrameClock) Every(interval time.Duration, fn func()) Timer {
	t := &frameTimer{interval: interval, next: c.now + interval, fn: fn}
	c.timers = append(c.timers, t)
	return t
}

// Advance moves the clock forward by d and fires every due callback, in
// scheduling order. A callback that stops timers affects later callbacks in
// the same Advance.
func (c *FrameClock) Advance(d time.Duration) {
	c.now += d
	for i := 0; i < len(c.timers); i++ {
		t := c.timers[i]
		for !t.stopped && t.interval > 0 && t.next <= c.now {
			t.next += t.interval
			t.fn()
		}
	}
	live := c.timers[:0]
	for _, t := range c.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	for i := len(live); i < len(c.timers); i++ {
		c.timers[i] = nil
	}
	c.timers = live
}

// Now returns the accumulated clock time.
func (c *FrameClock) Now() time.Duration {
	return c.now
}

// Pending returns the number of live timers.
func (c *FrameClock) Pending() int {
	n := 0
	for _, t := range c.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

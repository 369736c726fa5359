package game

import (
	"testing"
	"time"
)

func TestFrameClock_FiresOnInterval(t *testing.T) {
	c := NewFrameClock()
	n := 0
	c.Every(time.Second, func() { n++ })

	c.Advance(999 * time.Millisecond)
	if n != 0 {
		t.Errorf("Expected no fire before one interval, got %d", n)
	}
	c.Advance(time.Millisecond)
	if n != 1 {
		t.Errorf("Expected one fire at one interval, got %d", n)
	}
	c.Advance(3 * time.Second)
	if n != 4 {
		t.Errorf("Expected catch-up to 4 fires, got %d", n)
	}
}

func TestFrameClock_StopCancels(t *testing.T) {
	c := NewFrameClock()
	n := 0
	timer := c.Every(time.Second, func() { n++ })

	c.Advance(time.Second)
	timer.Stop()
	c.Advance(5 * time.Second)

	if n != 1 {
		t.Errorf("Expected 1 fire, got %d", n)
	}
	if c.Pending() != 0 {
		t.Errorf("Expected no pending timers, got %d", c.Pending())
	}
}

func TestFrameClock_StopFromCallback(t *testing.T) {
	c := NewFrameClock()
	n := 0
	var timer Timer
	timer = c.Every(time.Second, func() {
		n++
		timer.Stop()
	})

	c.Advance(10 * time.Second)
	if n != 1 {
		t.Errorf("Expected a self-stopping timer to fire once, got %d", n)
	}
}

func TestFrameClock_Order(t *testing.T) {
	c := NewFrameClock()
	var order []string
	c.Every(time.Second, func() { order = append(order, "a") })
	c.Every(time.Second, func() { order = append(order, "b") })

	c.Advance(time.Second)
	if len(order) != 2 || order[0] != "a" || order[1] != "b" {
		t.Errorf("Expected [a b], got %v", order)
	}
	if c.Now() != time.Second {
		t.Errorf("Expected now 1s, got %v", c.Now())
	}
}

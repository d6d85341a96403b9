package throttle

import (
	"sync"
	"time"
)

// fakeClock drives the throttle window manually so tests don't sleep.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	clk     *fakeClock
	when    time.Time
	f       func()
	stopped bool
	fired   bool
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Unix(1_700_000_000, 0)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	ft := &fakeTimer{clk: c, when: c.now.Add(d), f: f}
	c.timers = append(c.timers, ft)
	return ft
}

// Advance moves the clock forward by d, firing due timers in order.
// Callbacks run outside the clock lock so they can call Now and
// AfterFunc themselves.
func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.now.Add(d)
	for {
		var next *fakeTimer
		for _, ft := range c.timers {
			if ft.stopped || ft.fired || ft.when.After(target) {
				continue
			}
			if next == nil || ft.when.Before(next.when) {
				next = ft
			}
		}
		if next == nil {
			break
		}
		if c.now.Before(next.when) {
			c.now = next.when
		}
		next.fired = true
		f := next.f
		c.mu.Unlock()
		f()
		c.mu.Lock()
	}
	c.now = target
	c.mu.Unlock()
}

// Rewind moves the clock backward by d without firing anything,
// simulating a wall-clock jump.
func (c *fakeClock) Rewind(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(-d)
	c.mu.Unlock()
}

func (ft *fakeTimer) Stop() bool {
	ft.clk.mu.Lock()
	defer ft.clk.mu.Unlock()
	if ft.stopped || ft.fired {
		return false
	}
	ft.stopped = true
	return true
}

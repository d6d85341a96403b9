package throttle

import (
	"sync"
	"time"
)

// Throttler is an in-process throttle wrapping a single callback.
//
// The first Call in a burst invokes the callback synchronously; calls
// arriving before the window elapses are coalesced into at most one
// deferred trailing invocation carrying the argument of the call that
// started the wait, and later calls inside the window are dropped.
//
// The zero value is not usable; use New.
type Throttler[T any] struct {
	fn       func(T)
	wait     time.Duration
	clock    Clock
	recorder MetricsRecorder

	mu          sync.Mutex
	lastCall    time.Time
	pendingArg  T
	hasPending  bool
	timer       Timer
	timerGen    uint64
	scheduledAt time.Time
}

// New wraps fn in a Throttler that invokes it at most once per wait
// window, plus one trailing invocation per window when calls were
// suppressed. A negative wait is clamped to 0; a wait of 0 disables
// throttling entirely (every call is a leading edge).
func New[T any](wait time.Duration, fn func(T), opts ...Option) *Throttler[T] {
	if wait < 0 {
		wait = 0
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Throttler[T]{
		fn:       fn,
		wait:     wait,
		clock:    cfg.clock,
		recorder: cfg.recorder,
	}
}

// Call requests an invocation of the wrapped callback with v.
//
// On a leading edge the callback runs before Call returns. Inside the
// window the first Call schedules a trailing invocation for when the
// window ends; subsequent Calls are dropped without updating the
// stored argument. The callback's return value, if any, is not
// forwarded.
func (t *Throttler[T]) Call(v T) {
	t.mu.Lock()

	now := t.clock.Now()
	remaining := t.wait - now.Sub(t.lastCall)

	// remaining > wait means lastCall is in the future: the wall
	// clock jumped backward. Treat it like a fresh leading edge
	// rather than waiting out a window that may never end.
	if remaining <= 0 || remaining > t.wait {
		t.stopTimerLocked()
		t.lastCall = now
		t.mu.Unlock()

		t.recorder.Add("throttle.leading", 1, nil)
		t.fn(v)
		return
	}

	if t.timer != nil {
		t.mu.Unlock()
		t.recorder.Add("throttle.suppressed", 1, nil)
		return
	}

	t.pendingArg = v
	t.hasPending = true
	t.scheduledAt = now
	t.timerGen++
	gen := t.timerGen
	t.timer = t.clock.AfterFunc(remaining, func() { t.fire(gen) })
	t.mu.Unlock()
}

// Cancel discards any pending trailing invocation and resets the
// window, so the next Call is a leading edge regardless of how
// recently the callback last ran. It is idempotent.
func (t *Throttler[T]) Cancel() {
	t.mu.Lock()
	t.stopTimerLocked()
	t.lastCall = time.Time{}
	t.mu.Unlock()

	t.recorder.Add("throttle.cancel", 1, nil)
}

// Wait returns the configured window.
func (t *Throttler[T]) Wait() time.Duration { return t.wait }

// Pending reports whether a trailing invocation is scheduled.
func (t *Throttler[T]) Pending() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.hasPending
}

// fire runs when the trailing timer elapses. The generation check
// discards timers that lost a race with Call or Cancel stopping them.
func (t *Throttler[T]) fire(gen uint64) {
	t.mu.Lock()
	if t.timer == nil || gen != t.timerGen {
		t.mu.Unlock()
		return
	}

	now := t.clock.Now()
	t.lastCall = now
	t.timer = nil
	if !t.hasPending {
		t.mu.Unlock()
		return
	}

	v := t.pendingArg
	delay := now.Sub(t.scheduledAt)
	var zero T
	t.pendingArg = zero
	t.hasPending = false
	t.mu.Unlock()

	t.recorder.Add("throttle.trailing", 1, nil)
	t.recorder.Observe("throttle.trailing_delay", delay.Seconds(), nil)
	t.fn(v)
}

func (t *Throttler[T]) stopTimerLocked() {
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	var zero T
	t.pendingArg = zero
	t.hasPending = false
}

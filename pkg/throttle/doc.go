// Package throttle provides local and distributed leading-edge-first
// throttling with a trailing-edge flush.
//
// The primary entry point is New, which wraps a callback:
//
//	th := throttle.New(100*time.Millisecond, render)
//	th.Call(size) // rate-limited
//	th.Cancel()   // discard any pending trailing call
//
// # Overview
//
// A throttle bounds how often an expensive callback runs, for example a
// drag, resize, or scroll handler. Unlike a debounce (which waits for
// the input to go quiet), a throttle guarantees the first call in a
// burst runs immediately:
//
//   - The first call in a burst invokes the callback synchronously
//     (the "leading edge").
//   - Calls arriving before the window elapses are coalesced into at
//     most one deferred invocation at the end of the window (the
//     "trailing edge"), carrying the argument of the call that started
//     the wait. Later calls inside the window are dropped.
//   - Cancel discards any pending trailing call and resets the window,
//     so the next call runs immediately again.
//
// # Core Types
//
// Throttler is the in-process throttle. It is generic over the single
// argument value forwarded to the callback; use a struct when the
// callback needs more than one value, or struct{} when it needs none.
//
// Identity defines "who" is being throttled by the distributed
// backend. It is split into:
//
//   - Namespace: a logical grouping (for example, "widget", "tenant")
//   - Key: the identifier within that namespace
//
// # Backends
//
// The package provides two implementations of the same window policy:
//
//   - Throttler: an in-process throttle whose state lives behind a
//     mutex. This is what a single process (a UI widget, a file
//     watcher, a poller) wants.
//
//   - RedisThrottler: a distributed variant backed by Redis. It uses a
//     Lua script to perform the read/compute/write cycle atomically,
//     so many replicas can share one throttle window per identity.
//     Callbacks cannot cross the wire, so RedisThrottler returns a
//     Decision and leaves scheduling of the trailing flush to the
//     caller that won the trailing slot.
//
// # Concurrency
//
// Throttler is safe for concurrent use by multiple goroutines. The
// callback is invoked outside the internal lock, so it may be invoked
// again before a previous invocation returns; callbacks that touch
// shared state must synchronize on their own. RedisThrottler delegates
// concurrency safety to Redis and the go-redis client.
//
// # Context and Error Policy
//
// The in-process Throttler has no failure modes of its own; anything
// the callback panics with propagates from Call (leading edge) or from
// the timer goroutine (trailing edge). RedisThrottler passes the
// caller's context through to Redis so deadlines and cancellation
// apply, and returns errors directly: the caller decides whether to
// run the callback anyway (fail open) or drop it (fail closed).
//
// # Decision Semantics
//
// RedisThrottler.Allow returns a Decision:
//
//   - Leading reports that the caller should run the callback now.
//   - Trailing reports that the caller claimed the one trailing slot
//     for this window and should flush after RetryAfter.
//   - Neither set means the call is suppressed: another caller already
//     holds the trailing slot.
//   - ResetTime is the absolute timestamp at which the window ends.
//
// # Configuration
//
// Both constructors use the Functional Options pattern:
//
//	th := throttle.New(wait, fn,
//		throttle.WithClock(myClock),
//		throttle.WithRecorder(myMetrics),
//	)
//
// Supported options:
//
//   - WithClock(Clock): injects the time and timer source (tests).
//   - WithRecorder(MetricsRecorder): injects a custom metrics backend.
//   - WithPrefix(string): Redis key prefix (default "throttle:").
//   - WithTimeout(time.Duration): per-operation timeout for Redis
//     calls (default 5s).
//
// Options that do not apply to a given constructor are ignored.
package throttle

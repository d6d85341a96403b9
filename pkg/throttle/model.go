package throttle

import (
	"time"
)

type Namespace string

// Identity names a throttled entity for the distributed backend.
type Identity struct {
	Namespace Namespace
	Key       string
}

// Decision is the outcome of a RedisThrottler.Allow call.
//
// Exactly one of Leading or Trailing is set when the caller has work
// to do; both false means the call was suppressed.
type Decision struct {
	Leading    bool
	Trailing   bool
	RetryAfter time.Duration
	ResetTime  time.Time
}

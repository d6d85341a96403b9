package throttle

import "time"

type config struct {
	clock    Clock
	recorder MetricsRecorder
	prefix   string
	timeout  time.Duration
}

func defaultConfig() *config {
	return &config{
		clock:    systemClock{},
		recorder: &NoOpMetricsRecorder{},
		prefix:   "throttle:",
		timeout:  5 * time.Second,
	}
}

// Option configures a Throttler or RedisThrottler. Options that do not
// apply to the constructor they are passed to are ignored.
type Option func(*config)

// WithClock overrides the time and timer source. Intended for tests.
func WithClock(c Clock) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.clock = c
		}
	}
}

// WithRecorder injects a metrics backend.
func WithRecorder(r MetricsRecorder) Option {
	return func(cfg *config) {
		if r != nil {
			cfg.recorder = r
		}
	}
}

// WithPrefix sets the Redis key prefix (default "throttle:").
func WithPrefix(prefix string) Option {
	return func(cfg *config) {
		if prefix != "" {
			cfg.prefix = prefix
		}
	}
}

// WithTimeout sets the per-operation timeout for Redis calls
// (default 5s).
func WithTimeout(d time.Duration) Option {
	return func(cfg *config) {
		if d > 0 {
			cfg.timeout = d
		}
	}
}

package throttle

// MetricsRecorder receives counters and observations from a throttler.
// Implementations map these onto whatever metrics backend the host
// application uses.
//
// Emitted series:
//
//	throttle.leading        counter, leading-edge invocations
//	throttle.trailing       counter, trailing-edge invocations
//	throttle.suppressed     counter, calls dropped inside the window
//	throttle.cancel         counter, Cancel calls
//	throttle.trailing_delay histogram, seconds a trailing call waited
//	throttle.redis_latency  histogram, seconds per Redis round-trip
type MetricsRecorder interface {
	Add(name string, value float64, tags map[string]string)
	Observe(name string, value float64, tags map[string]string)
}

// NoOpMetricsRecorder is a placeholder that does nothing.
// It ensures we never have to check 'if r.recorder != nil' in our hot path.
type NoOpMetricsRecorder struct{}

func (n *NoOpMetricsRecorder) Add(name string, value float64, tags map[string]string)     {}
func (n *NoOpMetricsRecorder) Observe(name string, value float64, tags map[string]string) {}

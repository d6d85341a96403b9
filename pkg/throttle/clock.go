package throttle

import "time"

// Clock supplies the current time and one-shot timers. The default is
// the system clock; tests inject a manual clock to drive the window
// deterministically.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a scheduled one-shot invocation. Stop reports whether the
// call was prevented from running, matching *time.Timer.
type Timer interface {
	Stop() bool
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

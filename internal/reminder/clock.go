package reminder

import "time"

// Clock abstracts wall-clock reads so reminder timing is deterministic
// under test.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the real wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// Timer is a cancellable deferred callback.
type Timer interface {
	// Stop cancels the timer. Returns false if it already fired.
	Stop() bool
}

// TimerFactory arms a callback to run after d. Production code passes
// AfterFunc; tests pass a recording factory.
type TimerFactory func(d time.Duration, fn func()) Timer

// AfterFunc is the production TimerFactory backed by time.AfterFunc.
func AfterFunc(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

package clock

import "time"

// Clock reports wall-clock time
type Clock interface {
	Now() time.Time
}

// Timer is a pending callback that can be cancelled
type Timer interface {
	// Stop prevents any further runs. It returns false if the timer had
	// already been stopped or, for one-shot timers, had already fired.
	Stop() bool
}

// Scheduler runs callbacks after a delay. Callbacks are invoked on a
// goroutine owned by the scheduler, so they must do their own locking.
type Scheduler interface {
	// After runs fn once after d
	After(d time.Duration, fn func()) Timer

	// Every runs fn each time d elapses until the returned timer is stopped.
	// A run is never skipped: the next interval starts after fn returns.
	Every(d time.Duration, fn func()) Timer
}

// DefaultClock implements the Clock and Scheduler interfaces using the system clock
type DefaultClock struct{}

// New returns a clock backed by the time package
func New() *DefaultClock {
	return &DefaultClock{}
}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// After schedules fn with time.AfterFunc
func (c *DefaultClock) After(d time.Duration, fn func()) Timer {
	return time.AfterFunc(d, fn)
}

// Every re-arms a time.AfterFunc after each run
func (c *DefaultClock) Every(d time.Duration, fn func()) Timer {
	r := &repeating{interval: d, fn: fn}
	r.mu.Lock()
	r.timer = time.AfterFunc(d, r.run)
	r.mu.Unlock()
	return r
}

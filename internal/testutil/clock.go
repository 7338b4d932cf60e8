package testutil

import (
	"sync"
	"time"
)

// FixedClock provides a settable wall clock for tests.
//
// Ages are derived from the current year, so loader tests pin "now" to keep
// age classes stable across calendar years.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type FixedClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFixedClock creates a clock that always reports now.
func NewFixedClock(now time.Time) *FixedClock {
	return &FixedClock{now: now}
}

// InYear creates a clock fixed at 1 June of the given year, UTC.
func InYear(year int) *FixedClock {
	return NewFixedClock(time.Date(year, time.June, 1, 12, 0, 0, 0, time.UTC))
}

// Now returns the fixed time. Matches the func() time.Time shape used by
// loader options.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Set moves the clock to t.
func (c *FixedClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Package testutil provides deterministic helpers for tests and the
// conformance harness.
package testutil

import (
	"sync"
	"time"
)

// FixedClock is a thread-safe deterministic wall clock for tests.
//
// Each call to Now returns the current instant and advances the clock by a
// fixed step, so a sequence of operations gets distinct, predictable
// timestamps. Unlike time.Now it can be reset for test reuse.
type FixedClock struct {
	mu   sync.Mutex
	base time.Time
	step time.Duration
	n    int
}

// NewFixedClock creates a clock starting at base, advancing step per call.
//
// The first call to Now() returns base.
func NewFixedClock(base time.Time, step time.Duration) *FixedClock {
	return &FixedClock{base: base, step: step}
}

// Now returns the current instant and advances the clock.
func (c *FixedClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.base.Add(time.Duration(c.n) * c.step)
	c.n++
	return t
}

// Reset rewinds the clock to its base instant.
//
// Used for test reuse. After Reset(), the next call to Now() returns base.
func (c *FixedClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.n = 0
}

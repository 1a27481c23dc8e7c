package clock

import "time"

// Clock provides time operations that can be mocked for testing
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the system clock
type RealClock struct{}

// New creates a new RealClock
func New() *RealClock {
	return &RealClock{}
}

// Now returns the current time
func (c *RealClock) Now() time.Time {
	return time.Now()
}

// Within reports whether t lies no further than window from c's current time,
// in either direction
func Within(c Clock, t time.Time, window time.Duration) bool {
	now := c.Now()
	return !t.Before(now.Add(-window)) && !t.After(now.Add(window))
}

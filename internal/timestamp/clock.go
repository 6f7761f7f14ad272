// Package timestamp produces the time strings written by touchstamp.
// Time is always rendered in a fixed-offset zone so that a stamp written on
// any host reads the same.
package timestamp

import "time"

// Clock provides the current time.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock always returns the same instant.
type FixedClock struct {
	At time.Time
}

// Now returns the preset instant.
func (c FixedClock) Now() time.Time {
	return c.At
}

package timestamp

import (
	"fmt"
	"time"
)

const (
	// MinOffsetHours is the westernmost UTC offset in use.
	MinOffsetHours = -12
	// MaxOffsetHours is the easternmost UTC offset in use.
	MaxOffsetHours = 14
)

// JST is Japan Standard Time, UTC+9 without daylight saving.
var JST = Zone("JST", 9)

// Zone returns a fixed-offset location.
func Zone(name string, offsetHours int) *time.Location {
	return time.FixedZone(name, offsetHours*60*60)
}

// ValidateOffset checks that offsetHours is a real-world UTC offset.
func ValidateOffset(offsetHours int) error {
	if offsetHours < MinOffsetHours || offsetHours > MaxOffsetHours {
		return fmt.Errorf("offset %d is out of range (expected %d..%d)", offsetHours, MinOffsetHours, MaxOffsetHours)
	}
	return nil
}

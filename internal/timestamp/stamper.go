package timestamp

import (
	"fmt"
	"time"
)

// DefaultLayout matches strftime "%Y-%m-%d %H:%M:%S %z".
const DefaultLayout = "2006-01-02 15:04:05 -0700"

// Stamper formats the current time in a fixed zone.
type Stamper struct {
	clock    Clock
	location *time.Location
	layout   string
}

// NewStamper creates a Stamper. Nil clock means SystemClock, nil location
// means JST and an empty layout means DefaultLayout.
func NewStamper(clock Clock, location *time.Location, layout string) *Stamper {
	if clock == nil {
		clock = SystemClock{}
	}
	if location == nil {
		location = JST
	}
	if layout == "" {
		layout = DefaultLayout
	}
	return &Stamper{
		clock:    clock,
		location: location,
		layout:   layout,
	}
}

// Now returns the current time in the stamper's zone.
func (s *Stamper) Now() time.Time {
	return s.clock.Now().In(s.location)
}

// Stamp returns the current time formatted with the stamper's layout.
func (s *Stamper) Stamp() string {
	return s.Format(s.Now())
}

// Format renders t in the stamper's zone and layout.
func (s *Stamper) Format(t time.Time) string {
	return t.In(s.location).Format(s.layout)
}

// Parse reads a stamp previously produced by Format.
func (s *Stamper) Parse(value string) (time.Time, error) {
	return time.ParseInLocation(s.layout, value, s.location)
}

// Layout returns the Go time layout in use.
func (s *Stamper) Layout() string {
	return s.layout
}

// Location returns the zone stamps are rendered in.
func (s *Stamper) Location() *time.Location {
	return s.location
}

// roundTripReference is used to check that a layout can be read back.
var roundTripReference = time.Date(2025, time.March, 5, 12, 0, 0, 0, time.UTC)

// CheckRoundTrip verifies that stamps rendered in loc with layout parse
// back to the same stamp. Heartbeat status relies on this.
func CheckRoundTrip(loc *time.Location, layout string) error {
	s := NewStamper(FixedClock{At: roundTripReference}, loc, layout)
	stamp := s.Stamp()
	parsed, err := s.Parse(stamp)
	if err != nil {
		return fmt.Errorf("stamp %q cannot be parsed back: %w", stamp, err)
	}
	if again := s.Format(parsed); again != stamp {
		return fmt.Errorf("stamp %q parses back as %q", stamp, again)
	}
	return nil
}

package heartbeat

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aatumaykin/touchstamp/internal/timestamp"
)

// ErrNoHeartbeat is returned when the log is missing or holds no lines.
var ErrNoHeartbeat = errors.New("no heartbeat recorded")

// Entry is one parsed heartbeat line.
type Entry struct {
	At      time.Time
	Message string
}

// Age returns how long ago the entry was written.
func (e Entry) Age(now time.Time) time.Duration {
	return now.Sub(e.At)
}

// Stale reports whether the entry is older than maxAge.
// A non-positive maxAge never makes an entry stale.
func (e Entry) Stale(now time.Time, maxAge time.Duration) bool {
	if maxAge <= 0 {
		return false
	}
	return e.Age(now) > maxAge
}

// ParseLine splits a heartbeat line into its stamp and message. The stamp
// is the shortest space-joined prefix of the line that the stamper parses,
// so padded layouts and multi-word zone names are read back correctly.
func ParseLine(line string, stamper *timestamp.Stamper) (Entry, error) {
	line = strings.TrimRight(line, "\r\n")
	parts := strings.Split(line, " ")

	var lastErr error
	for i := 1; i <= len(parts); i++ {
		stamp := strings.Join(parts[:i], " ")
		at, err := stamper.Parse(stamp)
		if err != nil {
			lastErr = err
			continue
		}
		return Entry{At: at, Message: strings.Join(parts[i:], " ")}, nil
	}

	return Entry{}, fmt.Errorf("failed to parse heartbeat line %q: %w", line, lastErr)
}

// Last returns the newest entry in the log at path.
func Last(path string, stamper *timestamp.Stamper) (Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Entry{}, ErrNoHeartbeat
		}
		return Entry{}, fmt.Errorf("failed to read heartbeat log: %w", err)
	}

	var last string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			last = line
		}
	}
	if err := scanner.Err(); err != nil {
		return Entry{}, fmt.Errorf("failed to scan heartbeat log: %w", err)
	}
	if last == "" {
		return Entry{}, ErrNoHeartbeat
	}

	return ParseLine(last, stamper)
}

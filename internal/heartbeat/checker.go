package heartbeat

import (
	"errors"
	"time"

	"github.com/aatumaykin/touchstamp/internal/logger"
	"github.com/aatumaykin/touchstamp/internal/timestamp"
)

// Status is the outcome of a liveness check.
type Status struct {
	Found  bool
	Entry  Entry
	Age    time.Duration
	MaxAge time.Duration
	Stale  bool
}

// Healthy reports whether a heartbeat exists and is fresh.
func (s Status) Healthy() bool {
	return s.Found && !s.Stale
}

// Checker inspects the heartbeat log and decides whether it is fresh.
type Checker struct {
	path    string
	maxAge  time.Duration
	stamper *timestamp.Stamper
	logger  *logger.Logger
}

// NewChecker creates a checker for the log at path. maxAge of zero disables
// the staleness check.
func NewChecker(path string, maxAge time.Duration, stamper *timestamp.Stamper, log *logger.Logger) *Checker {
	return &Checker{
		path:    path,
		maxAge:  maxAge,
		stamper: stamper,
		logger:  log,
	}
}

// Check reads the newest heartbeat. A missing log is reported through
// Status.Found rather than as an error.
func (c *Checker) Check() (Status, error) {
	entry, err := Last(c.path, c.stamper)
	if errors.Is(err, ErrNoHeartbeat) {
		c.logger.Warn("heartbeat not found", logger.Field{Key: "path", Value: c.path})
		return Status{}, nil
	}
	if err != nil {
		return Status{}, err
	}

	now := c.stamper.Now()
	status := Status{
		Found:  true,
		Entry:  entry,
		Age:    entry.Age(now),
		MaxAge: c.maxAge,
		Stale:  entry.Stale(now, c.maxAge),
	}

	if status.Stale {
		c.logger.Warn("heartbeat is stale",
			logger.Field{Key: "age", Value: status.Age},
			logger.Field{Key: "max_age", Value: c.maxAge})
	} else {
		c.logger.Debug("heartbeat is fresh", logger.Field{Key: "age", Value: status.Age})
	}

	return status, nil
}

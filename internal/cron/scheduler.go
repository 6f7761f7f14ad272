// Package cron runs touch tasks on cron schedules.
// It uses robfig/cron/v3 with the stamp zone as the schedule location, so
// "0 9 * * *" means 09:00 in the configured fixed-offset zone.
package cron

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/aatumaykin/touchstamp/internal/logger"
)

// Task is the unit of work a job runs.
type Task func(ctx context.Context) error

var parser = cron.NewParser(cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor)

// ValidateSpec checks a cron expression. Five and six field forms and
// descriptors such as "@hourly" are accepted.
func ValidateSpec(spec string) error {
	if _, err := parser.Parse(spec); err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", spec, err)
	}
	return nil
}

// Scheduler manages named jobs.
type Scheduler struct {
	cron    *cron.Cron
	logger  *logger.Logger
	ctx     context.Context
	cancel  context.CancelFunc
	started bool
	mu      sync.RWMutex

	entries map[string]cron.EntryID
}

// NewScheduler creates a scheduler evaluating schedules in loc.
func NewScheduler(loc *time.Location, log *logger.Logger) *Scheduler {
	if loc == nil {
		loc = time.Local
	}
	return &Scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithParser(parser),
			cron.WithChain(cron.Recover(newCronLogger(log))),
		),
		logger:  log,
		entries: make(map[string]cron.EntryID),
	}
}

// AddJob registers task under name on spec. Names must be unique.
func (s *Scheduler) AddJob(name, spec string, task Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.entries[name]; exists {
		return fmt.Errorf("job %q already registered", name)
	}

	entryID, err := s.cron.AddFunc(spec, func() {
		s.execute(name, task)
	})
	if err != nil {
		return fmt.Errorf("invalid cron expression %q: %w", spec, err)
	}
	s.entries[name] = entryID

	s.logger.Info("job scheduled",
		logger.Field{Key: "job", Value: name},
		logger.Field{Key: "schedule", Value: spec})
	return nil
}

// Start begins running jobs. Jobs receive a context derived from ctx.
func (s *Scheduler) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return fmt.Errorf("scheduler already started")
	}

	s.ctx, s.cancel = context.WithCancel(ctx)
	s.started = true
	s.cron.Start()
	s.logger.Info("scheduler started", logger.Field{Key: "jobs", Value: len(s.entries)})
	return nil
}

// Stop halts scheduling and cancels the job context. The returned context
// is done once running jobs have finished.
func (s *Scheduler) Stop() (context.Context, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return nil, fmt.Errorf("scheduler not started")
	}

	done := s.cron.Stop()
	s.cancel()
	s.started = false
	s.logger.Info("scheduler stopped")
	return done, nil
}

// Jobs returns registered job names in sorted order.
func (s *Scheduler) Jobs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.entries))
	for name := range s.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Next returns the next activation time of the named job. The zero time is
// returned for unknown jobs or before Start.
func (s *Scheduler) Next(name string) time.Time {
	s.mu.RLock()
	id, ok := s.entries[name]
	s.mu.RUnlock()
	if !ok {
		return time.Time{}
	}
	return s.cron.Entry(id).Next
}

func (s *Scheduler) execute(name string, task Task) {
	s.mu.RLock()
	ctx := s.ctx
	s.mu.RUnlock()
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	err := task(ctx)
	duration := time.Since(start)

	if err != nil {
		s.logger.Error("job failed", err,
			logger.Field{Key: "job", Value: name},
			logger.Field{Key: "duration", Value: duration})
		return
	}
	s.logger.Debug("job completed",
		logger.Field{Key: "job", Value: name},
		logger.Field{Key: "duration", Value: duration})
}

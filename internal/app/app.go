// Package app wires configuration, the touch operations, the scheduler and
// metrics into the operations exposed by the touchstamp CLI.
package app

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/aatumaykin/touchstamp/internal/config"
	"github.com/aatumaykin/touchstamp/internal/constants"
	"github.com/aatumaykin/touchstamp/internal/heartbeat"
	"github.com/aatumaykin/touchstamp/internal/logger"
	"github.com/aatumaykin/touchstamp/internal/metrics"
	"github.com/aatumaykin/touchstamp/internal/readme"
	"github.com/aatumaykin/touchstamp/internal/repo"
	"github.com/aatumaykin/touchstamp/internal/timestamp"
)

// App holds the components built from one configuration.
type App struct {
	config  *config.Config
	logger  *logger.Logger
	root    string
	stamper *timestamp.Stamper

	heartbeat *heartbeat.Writer
	readme    *readme.Updater

	registry *prometheus.Registry
	metrics  *metrics.Metrics
}

// Options adjust construction, mostly for tests.
type Options struct {
	Clock timestamp.Clock // nil means the system clock
}

// New builds an App. The repository root is cfg.Repo.Root when set,
// otherwise it is searched upward from the working directory.
func New(cfg *config.Config, log *logger.Logger, opts Options) (*App, error) {
	root, err := resolveRoot(cfg.Repo.Root)
	if err != nil {
		return nil, err
	}

	stamper, err := cfg.Stamper(opts.Clock)
	if err != nil {
		return nil, fmt.Errorf("invalid stamp layout: %w", err)
	}

	updater, err := readme.NewUpdater(root, cfg.Readme.Path, cfg.Readme.Pattern, cfg.Readme.Template, stamper, log)
	if err != nil {
		return nil, err
	}

	registry := prometheus.NewRegistry()

	return &App{
		config:    cfg,
		logger:    log,
		root:      root,
		stamper:   stamper,
		heartbeat: heartbeat.NewWriter(root, cfg.Heartbeat.Path, cfg.Heartbeat.Message, stamper, log),
		readme:    updater,
		registry:  registry,
		metrics:   metrics.New(registry),
	}, nil
}

// resolveRoot uses an explicit root as given and otherwise searches upward
// from the working directory.
func resolveRoot(explicit string) (string, error) {
	if explicit == "" {
		return repo.FindRoot(".")
	}
	root, err := filepath.Abs(explicit)
	if err != nil {
		return "", fmt.Errorf("failed to resolve root %s: %w", explicit, err)
	}
	return root, nil
}

// Root returns the resolved repository root.
func (a *App) Root() string {
	return a.root
}

// TouchHeartbeat appends one line to the heartbeat log.
func (a *App) TouchHeartbeat(ctx context.Context) (heartbeat.Result, error) {
	start := time.Now()
	result, err := a.heartbeat.Touch(ctx)
	a.metrics.Observe(constants.TargetHeartbeat, start, err)
	if err != nil {
		return result, err
	}

	a.logger.Info("heartbeat written",
		logger.Field{Key: "path", Value: result.RelPath},
		logger.Field{Key: "stamp", Value: a.stamper.Format(result.At)})
	return result, nil
}

// TouchReadme rewrites the stamp line of the configured document.
func (a *App) TouchReadme(ctx context.Context) (readme.Result, error) {
	start := time.Now()
	result, err := a.readme.Update(ctx)
	a.metrics.Observe(constants.TargetReadme, start, err)
	if err != nil {
		return result, err
	}

	a.logger.Info("document stamped",
		logger.Field{Key: "path", Value: result.RelPath},
		logger.Field{Key: "changed", Value: result.Changed})
	return result, nil
}

// HeartbeatStatus inspects the heartbeat log. maxAge overrides
// heartbeat.max_age when positive.
func (a *App) HeartbeatStatus(maxAge time.Duration) (heartbeat.Status, error) {
	if maxAge <= 0 {
		configured, err := a.config.MaxAge()
		if err != nil {
			return heartbeat.Status{}, err
		}
		maxAge = configured
	}
	return heartbeat.NewChecker(a.heartbeat.Path(), maxAge, a.stamper, a.logger).Check()
}

// HeartbeatRelPath returns the heartbeat log path relative to the root.
func (a *App) HeartbeatRelPath() string {
	return repo.Rel(a.root, a.heartbeat.Path())
}

// ReadmeRelPath returns the document path relative to the root.
func (a *App) ReadmeRelPath() string {
	return repo.Rel(a.root, a.readme.Path())
}

// Stamper returns the stamper shared by every operation.
func (a *App) Stamper() *timestamp.Stamper {
	return a.stamper
}

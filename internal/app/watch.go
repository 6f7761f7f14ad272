package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/aatumaykin/touchstamp/internal/constants"
	"github.com/aatumaykin/touchstamp/internal/cron"
	"github.com/aatumaykin/touchstamp/internal/logger"
	"github.com/aatumaykin/touchstamp/internal/metrics"
	"github.com/aatumaykin/touchstamp/internal/version"
)

// ErrNoSchedules is returned by Watch when no job has a schedule.
var ErrNoSchedules = errors.New("no schedules configured")

const shutdownTimeout = 10 * time.Second

// Watch runs the scheduled touches until ctx is cancelled. When
// metrics.listen is set the Prometheus endpoint is served alongside.
func (a *App) Watch(ctx context.Context) error {
	scheduler, err := a.buildScheduler()
	if err != nil {
		return err
	}

	var server *http.Server
	if a.config.Metrics.Listen != "" {
		listener, err := net.Listen("tcp", a.config.Metrics.Listen)
		if err != nil {
			return fmt.Errorf("failed to listen on %s: %w", a.config.Metrics.Listen, err)
		}
		server = a.metricsServer()
		go func() {
			if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.logger.Error("metrics server failed", err)
			}
		}()
		a.logger.Info("metrics endpoint listening",
			logger.Field{Key: "addr", Value: listener.Addr().String()},
			logger.Field{Key: "path", Value: a.config.Metrics.Path})
	}

	a.logger.Info(version.FormatWatchBanner(),
		logger.Field{Key: "root", Value: a.root},
		logger.Field{Key: "zone", Value: a.stamper.Location().String()})

	if err := scheduler.Start(ctx); err != nil {
		return err
	}
	for _, name := range scheduler.Jobs() {
		a.logger.Info("next run",
			logger.Field{Key: "job", Value: name},
			logger.Field{Key: "at", Value: a.stamper.Format(scheduler.Next(name))})
	}

	<-ctx.Done()
	a.logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	done, err := scheduler.Stop()
	if err != nil {
		return err
	}
	select {
	case <-done.Done():
	case <-shutdownCtx.Done():
		a.logger.Warn("timed out waiting for running jobs")
	}

	if server != nil {
		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to stop metrics server: %w", err)
		}
	}

	a.logger.Info("stopped")
	return nil
}

func (a *App) buildScheduler() (*cron.Scheduler, error) {
	scheduler := cron.NewScheduler(a.stamper.Location(), a.logger)

	if spec := a.config.Schedule.Heartbeat; spec != "" {
		err := scheduler.AddJob(constants.TargetHeartbeat, spec, func(ctx context.Context) error {
			_, err := a.TouchHeartbeat(ctx)
			return err
		})
		if err != nil {
			return nil, err
		}
	}

	if spec := a.config.Schedule.Readme; spec != "" {
		err := scheduler.AddJob(constants.TargetReadme, spec, func(ctx context.Context) error {
			_, err := a.TouchReadme(ctx)
			return err
		})
		if err != nil {
			return nil, err
		}
	}

	if len(scheduler.Jobs()) == 0 {
		return nil, ErrNoSchedules
	}
	return scheduler, nil
}

func (a *App) metricsServer() *http.Server {
	mux := http.NewServeMux()
	mux.Handle(a.config.Metrics.Path, metrics.Handler(a.registry))
	return &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
}

// Package scheduler runs the periodic maintenance jobs of the ledger server.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/dtroode/cipherledger-server/internal/logger"
)

// DefaultJobTimeout bounds a single job run.
const DefaultJobTimeout = 30 * time.Second

// Purger drops expired short-retention records.
type Purger interface {
	PurgeExpired(ctx context.Context) (int64, error)
}

// Archiver copies new events to long-term storage.
type Archiver interface {
	Archive(ctx context.Context) (int, error)
}

// cronLogger adapts the application logger to cron.Logger.
type cronLogger struct {
	logger *logger.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debug("Scheduler: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Error("Scheduler: "+msg, append(keysAndValues, "error", err)...)
}

type Scheduler struct {
	cron    *cron.Cron
	timeout time.Duration
	logger  *logger.Logger
}

// New creates a scheduler whose specs carry a leading seconds field. A job
// still running when its next tick fires skips that tick.
func New(logger *logger.Logger) *Scheduler {
	cl := cronLogger{logger: logger}

	return &Scheduler{
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		timeout: DefaultJobTimeout,
		logger:  logger,
	}
}

// AddPurge schedules purger on spec.
func (s *Scheduler) AddPurge(ctx context.Context, spec string, purger Purger) error {
	return s.add(ctx, "purge", spec, func(ctx context.Context) error {
		purged, err := purger.PurgeExpired(ctx)
		if err != nil {
			return err
		}
		if purged > 0 {
			s.logger.Info("Scheduler: expired requests purged", "count", purged)
		}
		return nil
	})
}

// AddArchive schedules archiver on spec.
func (s *Scheduler) AddArchive(ctx context.Context, spec string, archiver Archiver) error {
	return s.add(ctx, "archive", spec, func(ctx context.Context) error {
		_, err := archiver.Archive(ctx)
		return err
	})
}

func (s *Scheduler) add(ctx context.Context, name, spec string, run func(ctx context.Context) error) error {
	_, err := s.cron.AddFunc(spec, func() {
		rctx, cancel := context.WithTimeout(ctx, s.timeout)
		defer cancel()

		if err := run(rctx); err != nil {
			s.logger.Error("Scheduler: job failed", "job", name, "error", err)
		}
	})
	if err != nil {
		return fmt.Errorf("failed to schedule %s job with spec %q: %w", name, spec, err)
	}

	s.logger.Info("Scheduler: job scheduled", "job", name, "spec", spec)
	return nil
}

// Jobs reports the number of scheduled jobs.
func (s *Scheduler) Jobs() int {
	return len(s.cron.Entries())
}

func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop stops scheduling and waits for running jobs until ctx is done.
func (s *Scheduler) Stop(ctx context.Context) error {
	select {
	case <-s.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

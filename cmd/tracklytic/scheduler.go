package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tracklytic/internal/config"

	"github.com/robfig/cron/v3"
)

// job is a unit of scheduled work. now is the wall clock in the worker timezone.
type job struct {
	name string
	spec string
	run  func(ctx context.Context, now time.Time) error
}

type scheduler struct {
	cron   *cron.Cron
	loc    *time.Location
	jobs   []job
	logger *slog.Logger
	now    func() time.Time
}

func newScheduler(cfg config.WorkerConfig, jobs []job, logger *slog.Logger) (*scheduler, error) {
	loc := calendarLocation(cfg, logger)

	cl := cronLogger{logger: logger}
	s := &scheduler{
		cron: cron.New(
			cron.WithLocation(loc),
			cron.WithLogger(cl),
			cron.WithChain(cron.Recover(cl), cron.SkipIfStillRunning(cl)),
		),
		loc:    loc,
		jobs:   jobs,
		logger: logger,
		now:    time.Now,
	}

	for _, j := range jobs {
		if j.spec == "" {
			logger.Info("Job disabled", "job", j.name)
			continue
		}
		if _, err := cron.ParseStandard(j.spec); err != nil {
			return nil, fmt.Errorf("invalid schedule %q for job %s: %w", j.spec, j.name, err)
		}
	}
	return s, nil
}

// Run schedules every job and blocks until ctx is cancelled. Running jobs
// are allowed to finish.
func (s *scheduler) Run(ctx context.Context) error {
	for _, j := range s.jobs {
		if j.spec == "" {
			continue
		}
		j := j
		if _, err := s.cron.AddFunc(j.spec, func() { s.runJob(ctx, j) }); err != nil {
			return fmt.Errorf("failed to schedule job %s: %w", j.name, err)
		}
		s.logger.Info("Job scheduled", "job", j.name, "schedule", j.spec, "timezone", s.loc.String())
	}

	s.cron.Start()
	<-ctx.Done()
	s.logger.Info("Stopping scheduler")
	<-s.cron.Stop().Done()
	return nil
}

// RunOnce runs every job immediately, in order
func (s *scheduler) RunOnce(ctx context.Context) error {
	var failed int
	for _, j := range s.jobs {
		if err := s.runJob(ctx, j); err != nil {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d jobs failed", failed, len(s.jobs))
	}
	return nil
}

func (s *scheduler) runJob(ctx context.Context, j job) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	start := s.now()
	err := j.run(ctx, start.In(s.loc))
	duration := time.Since(start)
	if err != nil {
		s.logger.ErrorContext(ctx, "Job failed", "job", j.name, "duration_ms", duration.Milliseconds(), "error", err)
		return err
	}
	s.logger.InfoContext(ctx, "Job finished", "job", j.name, "duration_ms", duration.Milliseconds())
	return nil
}

// cronLogger routes cron's own messages into slog
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug("cron: "+msg, keysAndValues...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error("cron: "+msg, append(keysAndValues, "error", err)...)
}

// calendarLocation loads the timezone that decides calendar days, falling
// back to UTC.
func calendarLocation(cfg config.WorkerConfig, logger *slog.Logger) *time.Location {
	loc, err := cfg.Location()
	if err != nil {
		logger.Warn("Invalid worker timezone, falling back to UTC", "timezone", cfg.Timezone, "error", err)
		return time.UTC
	}
	return loc
}

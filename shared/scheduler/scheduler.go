package scheduler

import (
	"context"
	"fmt"
	"time"

	"video-detective/shared/logging"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
)

// Job is a unit of periodic background work.
type Job interface {
	Name() string
	RunOnce(ctx context.Context) error
}

// Scheduler runs one job on a cron schedule (with a seconds field).
type Scheduler struct {
	schedule string
	job      Job
	cron     *cron.Cron
	logger   zerolog.Logger
}

func New(schedule string, job Job) *Scheduler {
	logger := logging.WithComponent("scheduler")
	cronLog := cronLogger{logger: logger}
	return &Scheduler{
		schedule: schedule,
		job:      job,
		// Prevent overlapping runs
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithLogger(cronLog),
			cron.WithChain(cron.SkipIfStillRunning(cronLog)),
		),
		logger: logger,
	}
}

// Start registers the job and returns; the cron stops when ctx is done.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.schedule, func() {
		if err := s.RunOnce(ctx); err != nil {
			s.logger.Error().Err(err).Str("job", s.job.Name()).Msg("scheduled job failed")
		}
	})
	if err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	s.logger.Info().Str("job", s.job.Name()).Str("schedule", s.schedule).Msg("Scheduler started")
	s.cron.Start()

	go func() {
		<-ctx.Done()
		<-s.cron.Stop().Done()
		s.logger.Info().Str("job", s.job.Name()).Msg("Scheduler stopped")
	}()

	return nil
}

func (s *Scheduler) RunOnce(ctx context.Context) error {
	startTime := time.Now()
	name := s.job.Name()

	if err := s.job.RunOnce(ctx); err != nil {
		return fmt.Errorf("%s run failed after %v: %w", name, time.Since(startTime), err)
	}

	s.logger.Debug().Str("job", name).Dur("took", time.Since(startTime)).Msg("job completed")
	return nil
}

// cronLogger routes the cron library's own logging into zerolog. Its Info
// calls are per-tick chatter, so they go to debug.
type cronLogger struct {
	logger zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debug().Fields(pairs(keysAndValues)).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Error().Err(err).Fields(pairs(keysAndValues)).Msg(msg)
}

// pairs drops a dangling key; zerolog expects an even key/value list.
func pairs(keysAndValues []interface{}) []interface{} {
	return keysAndValues[:len(keysAndValues)&^1]
}

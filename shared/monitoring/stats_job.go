package monitoring

import (
	"context"

	"video-detective/shared/logging"

	"github.com/rs/zerolog"
)

// StatsJob logs the casebook summary; the bot schedules it with cron.
type StatsJob struct {
	monitor *Monitor
	logger  zerolog.Logger
}

func NewStatsJob(monitor *Monitor) *StatsJob {
	return &StatsJob{
		monitor: monitor,
		logger:  logging.WithComponent("casebook"),
	}
}

func (j *StatsJob) Name() string {
	return "Casebook Summary"
}

func (j *StatsJob) RunOnce(ctx context.Context) error {
	j.logger.Info().
		Bool("healthy", j.monitor.IsHealthy()).
		Dur("uptime", j.monitor.Uptime()).
		Msg("📋 " + j.monitor.GetStatusSummary())
	return nil
}

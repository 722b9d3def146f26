package scheduler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingJob struct {
	runs atomic.Int32
	err  error
}

func (j *countingJob) Name() string { return "counting" }

func (j *countingJob) RunOnce(ctx context.Context) error {
	j.runs.Add(1)
	return j.err
}

func TestRunOnceWrapsJobError(t *testing.T) {
	boom := errors.New("boom")
	s := New("* * * * * *", &countingJob{err: boom})

	err := s.RunOnce(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "counting run failed")
}

func TestStartRejectsBadSchedule(t *testing.T) {
	s := New("not a schedule", &countingJob{})
	assert.Error(t, s.Start(context.Background()))
}

func TestStartRunsJobUntilCancelled(t *testing.T) {
	job := &countingJob{}
	s := New("* * * * * *", job)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, s.Start(ctx))

	assert.Eventually(t, func() bool { return job.runs.Load() >= 1 }, 3*time.Second, 50*time.Millisecond)
}

func TestCronLoggerWritesThroughZerolog(t *testing.T) {
	var buf bytes.Buffer
	var logger cron.Logger = cronLogger{logger: zerolog.New(&buf).Level(zerolog.InfoLevel)}

	logger.Info("wake", "now", "09:00")
	assert.Zero(t, buf.Len(), "cron chatter stays below info")

	logger.Error(errors.New("boom"), "panic", "stack", "trace", "dangling")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "trace", entry["stack"])
	assert.Equal(t, "panic", entry["message"])
}

package monitoring

import (
	"fmt"
	"sync"
	"time"

	"video-detective/shared/logging"

	"github.com/rs/zerolog"
)

// Outcome is how a single investigation ended.
type Outcome string

const (
	OutcomeReport        Outcome = "report"
	OutcomeInvalidLink   Outcome = "invalid_link"
	OutcomeNotFound      Outcome = "not_found"
	OutcomeFetchError    Outcome = "fetch_error"
	OutcomeAnalysisError Outcome = "analysis_error"
)

// upstream reports whether the outcome says anything about the health of the
// catalog or model service.
func (o Outcome) upstream() (failed, known bool) {
	switch o {
	case OutcomeReport, OutcomeNotFound:
		return false, true
	case OutcomeFetchError, OutcomeAnalysisError:
		return true, true
	default:
		return false, false
	}
}

// Monitor keeps the casebook: outcome counts since start plus the health of
// the most recent upstream exchange. Safe for concurrent use.
type Monitor struct {
	mu             sync.Mutex
	started        time.Time
	counts         map[Outcome]int
	lastRunSuccess bool
	lastRunTime    time.Time
	logger         zerolog.Logger
}

func NewMonitor() *Monitor {
	return &Monitor{
		started: time.Now(),
		counts:  make(map[Outcome]int),
		logger:  logging.WithComponent("monitor"),
	}
}

func (m *Monitor) RecordInvestigation(outcome Outcome, duration time.Duration) {
	investigationsTotal.WithLabelValues(string(outcome)).Inc()
	investigationDuration.WithLabelValues(string(outcome)).Observe(duration.Seconds())

	m.mu.Lock()
	defer m.mu.Unlock()

	m.counts[outcome]++
	failed, known := outcome.upstream()
	if known {
		m.lastRunSuccess = !failed
		m.lastRunTime = time.Now()
	}

	if failed {
		m.logger.Warn().Str("outcome", string(outcome)).Dur("took", duration).Msg("upstream failure")
	} else {
		m.logger.Debug().Str("outcome", string(outcome)).Dur("took", duration).Msg("investigation closed")
	}
}

// Count returns how many investigations ended with outcome.
func (m *Monitor) Count(outcome Outcome) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.counts[outcome]
}

func (m *Monitor) IsHealthy() bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.lastRunTime.IsZero() {
		return true // No upstream calls yet, assume healthy
	}
	return m.lastRunSuccess
}

func (m *Monitor) GetStatusSummary() string {
	m.mu.Lock()
	defer m.mu.Unlock()

	total := 0
	for _, n := range m.counts {
		total += n
	}

	casebook := fmt.Sprintf("%d investigations (%d reports, %d invalid links, %d not found, %d fetch errors, %d analysis errors)",
		total,
		m.counts[OutcomeReport],
		m.counts[OutcomeInvalidLink],
		m.counts[OutcomeNotFound],
		m.counts[OutcomeFetchError],
		m.counts[OutcomeAnalysisError],
	)

	if m.lastRunTime.IsZero() {
		return "No upstream calls yet - " + casebook
	}
	if m.lastRunSuccess {
		return fmt.Sprintf("✅ Last upstream call: %s - %s", m.lastRunTime.Format("Jan 2 15:04"), casebook)
	}
	return fmt.Sprintf("❌ Last upstream call failed: %s - %s", m.lastRunTime.Format("Jan 2 15:04"), casebook)
}

// Uptime is the time since the monitor was created.
func (m *Monitor) Uptime() time.Duration {
	return time.Since(m.started)
}

package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// No chat or video IDs in labels.
var (
	investigationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "video_detective_investigations_total",
		Help: "Total number of investigations, by outcome.",
	}, []string{"outcome"})

	investigationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "video_detective_investigation_duration_seconds",
		Help:    "Wall time from link to final reply, by outcome.",
		Buckets: []float64{0.25, 0.5, 1, 2.5, 5, 10, 20, 40},
	}, []string{"outcome"})
)

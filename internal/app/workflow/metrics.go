package workflow

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts workflow runs and times each stage.
type Metrics struct {
	runs          *prometheus.CounterVec
	stageDuration *prometheus.HistogramVec
}

// NewMetrics registers the workflow collectors with reg. A nil reg yields
// unregistered collectors, which is what tests want.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "atx",
			Subsystem: "workflow",
			Name:      "runs_total",
			Help:      "Transcription workflow runs by outcome and whether a translation was requested.",
		}, []string{"outcome", "translated"}),
		stageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "atx",
			Subsystem: "workflow",
			Name:      "stage_duration_seconds",
			Help:      "Duration of each workflow stage.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60, 120, 300},
		}, []string{"stage"}),
	}
	if reg != nil {
		reg.MustRegister(m.runs, m.stageDuration)
	}
	return m
}

func (m *Metrics) observeRun(outcome string, translated bool) {
	t := "false"
	if translated {
		t = "true"
	}
	m.runs.WithLabelValues(outcome, t).Inc()
}

func (m *Metrics) observeStage(stage Stage, seconds float64) {
	m.stageDuration.WithLabelValues(string(stage)).Observe(seconds)
}

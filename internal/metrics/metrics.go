// Package metrics exposes Prometheus collectors for question generation
// and scoring.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "qcm"

// Metrics groups the collectors. A nil *Metrics records nothing.
type Metrics struct {
	questions    *prometheus.CounterVec
	failures     *prometheus.CounterVec
	dedupRetries prometheus.Counter
	scores       prometheus.Histogram
	submissions  *prometheus.CounterVec
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		questions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "questions_generated_total",
			Help:      "Questions generated, by subject and kind.",
		}, []string{"subject", "kind"}),
		failures: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "generation_failures_total",
			Help:      "Generation requests that failed, by error class.",
		}, []string{"reason"}),
		dedupRetries: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dedup_retries_total",
			Help:      "Questions regenerated because the session already saw them.",
		}),
		scores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "submission_score",
			Help:      "Time-weighted scores of submitted quizzes.",
			Buckets:   []float64{0, 50, 100, 200, 400, 800, 1600},
		}),
		submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Score submissions, by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.questions, m.failures, m.dedupRetries, m.scores, m.submissions)
	return m
}

func (m *Metrics) QuestionGenerated(subject, kind string) {
	if m == nil {
		return
	}
	m.questions.WithLabelValues(subject, kind).Inc()
}

func (m *Metrics) GenerationFailed(reason string) {
	if m == nil {
		return
	}
	m.failures.WithLabelValues(reason).Inc()
}

func (m *Metrics) DedupRetry() {
	if m == nil {
		return
	}
	m.dedupRetries.Inc()
}

// Scored records an accepted submission.
func (m *Metrics) Scored(score float64) {
	if m == nil {
		return
	}
	m.scores.Observe(score)
	m.submissions.WithLabelValues("scored").Inc()
}

func (m *Metrics) Rejected(reason string) {
	if m == nil {
		return
	}
	m.submissions.WithLabelValues(reason).Inc()
}

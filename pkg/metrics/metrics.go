package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder tracks how queries are routed and answered.
type Recorder struct {
	answers   *prometheus.CounterVec
	fallbacks prometheus.Counter
	latency   *prometheus.HistogramVec
}

// NewRecorder registers the helpdesk collectors with reg.
// Tests pass a fresh prometheus.NewRegistry() to avoid duplicate registration.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		answers: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "helpdesk",
			Subsystem: "chat",
			Name:      "answers_total",
			Help:      "Answered queries by intent and result status",
		}, []string{"intent", "status"}),
		fallbacks: factory.NewCounter(prometheus.CounterOpts{
			Namespace: "helpdesk",
			Subsystem: "chat",
			Name:      "fallback_total",
			Help:      "Queries answered by the fallback chain instead of a keyword group",
		}),
		latency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "helpdesk",
			Subsystem: "chat",
			Name:      "answer_seconds",
			Help:      "Time spent answering a query",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"intent"}),
	}
}

// ObserveAnswer records one answered query.
func (r *Recorder) ObserveAnswer(intent, status string, fallback bool, elapsed time.Duration) {
	if r == nil {
		return
	}
	r.answers.WithLabelValues(intent, status).Inc()
	if fallback {
		r.fallbacks.Inc()
	}
	r.latency.WithLabelValues(intent).Observe(elapsed.Seconds())
}

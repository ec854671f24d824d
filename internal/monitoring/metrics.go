package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus instruments for one run.
type Metrics struct {
	ChecksTotal  *prometheus.CounterVec
	RetriesTotal prometheus.Counter
	CheckSeconds prometheus.Histogram
}

// NewMetrics registers the instruments on reg. Tests pass their own
// registry; the binary uses prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		ChecksTotal: f.NewCounterVec(prometheus.CounterOpts{
			Name: "webstatus_checks_total",
			Help: "Checks reaching a terminal outcome.",
		}, []string{"outcome"}), // 'responded' or 'failed'
		RetriesTotal: f.NewCounter(prometheus.CounterOpts{
			Name: "webstatus_retries_total",
			Help: "Additional attempts made after a transport failure.",
		}),
		CheckSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "webstatus_check_seconds",
			Help:    "Wall-clock time per target across all attempts.",
			Buckets: prometheus.DefBuckets,
		}),
	}
}

// ObserveCheck records one terminal outcome. Nil-safe so the scheduler
// can run without metrics wired, as in most tests.
func (m *Metrics) ObserveCheck(responded bool, seconds float64) {
	if m == nil {
		return
	}
	outcome := "failed"
	if responded {
		outcome = "responded"
	}
	m.ChecksTotal.WithLabelValues(outcome).Inc()
	m.CheckSeconds.Observe(seconds)
}

func (m *Metrics) AddRetries(n int) {
	if m == nil || n <= 0 {
		return
	}
	m.RetriesTotal.Add(float64(n))
}

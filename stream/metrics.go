package stream

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics exports decoder Stats as Prometheus counters.
type Metrics struct {
	Codewords     prometheus.Counter
	Corrected     prometheus.Counter
	Uncorrectable prometheus.Counter
}

// NewMetrics creates the counters and registers them with reg, if not nil.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Codewords: f.NewCounter(prometheus.CounterOpts{
			Namespace: "qc16",
			Name:      "codewords_total",
			Help:      "Number of codewords decoded.",
		}),
		Corrected: f.NewCounter(prometheus.CounterOpts{
			Namespace: "qc16",
			Name:      "corrected_total",
			Help:      "Number of codewords with a nonzero syndrome that were corrected.",
		}),
		Uncorrectable: f.NewCounter(prometheus.CounterOpts{
			Namespace: "qc16",
			Name:      "uncorrectable_total",
			Help:      "Number of codewords with a syndrome the correction table declines.",
		}),
	}
}

// Observe adds a batch of decoder stats. A nil Metrics ignores it.
func (m *Metrics) Observe(s Stats) {
	if m == nil {
		return
	}
	m.Codewords.Add(float64(s.Codewords))
	m.Corrected.Add(float64(s.Corrected))
	m.Uncorrectable.Add(float64(s.Uncorrectable))
}

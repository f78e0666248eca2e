package auth

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	resultAccepted = "accepted"
	resultRejected = "rejected"
)

type metrics struct {
	requests *prometheus.CounterVec
	duration prometheus.Histogram
}

func newMetrics(registry prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "truthlinked_auth_requests_total",
			Help: "Signature verification outcomes by result and rejection reason.",
		}, []string{"result", "reason"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "truthlinked_auth_verify_duration_seconds",
			Help:    "Time spent verifying request signatures.",
			Buckets: prometheus.DefBuckets,
		}),
	}

	if err := registerCollector(registry, m.requests); err != nil {
		return nil, err
	}
	if err := registerCollector(registry, m.duration); err != nil {
		return nil, err
	}

	return m, nil
}

func registerCollector(registry prometheus.Registerer, collector prometheus.Collector) error {
	if err := registry.Register(collector); err != nil {
		if _, ok := err.(prometheus.AlreadyRegisteredError); ok {
			return nil
		}
		return err
	}
	return nil
}

func (m *metrics) observe(result, reason string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(result, reason).Inc()
	m.duration.Observe(elapsed.Seconds())
}

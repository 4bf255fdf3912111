package healthendpoint

import (
	"github.com/prometheus/client_golang/prometheus"
)

type RateLimitCollector interface {
	prometheus.Collector
	IncAdmitted(limiter string)
	IncRejected(limiter string)
	SetActiveWindows(limiter string, count int)
}

type rateLimitCollector struct {
	admitted      *prometheus.CounterVec
	rejected      *prometheus.CounterVec
	activeWindows *prometheus.GaugeVec
}

func NewRateLimitCollector(namespace, subSystem string) RateLimitCollector {
	return &rateLimitCollector{
		admitted: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subSystem,
				Name:      "admitted_requests_total",
				Help:      "Number of requests admitted by a rate limiter",
			}, []string{"limiter"}),
		rejected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subSystem,
				Name:      "rejected_requests_total",
				Help:      "Number of requests rejected by a rate limiter",
			}, []string{"limiter"}),
		activeWindows: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subSystem,
				Name:      "active_windows",
				Help:      "Number of client windows held by a rate limiter after the last sweep",
			}, []string{"limiter"}),
	}
}

func (c *rateLimitCollector) Describe(ch chan<- *prometheus.Desc) {
	c.admitted.Describe(ch)
	c.rejected.Describe(ch)
	c.activeWindows.Describe(ch)
}

func (c *rateLimitCollector) Collect(ch chan<- prometheus.Metric) {
	c.admitted.Collect(ch)
	c.rejected.Collect(ch)
	c.activeWindows.Collect(ch)
}

func (c *rateLimitCollector) IncAdmitted(limiter string) {
	c.admitted.WithLabelValues(limiter).Inc()
}

func (c *rateLimitCollector) IncRejected(limiter string) {
	c.rejected.WithLabelValues(limiter).Inc()
}

func (c *rateLimitCollector) SetActiveWindows(limiter string, count int) {
	c.activeWindows.WithLabelValues(limiter).Set(float64(count))
}

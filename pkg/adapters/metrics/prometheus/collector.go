package prometheus

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	dto "github.com/prometheus/client_model/go"
)

// Collector tracks request totals for the demo service.
//
// It owns a private registry so the /metrics exposition contains exactly
// the metrics the service defines, without the default Go runtime
// collectors.
type Collector struct {
	registry      *prometheus.Registry
	requestsTotal prometheus.Counter
}

// NewCollector creates a new Prometheus metrics collector
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests received since process start.",
		},
	)
	registry.MustRegister(requestsTotal)

	return &Collector{
		registry:      registry,
		requestsTotal: requestsTotal,
	}
}

// IncRequests increments the request counter. Counter increments are
// atomic, so concurrent handlers never lose an update.
func (c *Collector) IncRequests() {
	c.requestsTotal.Inc()
}

// Requests reports the current value of the request counter.
func (c *Collector) Requests() float64 {
	m := &dto.Metric{}
	if err := c.requestsTotal.Write(m); err != nil {
		return 0
	}
	return m.GetCounter().GetValue()
}

// Handler returns the text exposition handler for the collector registry.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

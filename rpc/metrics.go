package rpc

import (
	"github.com/blocknative/zmsg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	Calls    *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

func (c *Client) initMetrics() {
	c.m.Calls = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: "rpc",
		Name:      "calls_total",
		Help:      "Number of JSON-RPC calls by method and outcome",
	}, []string{"method", "result"})

	c.m.Duration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: metrics.Namespace,
		Subsystem: "rpc",
		Name:      "call_duration_seconds",
		Help:      "Duration of JSON-RPC round trips",
		Buckets:   []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
	}, []string{"method"})
}

func (c *Client) AttachMetrics(m *metrics.Metrics) {
	m.Register(c.m.Calls)
	m.Register(c.m.Duration)
}

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const Namespace = "zmsg"

type Metrics struct {
	registry  *prometheus.Registry
	gatherers prometheus.Gatherers
}

func NewMetrics() (m *Metrics) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	reg.MustRegister(collectors.NewGoCollector())

	return &Metrics{registry: reg, gatherers: prometheus.Gatherers{reg}}
}

func (m *Metrics) Register(cs prometheus.Collector) error {
	return m.registry.Register(cs)
}

// WriteTextfile dumps every registered metric in the text exposition format,
// for pickup by a node_exporter textfile collector.
func (m *Metrics) WriteTextfile(filename string) error {
	return prometheus.WriteToTextfile(filename, m.gatherers)
}

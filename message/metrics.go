package message

import (
	"github.com/blocknative/zmsg/metrics"
	"github.com/prometheus/client_golang/prometheus"
)

type SenderMetrics struct {
	Sends *prometheus.CounterVec
}

func (s *Sender) initMetrics() {
	s.m.Sends = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: metrics.Namespace,
		Subsystem: "message",
		Name:      "sends_total",
		Help:      "Number of message sends by the state they ended in",
	}, []string{"state"})
}

func (s *Sender) AttachMetrics(m *metrics.Metrics) {
	m.Register(s.m.Sends)
}

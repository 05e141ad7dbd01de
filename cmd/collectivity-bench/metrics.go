package main

import (
	"github.com/prometheus/client_golang/prometheus"
)

type Metrics struct {
	registry      *prometheus.Registry
	insertSeconds *prometheus.GaugeVec
	length        *prometheus.GaugeVec
}

func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		insertSeconds: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "collectivity_bench_insert_seconds",
			Help: "Time spent inserting every item into the container.",
		}, []string{"container"}),
		length: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "collectivity_bench_len",
			Help: "Length reported by the container after the inserts.",
		}, []string{"container"}),
	}
	m.registry.MustRegister(m.insertSeconds, m.length)
	return m
}

func (m *Metrics) Observe(r Result) {
	m.insertSeconds.WithLabelValues(r.Container).Set(r.Elapsed.Seconds())
	m.length.WithLabelValues(r.Container).Set(float64(r.Len))
}

// WriteFile writes the metrics in the Prometheus text format,
// so a node exporter textfile collector can pick them up.
func (m *Metrics) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

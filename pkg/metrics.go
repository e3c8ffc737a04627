package gdlint

import (
	"os"

	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	registry *prometheus.Registry

	// Counters
	nextConnectionID prometheus.CounterFunc
	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter

	// Gauges
	openConnections prometheus.GaugeFunc
	openRequests    prometheus.GaugeFunc

	// Latency histograms
	validateLatency prometheus.Summary
}

func newMetrics(l *Linter) *metrics {
	m := &metrics{
		nextConnectionID: prometheus.NewCounterFunc(
			prometheus.CounterOpts{
				Name: "next_connection_id",
				Help: "number of connections to this server over its lifetime",
			},
			func() float64 {
				return float64(l.nextConnectionID)
			},
		),
		cacheHits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "verdict_cache_hits",
				Help: "number of validation requests answered from the verdict cache",
			},
		),
		cacheMisses: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "verdict_cache_misses",
				Help: "number of validation requests that had to run the analysis",
			},
		),
		openConnections: prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "open_connections",
				Help: "number of connections currently open",
			},
			func() float64 {
				return float64(len(l.connections))
			},
		),
		openRequests: prometheus.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "open_requests",
				Help: "number of requests currently in flight across all connections",
			},
			func() float64 {
				// TODO: synchronize access to l.connections...
				count := 0
				for _, conn := range l.connections {
					count += len(conn.requests)
				}
				return float64(count)
			},
		),
		validateLatency: prometheus.NewSummary(
			prometheus.SummaryOpts{
				Name: "validate_latency_ns",
				Help: "latency to parse and validate a rulesheet on a cache miss",
			},
		),
	}
	m.registry = prometheus.NewPedanticRegistry()
	reg := m.registry

	reg.MustRegister(prometheus.NewProcessCollector(os.Getpid(), ""))
	reg.MustRegister(prometheus.NewGoCollector())

	reg.MustRegister(m.nextConnectionID)
	reg.MustRegister(m.cacheHits)
	reg.MustRegister(m.cacheMisses)
	reg.MustRegister(m.openConnections)
	reg.MustRegister(m.openRequests)
	reg.MustRegister(m.validateLatency)
	return m
}

package metric

import (
	"net/http"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "respkv"

// Registry holds all application metrics on its own prometheus registry.
type Registry struct {
	registry *prometheus.Registry

	ConnectionsTotal  prometheus.Counter
	ConnectionsActive prometheus.Gauge

	CommandsTotal   *prometheus.CounterVec
	CommandErrors   *prometheus.CounterVec
	CommandDuration *prometheus.HistogramVec

	DecodeErrors *prometheus.CounterVec
}

// NewRegistry creates a registry with the application metrics plus the Go
// runtime and process collectors.
func NewRegistry() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),

		ConnectionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "connections_total",
			Help:      "Total number of accepted client connections.",
		}),
		ConnectionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "connections_active",
			Help:      "Number of open client connections.",
		}),
		CommandsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "commands_total",
			Help:      "Total number of executed commands.",
		}, []string{"command"}),
		CommandErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "command_errors_total",
			Help:      "Total number of rejected commands by error code.",
		}, []string{"code"}),
		CommandDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "command_duration_seconds",
			Help:      "Command execution latency.",
			Buckets:   []float64{.00001, .00005, .0001, .0005, .001, .005, .01, .05, .1},
		}, []string{"command"}),
		DecodeErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "decode_errors_total",
			Help:      "Total number of connections closed on a framing error, by kind.",
		}, []string{"kind"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.ConnectionsTotal,
		r.ConnectionsActive,
		r.CommandsTotal,
		r.CommandErrors,
		r.CommandDuration,
		r.DecodeErrors,
	)

	return r
}

// MustRegister registers additional collectors, such as a StoreCollector.
func (r *Registry) MustRegister(cs ...prometheus.Collector) {
	r.registry.MustRegister(cs...)
}

// ConnOpened records an accepted connection.
func (r *Registry) ConnOpened() {
	r.ConnectionsTotal.Inc()
	r.ConnectionsActive.Inc()
}

// ConnClosed records a closed connection.
func (r *Registry) ConnClosed() {
	r.ConnectionsActive.Dec()
}

// RecordCommand records one executed command and its latency.
func (r *Registry) RecordCommand(name string, d time.Duration) {
	r.CommandsTotal.WithLabelValues(name).Inc()
	r.CommandDuration.WithLabelValues(name).Observe(d.Seconds())
}

// RecordCommandError records a rejected command by domain error code.
func (r *Registry) RecordCommandError(code string) {
	if code == "" {
		code = "unknown"
	}
	r.CommandErrors.WithLabelValues(code).Inc()
}

// RecordDecodeError records a framing error by kind.
func (r *Registry) RecordDecodeError(kind string) {
	r.DecodeErrors.WithLabelValues(kind).Inc()
}

// Handler returns the /metrics handler for this registry.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

var (
	globalOnce sync.Once
	global     *Registry
)

// Global returns the process-wide registry.
func Global() *Registry {
	globalOnce.Do(func() {
		global = NewRegistry()
	})
	return global
}

// Handler returns the /metrics handler of the process-wide registry.
func Handler() http.Handler {
	return Global().Handler()
}

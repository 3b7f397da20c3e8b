package httpserver

import (
	"net/http"

	"github.com/yndnr/respkv-go/internal/telemetry/logger"
	"github.com/yndnr/respkv-go/internal/telemetry/metric"
)

// RouterConfig holds configuration for the admin router.
type RouterConfig struct {
	// Metrics is the registry served at /metrics. Nil uses metric.Global().
	Metrics *metric.Registry

	// Ready reports whether the RESP server accepts connections.
	// Nil means always ready.
	Ready func() bool

	// Logger for request logging. Nil uses logger.Default().
	Logger logger.Logger
}

// NewRouter creates the admin router.
func NewRouter(cfg *RouterConfig) http.Handler {
	if cfg == nil {
		cfg = &RouterConfig{}
	}
	log := cfg.Logger
	if log == nil {
		log = logger.Default()
	}
	reg := cfg.Metrics
	if reg == nil {
		reg = metric.Global()
	}

	common := []Middleware{RequestID(), Recover(log), AccessLog(log)}

	mux := http.NewServeMux()
	mux.Handle("GET /health", Chain(healthHandler(), common...))
	mux.Handle("GET /ready", Chain(readyHandler(cfg.Ready), common...))
	mux.Handle("GET /metrics", Chain(reg.Handler(), common...))
	return mux
}

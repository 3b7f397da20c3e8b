package redisserver

import (
	"context"
	"errors"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/yndnr/respkv-go/internal/core/service"
	"github.com/yndnr/respkv-go/internal/telemetry/logger"
	"github.com/yndnr/respkv-go/internal/telemetry/metric"
)

// Config holds the RESP server configuration.
type Config struct {
	// Addr is the TCP listen address.
	Addr string
	// ReadBufferSize is the size of each socket read.
	ReadBufferSize int
	// IdleTimeout closes a connection that sends nothing for this long.
	// Zero disables it.
	IdleTimeout time.Duration
	// WriteTimeout bounds each reply flush. Zero disables it.
	WriteTimeout time.Duration
	// RateLimit is the per-connection rate in commands per second.
	// Zero disables throttling.
	RateLimit float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Addr:           "127.0.0.1:6379",
		ReadBufferSize: 4096,
		IdleTimeout:    5 * time.Minute,
		WriteTimeout:   30 * time.Second,
	}
}

// Server is the RESP protocol server.
type Server struct {
	cfg     *Config
	exec    *service.Executor
	logger  logger.Logger
	metrics *metric.Registry

	ln      net.Listener
	cancel  context.CancelFunc
	running atomic.Bool
	wg      sync.WaitGroup

	mu    sync.Mutex
	conns map[*Conn]struct{}
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets the server logger.
func WithLogger(l logger.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

// WithMetrics sets the metrics registry.
func WithMetrics(r *metric.Registry) Option {
	return func(s *Server) {
		s.metrics = r
	}
}

// New creates a RESP server that executes commands with exec.
func New(cfg *Config, exec *service.Executor, opts ...Option) *Server {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cfg.ReadBufferSize <= 0 {
		cfg.ReadBufferSize = DefaultConfig().ReadBufferSize
	}

	s := &Server{
		cfg:   cfg,
		exec:  exec,
		conns: make(map[*Conn]struct{}),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logger.Default()
	}
	if s.metrics == nil {
		s.metrics = metric.NewRegistry()
	}
	return s
}

// Start binds the listener and accepts connections in the background.
// Listen errors are returned directly.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	s.ln = ln
	s.cancel = cancel
	s.running.Store(true)

	s.logger.Info("resp server listening", "addr", ln.Addr().String())

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		if err := s.acceptLoop(ctx, ln); err != nil {
			s.logger.Error("resp accept loop stopped", "error", err)
		}
	}()
	return nil
}

// Addr returns the bound listen address, or nil before Start.
func (s *Server) Addr() net.Addr {
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Shutdown closes the listener and every live connection, then waits for
// their goroutines or ctx.
func (s *Server) Shutdown(ctx context.Context) error {
	if !s.running.CompareAndSwap(true, false) {
		return nil
	}
	s.cancel()

	err := s.ln.Close()

	s.mu.Lock()
	for c := range s.conns {
		_ = c.Close()
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}

	if errors.Is(err, net.ErrClosed) {
		return nil
	}
	return err
}

func (s *Server) acceptLoop(ctx context.Context, ln net.Listener) error {
	for {
		nc, err := ln.Accept()
		if err != nil {
			if !s.running.Load() || errors.Is(err, net.ErrClosed) {
				return nil
			}
			var netErr net.Error
			if errors.As(err, &netErr) && netErr.Timeout() {
				s.logger.Warn("temporary accept error", "error", err)
				time.Sleep(10 * time.Millisecond)
				continue
			}
			return err
		}

		c := newConn(nc, s.cfg.RateLimit)
		if !s.track(c) {
			_ = c.Close()
			return nil
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer s.untrack(c)
			s.serveConn(ctx, c)
		}()
	}
}

// track registers c unless the server is shutting down.
func (s *Server) track(c *Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running.Load() {
		return false
	}
	s.conns[c] = struct{}{}
	s.metrics.ConnOpened()
	return true
}

func (s *Server) untrack(c *Conn) {
	s.mu.Lock()
	delete(s.conns, c)
	s.mu.Unlock()
	s.metrics.ConnClosed()
}

// ConnCount returns the number of live connections.
func (s *Server) ConnCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.conns)
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/yndnr/respkv-go/internal/core/service"
	"github.com/yndnr/respkv-go/internal/infra/buildinfo"
	"github.com/yndnr/respkv-go/internal/infra/confloader"
	"github.com/yndnr/respkv-go/internal/infra/shutdown"
	"github.com/yndnr/respkv-go/internal/server/config"
	"github.com/yndnr/respkv-go/internal/server/httpserver"
	"github.com/yndnr/respkv-go/internal/server/redisserver"
	"github.com/yndnr/respkv-go/internal/storage/memory"
	"github.com/yndnr/respkv-go/internal/telemetry/logger"
	"github.com/yndnr/respkv-go/internal/telemetry/metric"
)

const shutdownTimeout = 30 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configFile  = flag.String("config", "", "Path to configuration file")
		respAddr    = flag.String("addr", "", "RESP listen address (overrides server.resp.addr)")
		httpAddr    = flag.String("http-addr", "", "Admin HTTP listen address (overrides server.http.addr)")
		logLevel    = flag.String("log-level", "", "Log level (overrides log.level)")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("respkv-server %s\n", buildinfo.String())
		return nil
	}

	loader := newLoader(*configFile, map[string]any{
		"server.resp.addr": *respAddr,
		"server.http.addr": *httpAddr,
		"log.level":        *logLevel,
	})

	cfg, err := loadConfig(loader)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger.SetDefault(log)

	info := buildinfo.Get()
	log.Info("starting respkv-server",
		append([]any{"version", info.Version, "commit", info.Commit}, config.Summary(cfg)...)...)

	store := memory.New(memory.WithShards(cfg.Store.Shards))
	exec := service.NewExecutor(store)

	metrics := metric.Global()
	metrics.MustRegister(metric.NewStoreCollector(store))

	respServer := redisserver.New(&redisserver.Config{
		Addr:           cfg.Server.RESP.Addr,
		ReadBufferSize: cfg.Server.RESP.ReadBufferSize,
		IdleTimeout:    cfg.Server.RESP.IdleTimeout,
		WriteTimeout:   cfg.Server.RESP.WriteTimeout,
		RateLimit:      cfg.Server.RESP.RateLimit,
	}, exec, redisserver.WithLogger(log), redisserver.WithMetrics(metrics))

	shutdownHandler := shutdown.NewHandler(shutdownTimeout)

	var ready atomic.Bool
	if cfg.Server.HTTP.Enabled {
		adminServer := httpserver.New(cfg.Server.HTTP.Addr, httpserver.NewRouter(&httpserver.RouterConfig{
			Metrics: metrics,
			Ready:   ready.Load,
			Logger:  log,
		}))
		errc := make(chan error, 1)
		if err := adminServer.Start(errc); err != nil {
			return fmt.Errorf("start admin http: %w", err)
		}
		go func() {
			if err := <-errc; err != nil {
				log.Error("admin HTTP server error", "error", err)
				shutdownHandler.Trigger()
			}
		}()
		log.Info("admin HTTP server listening", "addr", adminServer.Addr().String())

		shutdownHandler.OnShutdown(func(ctx context.Context) error {
			log.Info("shutting down admin HTTP server")
			return adminServer.Shutdown(ctx)
		})
	}

	if err := respServer.Start(context.Background()); err != nil {
		return fmt.Errorf("start resp server: %w", err)
	}
	ready.Store(true)

	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		ready.Store(false)
		log.Info("shutting down RESP server", "connections", respServer.ConnCount())
		return respServer.Shutdown(ctx)
	})

	if path := loader.FilePath(); path != "" {
		watcher, err := watchConfig(loader, path, log)
		if err != nil {
			log.Warn("config watch disabled", "path", path, "error", err)
		} else {
			shutdownHandler.OnShutdown(func(context.Context) error {
				return watcher.Stop()
			})
		}
	}

	log.Info("server started, press Ctrl+C to stop")
	if err := shutdownHandler.Wait(); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// newLoader builds a loader; empty override values are skipped so that
// unset flags do not mask file or environment settings.
func newLoader(configFile string, overrides map[string]any) *confloader.Loader {
	set := make(map[string]any, len(overrides))
	for k, v := range overrides {
		if s, ok := v.(string); ok && s == "" {
			continue
		}
		set[k] = v
	}

	opts := []confloader.Option{confloader.WithOverrides(set)}
	if configFile != "" {
		opts = append(opts, confloader.WithConfigFile(configFile))
	}
	return confloader.NewLoader(opts...)
}

// loadConfig loads defaults, file, environment and overrides, then validates.
func loadConfig(loader *confloader.Loader) (*config.ServerConfig, error) {
	cfg := config.Default()
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}
	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// watchConfig reloads the file on change. Only log.level is applied at
// runtime; other keys take effect on restart.
func watchConfig(loader *confloader.Loader, path string, log logger.Logger) (*confloader.Watcher, error) {
	watcher, err := confloader.NewWatcher(confloader.WithWatcherLogger(logger.Slog(log)))
	if err != nil {
		return nil, err
	}
	if err := watcher.Watch(path); err != nil {
		_ = watcher.Stop()
		return nil, err
	}

	watcher.OnChange(func(string) {
		cfg, err := loadConfig(loader)
		if err != nil {
			log.Warn("config reload rejected", "path", path, "error", err)
			return
		}
		if cfg.Log.Level != logger.GetLevel() {
			logger.SetLevel(cfg.Log.Level)
			log.Info("log level changed", "level", cfg.Log.Level)
		}
	})
	watcher.StartAsync()
	return watcher, nil
}

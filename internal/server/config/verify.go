package config

import (
	"errors"
	"fmt"
	"net"
	"strings"
)

// Verify validates the configuration.
func Verify(cfg *ServerConfig) error {
	if err := verifyServer(&cfg.Server); err != nil {
		return err
	}
	if err := verifyStore(&cfg.Store); err != nil {
		return err
	}
	return verifyLog(&cfg.Log)
}

func verifyServer(cfg *ServerSection) error {
	if err := verifyAddr("server.resp.addr", cfg.RESP.Addr); err != nil {
		return err
	}
	if cfg.RESP.ReadBufferSize <= 0 {
		return errors.New("server.resp.read_buffer_size must be positive")
	}
	if cfg.RESP.IdleTimeout < 0 {
		return errors.New("server.resp.idle_timeout must not be negative")
	}
	if cfg.RESP.WriteTimeout < 0 {
		return errors.New("server.resp.write_timeout must not be negative")
	}
	if cfg.RESP.RateLimit < 0 {
		return errors.New("server.resp.rate_limit must not be negative")
	}

	if cfg.HTTP.Enabled {
		if err := verifyAddr("server.http.addr", cfg.HTTP.Addr); err != nil {
			return err
		}
		if cfg.HTTP.Addr == cfg.RESP.Addr {
			return errors.New("server.http.addr conflicts with server.resp.addr")
		}
	}
	return nil
}

func verifyAddr(key, addr string) error {
	if addr == "" {
		return fmt.Errorf("%s is required", key)
	}
	if _, _, err := net.SplitHostPort(addr); err != nil {
		return fmt.Errorf("%s: %w", key, err)
	}
	return nil
}

func verifyStore(cfg *StoreSection) error {
	n := cfg.Shards
	if n <= 0 || n&(n-1) != 0 {
		return fmt.Errorf("store.shards must be a power of two, got %d", n)
	}
	return nil
}

func verifyLog(cfg *LogSection) error {
	switch strings.ToLower(cfg.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("log.level: unknown level %q", cfg.Level)
	}
	switch strings.ToLower(cfg.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format: unknown format %q", cfg.Format)
	}
	return nil
}

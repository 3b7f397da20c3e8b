package config

import (
	"strings"
	"testing"
	"time"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Server.RESP.Addr != DefaultRESPAddr {
		t.Errorf("RESP.Addr = %q, want %q", cfg.Server.RESP.Addr, DefaultRESPAddr)
	}
	if cfg.Server.RESP.ReadBufferSize != DefaultReadBufferSize {
		t.Errorf("ReadBufferSize = %d, want %d", cfg.Server.RESP.ReadBufferSize, DefaultReadBufferSize)
	}
	if cfg.Server.RESP.IdleTimeout != 5*time.Minute {
		t.Errorf("IdleTimeout = %v, want 5m", cfg.Server.RESP.IdleTimeout)
	}
	if cfg.Server.RESP.RateLimit != 0 {
		t.Errorf("RateLimit = %v, want 0", cfg.Server.RESP.RateLimit)
	}
	if !cfg.Server.HTTP.Enabled {
		t.Error("HTTP should be enabled by default")
	}
	if cfg.Store.Shards != DefaultStoreShards {
		t.Errorf("Store.Shards = %d, want %d", cfg.Store.Shards, DefaultStoreShards)
	}
	if cfg.Log.Level != DefaultLogLevel {
		t.Errorf("Log.Level = %q, want %q", cfg.Log.Level, DefaultLogLevel)
	}
	if cfg.Log.Format != DefaultLogFormat {
		t.Errorf("Log.Format = %q, want %q", cfg.Log.Format, DefaultLogFormat)
	}

	if err := Verify(cfg); err != nil {
		t.Errorf("Verify(Default()) = %v", err)
	}
}

func TestVerify(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*ServerConfig)
		wantErr string
	}{
		{"empty resp addr", func(c *ServerConfig) { c.Server.RESP.Addr = "" }, "server.resp.addr is required"},
		{"resp addr without port", func(c *ServerConfig) { c.Server.RESP.Addr = "localhost" }, "server.resp.addr"},
		{"zero read buffer", func(c *ServerConfig) { c.Server.RESP.ReadBufferSize = 0 }, "read_buffer_size"},
		{"negative idle timeout", func(c *ServerConfig) { c.Server.RESP.IdleTimeout = -time.Second }, "idle_timeout"},
		{"negative write timeout", func(c *ServerConfig) { c.Server.RESP.WriteTimeout = -time.Second }, "write_timeout"},
		{"negative rate limit", func(c *ServerConfig) { c.Server.RESP.RateLimit = -1 }, "rate_limit"},
		{"bad http addr", func(c *ServerConfig) { c.Server.HTTP.Addr = "nope" }, "server.http.addr"},
		{"port conflict", func(c *ServerConfig) { c.Server.HTTP.Addr = c.Server.RESP.Addr }, "conflicts"},
		{"shards not power of two", func(c *ServerConfig) { c.Store.Shards = 12 }, "store.shards"},
		{"zero shards", func(c *ServerConfig) { c.Store.Shards = 0 }, "store.shards"},
		{"unknown log level", func(c *ServerConfig) { c.Log.Level = "verbose" }, "log.level"},
		{"unknown log format", func(c *ServerConfig) { c.Log.Format = "xml" }, "log.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := Verify(cfg)
			if err == nil {
				t.Fatal("expected an error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %q, want it to contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestVerify_HTTPDisabledSkipsAddr(t *testing.T) {
	cfg := Default()
	cfg.Server.HTTP.Enabled = false
	cfg.Server.HTTP.Addr = ""
	if err := Verify(cfg); err != nil {
		t.Errorf("Verify() = %v, want nil", err)
	}
}

func TestSummary(t *testing.T) {
	attrs := Summary(Default())
	if len(attrs)%2 != 0 {
		t.Fatalf("Summary() returned %d items, want key-value pairs", len(attrs))
	}
	found := false
	for i := 0; i < len(attrs); i += 2 {
		if attrs[i] == "resp_addr" && attrs[i+1] == DefaultRESPAddr {
			found = true
		}
	}
	if !found {
		t.Error("Summary() should include resp_addr")
	}
}

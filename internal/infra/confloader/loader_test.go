package confloader

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

type testConfig struct {
	Server struct {
		RESP struct {
			Addr        string        `koanf:"addr"`
			IdleTimeout time.Duration `koanf:"idle_timeout"`
		} `koanf:"resp"`
		HTTP struct {
			Enabled bool `koanf:"enabled"`
		} `koanf:"http"`
	} `koanf:"server"`
	Log struct {
		Level string `koanf:"level"`
	} `koanf:"log"`
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestNewLoader(t *testing.T) {
	l := NewLoader()
	if l.envPrefix != DefaultEnvPrefix {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, DefaultEnvPrefix)
	}

	l = NewLoader(WithEnvPrefix("TEST_"), WithConfigFile("/path/to/config.yaml"))
	if l.envPrefix != "TEST_" {
		t.Errorf("envPrefix = %q, want %q", l.envPrefix, "TEST_")
	}
	if l.FilePath() != "/path/to/config.yaml" {
		t.Errorf("FilePath() = %q", l.FilePath())
	}
}

func TestLoader_LoadFile(t *testing.T) {
	path := writeConfig(t, `
server:
  resp:
    addr: "0.0.0.0:6380"
  http:
    enabled: true
`)

	l := NewLoader()
	if err := l.LoadFile(path); err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if addr := l.GetString("server.resp.addr"); addr != "0.0.0.0:6380" {
		t.Errorf("server.resp.addr = %q", addr)
	}
	if !l.GetBool("server.http.enabled") {
		t.Error("server.http.enabled should be true")
	}
}

func TestLoader_LoadFile_Errors(t *testing.T) {
	l := NewLoader()
	if err := l.LoadFile("/nonexistent/config.yaml"); err == nil {
		t.Error("LoadFile() should return error for nonexistent file")
	}
	if err := l.LoadFile(""); err != nil {
		t.Errorf("LoadFile(\"\") should not error, got: %v", err)
	}
}

func TestLoader_LoadEnv(t *testing.T) {
	tests := []struct {
		env  string
		key  string
		want string
	}{
		{"RESPKV_SERVER__RESP__ADDR", "server.resp.addr", "127.0.0.1:7000"},
		{"RESPKV_SERVER__RESP__IDLE_TIMEOUT", "server.resp.idle_timeout", "30s"},
		{"RESPKV_LOG__LEVEL", "log.level", "debug"},
	}

	for _, tt := range tests {
		t.Run(tt.env, func(t *testing.T) {
			t.Setenv(tt.env, tt.want)
			l := NewLoader()
			if err := l.LoadEnv(); err != nil {
				t.Fatalf("LoadEnv() error = %v", err)
			}
			if got := l.GetString(tt.key); got != tt.want {
				t.Errorf("%s = %q, want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestLoader_LoadMap(t *testing.T) {
	l := NewLoader()
	if err := l.LoadMap(map[string]any{
		"server.resp.addr": "localhost:3000",
		"store.shards":     32,
	}); err != nil {
		t.Fatalf("LoadMap() error = %v", err)
	}

	if addr := l.GetString("server.resp.addr"); addr != "localhost:3000" {
		t.Errorf("server.resp.addr = %q", addr)
	}
	if n := l.GetInt("store.shards"); n != 32 {
		t.Errorf("store.shards = %d, want 32", n)
	}
	if len(l.Keys()) != 2 {
		t.Errorf("Keys() = %v, want 2 keys", l.Keys())
	}
}

func TestLoader_Load_Priority(t *testing.T) {
	path := writeConfig(t, `
server:
  resp:
    addr: "from-file:6379"
    idle_timeout: "1m"
log:
  level: "warn"
`)
	t.Setenv("RESPKV_SERVER__RESP__ADDR", "from-env:6379")
	t.Setenv("RESPKV_LOG__LEVEL", "error")

	l := NewLoader(
		WithConfigFile(path),
		WithOverrides(map[string]any{"log.level": "debug"}),
	)

	var cfg testConfig
	cfg.Server.HTTP.Enabled = true // default that no source touches
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Server.RESP.Addr != "from-env:6379" {
		t.Errorf("Addr = %q, env should override file", cfg.Server.RESP.Addr)
	}
	if cfg.Server.RESP.IdleTimeout != time.Minute {
		t.Errorf("IdleTimeout = %v, want 1m from file", cfg.Server.RESP.IdleTimeout)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Level = %q, overrides should win", cfg.Log.Level)
	}
	if !cfg.Server.HTTP.Enabled {
		t.Error("untouched default should survive Load")
	}
	if !l.IsLoaded() {
		t.Error("IsLoaded() should be true after Load()")
	}
}

func TestLoader_Reload(t *testing.T) {
	path := writeConfig(t, "log:\n  level: info\n")
	l := NewLoader(WithConfigFile(path))

	var cfg testConfig
	if err := l.Load(&cfg); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Log.Level != "info" {
		t.Fatalf("Level = %q, want info", cfg.Log.Level)
	}

	if err := os.WriteFile(path, []byte("log:\n  level: debug\n"), 0644); err != nil {
		t.Fatal(err)
	}
	var reloaded testConfig
	if err := l.Load(&reloaded); err != nil {
		t.Fatalf("reload error = %v", err)
	}
	if reloaded.Log.Level != "debug" {
		t.Errorf("Level after reload = %q, want debug", reloaded.Log.Level)
	}
}

func TestMapProvider_ReadBytes(t *testing.T) {
	if _, err := mapProvider(nil).ReadBytes(); err != ErrReadBytesNotSupported {
		t.Errorf("ReadBytes() error = %v", err)
	}
}

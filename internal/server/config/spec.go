package config

import "time"

// ServerConfig is the root configuration for respkv-server.
type ServerConfig struct {
	Server ServerSection `koanf:"server"`
	Store  StoreSection  `koanf:"store"`
	Log    LogSection    `koanf:"log"`
}

// ServerSection configures server endpoints.
type ServerSection struct {
	RESP RESPConfig `koanf:"resp"`
	HTTP HTTPConfig `koanf:"http"`
}

// RESPConfig configures the RESP listener and its connections.
type RESPConfig struct {
	Addr string `koanf:"addr"`

	// ReadBufferSize is the size of each socket read.
	ReadBufferSize int `koanf:"read_buffer_size"`

	// IdleTimeout closes a connection that sends nothing for this long.
	// Zero disables it.
	IdleTimeout time.Duration `koanf:"idle_timeout"`

	// WriteTimeout bounds each reply flush. Zero disables it.
	WriteTimeout time.Duration `koanf:"write_timeout"`

	// RateLimit is the per-connection command rate in commands per second.
	// Zero disables throttling.
	RateLimit float64 `koanf:"rate_limit"`
}

// HTTPConfig configures the admin HTTP server.
type HTTPConfig struct {
	Enabled bool   `koanf:"enabled"`
	Addr    string `koanf:"addr"`
}

// StoreSection configures the key-value store.
type StoreSection struct {
	// Shards must be a power of two.
	Shards int `koanf:"shards"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

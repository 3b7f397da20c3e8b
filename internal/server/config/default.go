package config

import "time"

// Default configuration values.
const (
	DefaultRESPAddr       = "127.0.0.1:6379"
	DefaultReadBufferSize = 4096
	DefaultIdleTimeout    = 5 * time.Minute
	DefaultWriteTimeout   = 30 * time.Second

	DefaultHTTPAddr = "127.0.0.1:9121"

	DefaultStoreShards = 16

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default server configuration.
func Default() *ServerConfig {
	return &ServerConfig{
		Server: ServerSection{
			RESP: RESPConfig{
				Addr:           DefaultRESPAddr,
				ReadBufferSize: DefaultReadBufferSize,
				IdleTimeout:    DefaultIdleTimeout,
				WriteTimeout:   DefaultWriteTimeout,
			},
			HTTP: HTTPConfig{
				Enabled: true,
				Addr:    DefaultHTTPAddr,
			},
		},
		Store: StoreSection{
			Shards: DefaultStoreShards,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}

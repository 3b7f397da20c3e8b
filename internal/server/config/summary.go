package config

// Summary returns slog key-value pairs describing cfg, for the startup log.
func Summary(cfg *ServerConfig) []any {
	return []any{
		"resp_addr", cfg.Server.RESP.Addr,
		"read_buffer_size", cfg.Server.RESP.ReadBufferSize,
		"idle_timeout", cfg.Server.RESP.IdleTimeout.String(),
		"write_timeout", cfg.Server.RESP.WriteTimeout.String(),
		"rate_limit", cfg.Server.RESP.RateLimit,
		"http_enabled", cfg.Server.HTTP.Enabled,
		"http_addr", cfg.Server.HTTP.Addr,
		"store_shards", cfg.Store.Shards,
		"log_level", cfg.Log.Level,
	}
}

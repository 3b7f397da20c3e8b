package connection

import (
	"context"
	"testing"
	"time"

	"github.com/yndnr/respkv-go/internal/core/service"
	"github.com/yndnr/respkv-go/internal/server/redisserver"
	"github.com/yndnr/respkv-go/internal/storage/memory"
)

// startServer runs a real RESP server on a loopback port.
func startServer(t *testing.T) string {
	t.Helper()

	cfg := redisserver.DefaultConfig()
	cfg.Addr = "127.0.0.1:0"
	srv := redisserver.New(cfg, service.NewExecutor(memory.New()))
	if err := srv.Start(context.Background()); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	})
	return srv.Addr().String()
}

package command

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/yndnr/respkv-go/internal/cli/connection"
)

// BenchCommand returns the bench command.
func BenchCommand() *cli.Command {
	return &cli.Command{
		Name:  "bench",
		Usage: "Issue SET/GET pairs from concurrent clients and report throughput",
		Flags: []cli.Flag{
			&cli.IntFlag{Name: "clients", Aliases: []string{"c"}, Value: 8, Usage: "concurrent clients"},
			&cli.IntFlag{Name: "requests", Aliases: []string{"n"}, Value: 10000, Usage: "total SET/GET pairs"},
			&cli.IntFlag{Name: "key-space", Aliases: []string{"k"}, Value: 1000, Usage: "number of distinct keys"},
		},
		Action: benchAction,
	}
}

// BenchResult summarizes one bench run.
type BenchResult struct {
	Requests int64
	Errors   int64
	Elapsed  time.Duration
}

// OpsPerSecond counts both commands of each pair.
func (r BenchResult) OpsPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(2*r.Requests) / r.Elapsed.Seconds()
}

func benchAction(c *cli.Context) error {
	clients, requests, keySpace := c.Int("clients"), c.Int("requests"), c.Int("key-space")
	if clients < 1 || requests < 1 || keySpace < 1 {
		return fmt.Errorf("--clients, --requests and --key-space must be positive")
	}

	flags := ParseGlobalFlags(c)
	res, err := RunBench(c.Context, flags.Server, flags.Timeout, clients, requests, keySpace)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.App.Writer, "pairs: %d  errors: %d  elapsed: %s  ops/sec: %.0f\n",
		res.Requests, res.Errors, res.Elapsed.Round(time.Millisecond), res.OpsPerSecond())
	return nil
}

// RunBench spreads requests SET/GET pairs over clients pooled connections.
func RunBench(ctx context.Context, addr string, timeout time.Duration, clients, requests, keySpace int) (BenchResult, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	p := connection.NewPool(ctx, addr, clients, timeout)
	defer p.Close(ctx)

	// Fail fast on an unreachable server.
	probe, err := p.Get(ctx)
	if err != nil {
		return BenchResult{}, fmt.Errorf("connect failed: %w", err)
	}
	_ = p.Put(ctx, probe)

	var (
		next   atomic.Int64
		done   atomic.Int64
		failed atomic.Int64
		wg     sync.WaitGroup
	)

	start := time.Now()
	for i := 0; i < clients; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for next.Add(1) <= int64(requests) {
				if err := benchPair(ctx, p, keySpace); err != nil {
					failed.Add(1)
					continue
				}
				done.Add(1)
			}
		}()
	}
	wg.Wait()

	return BenchResult{
		Requests: done.Load(),
		Errors:   failed.Load(),
		Elapsed:  time.Since(start),
	}, nil
}

func benchPair(ctx context.Context, p *connection.Pool, keySpace int) error {
	client, err := p.Get(ctx)
	if err != nil {
		return err
	}

	key := "bench:" + strconv.Itoa(rand.IntN(keySpace))
	if err := client.Set(key, key, 0); err != nil {
		_ = p.Discard(ctx, client)
		return err
	}
	if _, _, err := client.Get(key); err != nil {
		_ = p.Discard(ctx, client)
		return err
	}
	return p.Put(ctx, client)
}

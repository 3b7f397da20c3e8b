package service

import (
	"bufio"
	"fmt"
	"time"

	"github.com/yndnr/respkv-go/internal/core/domain"
	"github.com/yndnr/respkv-go/pkg/resp"
)

// Store is the storage the Executor depends on.
type Store interface {
	// Get returns the value under key unless it is absent or expired at now.
	Get(key string, now time.Time) (string, bool)

	// Set inserts or replaces the value under key. A zero expiresAt means
	// the entry never expires.
	Set(key, value string, expiresAt time.Time)
}

// Executor runs commands and renders their replies.
type Executor struct {
	store Store
	now   func() time.Time
}

// Option configures the Executor.
type Option func(*Executor)

// WithClock replaces the clock used to decide expiry.
func WithClock(now func() time.Time) Option {
	return func(e *Executor) {
		if now != nil {
			e.now = now
		}
	}
}

// NewExecutor creates an Executor over store.
func NewExecutor(store Store, opts ...Option) *Executor {
	e := &Executor{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Now returns the executor's current time.
func (e *Executor) Now() time.Time {
	return e.now()
}

// Execute runs cmd and writes exactly one reply to w.
// The caller flushes w.
func (e *Executor) Execute(w *bufio.Writer, cmd domain.Command) error {
	switch c := cmd.(type) {
	case domain.Ping:
		return resp.WriteSimpleString(w, "PONG")
	case domain.Echo:
		return resp.WriteBulkString(w, c.Message)
	case domain.Get:
		v, ok := e.store.Get(c.Key, e.now())
		if !ok {
			return resp.WriteNullBulk(w)
		}
		return resp.WriteBulkString(w, v)
	case domain.Set:
		e.store.Set(c.Key, c.Value, c.ExpiresAt)
		return resp.WriteSimpleString(w, "OK")
	case domain.Invalid:
		_, err := w.Write(c.Reply)
		return err
	default:
		return fmt.Errorf("service: unsupported command %T", cmd)
	}
}

package memory

import (
	"time"

	"github.com/yndnr/respkv-go/internal/core/domain"
	"github.com/yndnr/respkv-go/pkg/cmap"
)

// Store is the process-wide key-value store shared by all connections.
type Store struct {
	entries *cmap.Map[domain.Entry]
	shards  int
}

// Option configures the Store.
type Option func(*Store)

// WithShards sets the shard count. It must be a power of two; one shard
// puts the whole map behind a single mutex.
func WithShards(n int) Option {
	return func(s *Store) {
		s.shards = n
	}
}

// New creates an empty store.
func New(opts ...Option) *Store {
	s := &Store{shards: cmap.DefaultShardCount}
	for _, opt := range opts {
		opt(s)
	}
	s.entries = cmap.NewWithShards[domain.Entry](s.shards)
	return s
}

// Get returns the value stored under key, unless it is absent or expired
// at now. Expired entries are not removed.
func (s *Store) Get(key string, now time.Time) (string, bool) {
	e, ok := s.entries.Get(key)
	if !ok || e.IsExpired(now) {
		return "", false
	}
	return e.Value, true
}

// Set inserts or replaces the entry under key.
func (s *Store) Set(key, value string, expiresAt time.Time) {
	s.entries.Set(key, domain.Entry{Value: value, ExpiresAt: expiresAt})
}

// Len returns the number of entries, expired ones included.
func (s *Store) Len() int {
	return s.entries.Count()
}

// ExpiredCount returns how many entries are expired at now but still held.
func (s *Store) ExpiredCount(now time.Time) int {
	n := 0
	s.entries.Range(func(_ string, e domain.Entry) bool {
		if e.IsExpired(now) {
			n++
		}
		return true
	})
	return n
}

// ShardCount returns the effective shard count.
func (s *Store) ShardCount() int {
	return s.entries.ShardCount()
}

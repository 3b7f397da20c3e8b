// Package cmap provides a sharded concurrent map keyed by string.
//
// Keys are spread over a power-of-two number of shards with murmur3; each
// shard has its own RWMutex, so operations on keys in different shards do
// not contend. Every single-key operation is atomic. There are no
// multi-key transactions.
//
// Usage:
//
//	m := cmap.New[Entry]()
//	m.Set("key", e)
//	e, ok := m.Get("key")
package cmap

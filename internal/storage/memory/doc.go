// Package memory provides the in-memory key-value store for respkv.
//
// Entries live in a sharded map. Every operation locks only the shard that
// owns its key, for the duration of that operation. Expiry is lazy: an
// entry past its expiry is invisible to Get but stays in the map until a
// Set on the same key replaces it.
package memory

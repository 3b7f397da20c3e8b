// Package service executes decoded commands against the key-value store.
//
// The Executor is stateless apart from its dependencies: a Store and a
// clock. It is safe for concurrent use by every connection.
package service

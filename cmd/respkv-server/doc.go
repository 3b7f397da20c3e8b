// Package main provides the entry point for respkv-server.
//
// respkv-server is an in-memory key-value server speaking RESP. It
// serves PING, ECHO, GET and SET with optional millisecond expiry, and
// exposes health and Prometheus metrics over an admin HTTP listener.
package main

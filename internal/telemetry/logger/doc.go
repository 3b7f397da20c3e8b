// Package logger provides structured logging for respkv.
//
//   - logger.go: the Logger interface over log/slog, runtime level control
//   - context.go: context propagation and connection ids
//   - clip.go: clipping of oversized string attributes
//
// Output is JSON by default. Keys and values coming from clients can be
// arbitrarily large, so string attributes are clipped before they reach
// the handler.
package logger

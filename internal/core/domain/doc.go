// Package domain defines the core domain model of respkv.
//
// It contains:
//
//   - Command: the decoded form of a client request and ParseCommand,
//     which maps a finished RESP value onto it
//   - Entry: a stored value with an optional absolute expiry instant
//   - Errors: command errors with stable codes
//
// Nothing here performs I/O or touches the store.
package domain

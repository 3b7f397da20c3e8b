// Package connection provides RESP connections for respkv-cli.
//
// A Client owns one TCP connection and issues commands one at a time.
// Pool hands out Clients to concurrent callers such as the bench command.
package connection

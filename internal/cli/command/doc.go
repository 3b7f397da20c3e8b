// Package command provides CLI command definitions for respkv-cli.
//
// It uses urfave/cli/v2 for flag and sub-command parsing. Every
// sub-command dials the server named by --server over RESP.
package command

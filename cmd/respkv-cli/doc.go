// Package main provides the entry point for respkv-cli.
package main

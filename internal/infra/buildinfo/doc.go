// Package buildinfo exposes version information for respkv binaries.
//
// Version, Commit and BuildTime are injected via ldflags:
//
//	go build -ldflags "-X github.com/yndnr/respkv-go/internal/infra/buildinfo.Version=v1.0.0"
//
// When Commit is not injected it falls back to the VCS revision recorded
// by the Go toolchain, if any.
package buildinfo

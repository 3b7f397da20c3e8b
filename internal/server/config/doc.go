// Package config provides server configuration for respkv-server.
//
//   - spec.go: ServerConfig struct definition
//   - default.go: default values
//   - verify.go: validation
//   - summary.go: log attributes describing the effective configuration
//
// Configuration is loaded via internal/infra/confloader from a YAML file
// and RESPKV_ environment variables.
package config

// Package confloader loads configuration with koanf.
//
// Sources, lowest priority first:
//
//  1. Default values (whatever the target struct already holds)
//  2. A YAML configuration file
//  3. Environment variables (RESPKV_ prefix, "__" between levels)
//  4. Explicit overrides, typically from command-line flags
//
// Watcher reports changes to the configuration file so the caller can
// reload it.
package confloader

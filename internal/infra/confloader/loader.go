package confloader

import (
	"fmt"
	"strings"
	"sync"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// DefaultEnvPrefix is the default environment variable prefix.
const DefaultEnvPrefix = "RESPKV_"

// EnvLevelSeparator separates nesting levels in environment variable names.
// A single underscore stays part of the key, so RESPKV_SERVER__RESP__IDLE_TIMEOUT
// maps to server.resp.idle_timeout.
const EnvLevelSeparator = "__"

const delim = "."

// Loader loads configuration from multiple sources.
type Loader struct {
	mu        sync.Mutex
	k         *koanf.Koanf
	envPrefix string
	filePath  string
	overrides map[string]any
	loaded    bool
}

// Option is a function that configures the Loader.
type Option func(*Loader)

// WithEnvPrefix sets the environment variable prefix.
func WithEnvPrefix(prefix string) Option {
	return func(l *Loader) {
		l.envPrefix = prefix
	}
}

// WithConfigFile sets the configuration file path.
func WithConfigFile(path string) Option {
	return func(l *Loader) {
		l.filePath = path
	}
}

// WithOverrides sets values that win over every other source. Keys use
// dotted paths such as "log.level".
func WithOverrides(values map[string]any) Option {
	return func(l *Loader) {
		l.overrides = values
	}
}

// NewLoader creates a new configuration loader.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		k:         koanf.New(delim),
		envPrefix: DefaultEnvPrefix,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// FilePath returns the configured file path, or "" if none.
func (l *Loader) FilePath() string {
	return l.filePath
}

// Load reads every source from scratch and unmarshals into target.
// Fields absent from all sources keep the value target already holds,
// so callers pass a struct pre-filled with defaults. Load may be called
// again to reload.
func (l *Loader) Load(target any) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.k = koanf.New(delim)

	if err := l.loadFile(l.filePath); err != nil {
		return fmt.Errorf("load config file: %w", err)
	}
	if err := l.loadEnv(); err != nil {
		return err
	}
	if len(l.overrides) > 0 {
		if err := l.loadMap(l.overrides); err != nil {
			return fmt.Errorf("load overrides: %w", err)
		}
	}

	if err := l.k.Unmarshal("", target); err != nil {
		return fmt.Errorf("unmarshal config: %w", err)
	}

	l.loaded = true
	return nil
}

// LoadFile merges a YAML file into the loaded configuration.
func (l *Loader) LoadFile(path string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadFile(path)
}

func (l *Loader) loadFile(path string) error {
	if path == "" {
		return nil
	}
	if err := l.k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("load file %s: %w", path, err)
	}
	return nil
}

// LoadEnv merges environment variables into the loaded configuration.
// RESPKV_LOG__LEVEL=debug sets log.level.
func (l *Loader) LoadEnv() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadEnv()
}

func (l *Loader) loadEnv() error {
	if err := l.k.Load(env.Provider(l.envPrefix, delim, l.envKey), nil); err != nil {
		return fmt.Errorf("load env: %w", err)
	}
	return nil
}

// envKey maps RESPKV_SERVER__RESP__ADDR to server.resp.addr.
func (l *Loader) envKey(name string) string {
	name = strings.TrimPrefix(name, l.envPrefix)
	name = strings.ToLower(name)
	return strings.ReplaceAll(name, EnvLevelSeparator, delim)
}

// LoadMap merges a map of dotted keys into the loaded configuration.
func (l *Loader) LoadMap(data map[string]any) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loadMap(data)
}

func (l *Loader) loadMap(data map[string]any) error {
	if err := l.k.Load(mapProvider(data), nil); err != nil {
		return fmt.Errorf("load map: %w", err)
	}
	return nil
}

// Unmarshal unmarshals the loaded configuration into the target struct
// using koanf tags.
func (l *Loader) Unmarshal(target any) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.k.Unmarshal("", target)
}

// GetString returns a string value from the configuration.
func (l *Loader) GetString(key string) string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.k.String(key)
}

// GetInt returns an int value from the configuration.
func (l *Loader) GetInt(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.k.Int(key)
}

// GetBool returns a bool value from the configuration.
func (l *Loader) GetBool(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.k.Bool(key)
}

// IsLoaded reports whether Load has succeeded at least once.
func (l *Loader) IsLoaded() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.loaded
}

// Keys returns all configuration keys.
func (l *Loader) Keys() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.k.Keys()
}

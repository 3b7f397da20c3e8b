package buildinfo

import (
	"runtime"
	"strings"
	"testing"
)

func TestGet(t *testing.T) {
	info := Get()

	tests := []struct {
		name  string
		value string
	}{
		{"Version", info.Version},
		{"Commit", info.Commit},
		{"BuildTime", info.BuildTime},
		{"GoVersion", info.GoVersion},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value == "" {
				t.Errorf("%s should not be empty", tt.name)
			}
		})
	}

	if info.GoVersion != runtime.Version() {
		t.Errorf("GoVersion = %q, want %q", info.GoVersion, runtime.Version())
	}
}

func TestGet_InjectedCommit(t *testing.T) {
	old := Commit
	Commit = "abc123"
	defer func() { Commit = old }()

	if got := Get().Commit; got != "abc123" {
		t.Errorf("Commit = %q, want abc123", got)
	}
}

func TestString(t *testing.T) {
	s := String()
	if !strings.HasPrefix(s, Version+" (") {
		t.Errorf("String() = %q, want version prefix", s)
	}
	if !strings.Contains(s, "built at "+BuildTime) {
		t.Errorf("String() = %q, want build time", s)
	}
	if !strings.HasSuffix(s, runtime.Version()) {
		t.Errorf("String() = %q, want Go version suffix", s)
	}
}

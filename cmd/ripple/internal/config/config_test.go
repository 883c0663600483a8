package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "ripple.yaml"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func TestResolveDefaults(t *testing.T) {
	res, err := Resolve(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.InitialState.Count != 0 {
		t.Errorf("expected default count 0, got %d", res.InitialState.Count)
	}
	if !res.InitialState.AutoIncrementing {
		t.Error("expected default auto-increment on")
	}
	if res.InitialState.AutoIncrementInterval.Ms() != 1000 {
		t.Errorf("expected default interval 1000ms, got %d", res.InitialState.AutoIncrementInterval.Ms())
	}
	if res.LogLevel != zerolog.InfoLevel {
		t.Errorf("expected default log level info, got %v", res.LogLevel)
	}
}

func TestResolveOverrides(t *testing.T) {
	dir := writeConfig(t, `
counter:
  initial_count: 42
  auto_increment: false
  interval_ms: 250
log:
  level: debug
`)

	res, err := Resolve(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.InitialState.Count != 42 {
		t.Errorf("expected count 42, got %d", res.InitialState.Count)
	}
	if res.InitialState.AutoIncrementing {
		t.Error("expected auto-increment off")
	}
	if res.InitialState.AutoIncrementInterval.Ms() != 250 {
		t.Errorf("expected interval 250ms, got %d", res.InitialState.AutoIncrementInterval.Ms())
	}
	if res.LogLevel != zerolog.DebugLevel {
		t.Errorf("expected debug level, got %v", res.LogLevel)
	}
}

func TestResolvePartialOverride(t *testing.T) {
	dir := writeConfig(t, "counter:\n  interval_ms: 0\n")

	res, err := Resolve(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// Zero is a legal interval, distinct from unset.
	if res.InitialState.AutoIncrementInterval.Ms() != 0 {
		t.Errorf("expected interval 0ms, got %d", res.InitialState.AutoIncrementInterval.Ms())
	}
	if !res.InitialState.AutoIncrementing {
		t.Error("expected unset auto-increment to stay on")
	}
}

func TestResolveInvalidLevel(t *testing.T) {
	dir := writeConfig(t, "log:\n  level: shouting\n")

	if _, err := Resolve(dir); err == nil {
		t.Error("expected an error for an invalid log level")
	}
}

func TestResolveMalformedYaml(t *testing.T) {
	dir := writeConfig(t, "counter: [not a mapping\n")

	if _, err := Resolve(dir); err == nil {
		t.Error("expected an error for malformed yaml")
	}
}

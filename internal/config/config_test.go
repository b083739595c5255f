package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "klambda.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("writing test config: %s", err)
	}
	return path
}

func TestDefaultIsDebugOffUnbounded(t *testing.T) {
	cfg := Default()
	if cfg.Debug {
		t.Errorf("Default().Debug = true, want false")
	}
	if cfg.MaxTrampolineIterations != 0 {
		t.Errorf("Default().MaxTrampolineIterations = %d, want 0 (unbounded)", cfg.MaxTrampolineIterations)
	}
}

func TestLoadValidConfig(t *testing.T) {
	path := writeConfig(t, "debug: true\nmax_trampoline_iterations: 1000\n")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if !cfg.Debug || cfg.MaxTrampolineIterations != 1000 {
		t.Errorf("Load() = %+v, want {Debug:true MaxTrampolineIterations:1000}", cfg)
	}
}

func TestLoadEmptyFileFallsBackToDefault(t *testing.T) {
	path := writeConfig(t, "")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if cfg.Debug || cfg.MaxTrampolineIterations != 0 {
		t.Errorf("Load(empty) = %+v, want the zero-value default", cfg)
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	path := writeConfig(t, "debug: true\nnonexistent_option: 5\n")
	if _, err := Load(path); err == nil {
		t.Errorf("expected validation to reject an unknown config key")
	}
}

func TestLoadRejectsWrongType(t *testing.T) {
	path := writeConfig(t, "max_trampoline_iterations: \"not a number\"\n")
	if _, err := Load(path); err == nil {
		t.Errorf("expected validation to reject a string where an integer is expected")
	}
}

func TestLoadMissingFileIsError(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Errorf("expected an error reading a missing config file")
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/julianstephens/pomolit/internal/constants"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Addr != constants.DefaultAddr {
		t.Errorf("Addr = %s, want %s", cfg.Addr, constants.DefaultAddr)
	}
	if cfg.Environment != constants.DefaultEnvironment {
		t.Errorf("Environment = %s", cfg.Environment)
	}
	if cfg.EvaluateInterval != 0 {
		t.Errorf("EvaluateInterval = %v, want 0", cfg.EvaluateInterval)
	}
	if cfg.GuardDoubleCompletion {
		t.Error("GuardDoubleCompletion should default to false")
	}
	if len(cfg.Origins()) != 0 {
		t.Errorf("Origins = %v, want none", cfg.Origins())
	}
	loc, err := cfg.Location()
	if err != nil || loc != time.UTC {
		t.Errorf("Location = %v, %v", loc, err)
	}
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	content := "POMOLIT_ADDR=0.0.0.0:8080\n" +
		"POMOLIT_ENVIRONMENT=production\n" +
		"POMOLIT_EVALUATE_INTERVAL=5m\n" +
		"POMOLIT_GUARD_DOUBLE_COMPLETION=true\n" +
		"POMOLIT_ALLOWED_ORIGINS=http://localhost:3000, http://127.0.0.1:3000\n"
	if err := os.WriteFile(filepath.Join(dir, constants.ConfigFileName), []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != "0.0.0.0:8080" {
		t.Errorf("Addr = %s", cfg.Addr)
	}
	if !cfg.IsProduction() {
		t.Error("expected production environment")
	}
	if cfg.EvaluateInterval != 5*time.Minute {
		t.Errorf("EvaluateInterval = %v", cfg.EvaluateInterval)
	}
	if !cfg.GuardDoubleCompletion {
		t.Error("expected guard enabled")
	}
	origins := cfg.Origins()
	if len(origins) != 2 || origins[1] != "http://127.0.0.1:3000" {
		t.Errorf("Origins = %v", origins)
	}
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, constants.ConfigFileName), []byte("POMOLIT_ADDR=127.0.0.1:1111\n"), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	t.Setenv(constants.ConfigAddr, "127.0.0.1:2222")
	t.Setenv(constants.ConfigTimezone, "Asia/Tokyo")

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Addr != "127.0.0.1:2222" {
		t.Errorf("Addr = %s, want env value", cfg.Addr)
	}
	if cfg.Timezone != "Asia/Tokyo" {
		t.Errorf("Timezone = %s", cfg.Timezone)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{"negative interval", constants.ConfigEvaluateInterval, "-1m"},
		{"unknown timezone", constants.ConfigTimezone, "Mars/Olympus"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.val)
			if _, err := Load(t.TempDir()); err == nil {
				t.Errorf("expected error for %s=%s", tt.key, tt.val)
			}
		})
	}
}

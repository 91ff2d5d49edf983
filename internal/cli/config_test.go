package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/nodedex/nodedex/pkg/nodejs"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
endpoint = "https://mirror.example.com/index.json"
timeout_seconds = 30
`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Endpoint != "https://mirror.example.com/index.json" {
		t.Errorf("Endpoint = %q", cfg.Endpoint)
	}
	if cfg.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d, want 30", cfg.TimeoutSeconds)
	}
}

func TestLoadConfig_PartialFallsBackToDefaults(t *testing.T) {
	path := writeConfig(t, `timeout_seconds = 5`)

	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig failed: %v", err)
	}
	if cfg.Endpoint != nodejs.DefaultEndpoint {
		t.Errorf("Endpoint = %q, want default", cfg.Endpoint)
	}
}

func TestLoadConfig_ExplicitMissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.toml")); err == nil {
		t.Fatal("expected error for explicitly named missing config")
	}
}

func TestLoadConfig_NegativeTimeout(t *testing.T) {
	path := writeConfig(t, `timeout_seconds = -1`)
	if _, err := loadConfig(path); err == nil {
		t.Fatal("expected error for negative timeout")
	}
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := writeConfig(t, `endpoint = [broken`)
	if _, err := loadConfig(path); err == nil {
		t.Fatal("expected error for malformed TOML")
	}
}

func TestNewIndex_UsesConfiguredEndpoint(t *testing.T) {
	if idx := newIndex(config{Endpoint: "https://example.com", TimeoutSeconds: 2}); idx == nil {
		t.Fatal("newIndex returned nil")
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	want := Default()
	if cfg.ListenAddr != want.ListenAddr {
		t.Fatalf("ListenAddr = %q, want %q", cfg.ListenAddr, want.ListenAddr)
	}
	if cfg.DefaultSheet != "INSERT" {
		t.Fatalf("DefaultSheet = %q, want INSERT", cfg.DefaultSheet)
	}
	if cfg.Development {
		t.Fatalf("Development should default to false")
	}
}

func TestLoadAppliesConfigFileOverrides(t *testing.T) {
	dir := t.TempDir()
	yaml := `server:
  listen_addr: ":9090"
  allowed_origins:
    - "http://example.test"
staging:
  dir: "/var/lib/templater"
template:
  default_sheet: "DATA"
log:
  development: true
`
	if err := os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.ListenAddr != ":9090" {
		t.Fatalf("ListenAddr = %q, want :9090", cfg.ListenAddr)
	}
	if len(cfg.AllowedOrigins) != 1 || cfg.AllowedOrigins[0] != "http://example.test" {
		t.Fatalf("unexpected AllowedOrigins: %v", cfg.AllowedOrigins)
	}
	if cfg.StagingDir != "/var/lib/templater" {
		t.Fatalf("StagingDir = %q", cfg.StagingDir)
	}
	if cfg.DefaultSheet != "DATA" {
		t.Fatalf("DefaultSheet = %q, want DATA", cfg.DefaultSheet)
	}
	if !cfg.Development {
		t.Fatalf("Development should be true")
	}
}

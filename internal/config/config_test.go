package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("PORT", "")
	t.Setenv("RATE_RPS", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":8080" {
		t.Fatalf("addr: %s", cfg.Addr)
	}
	if cfg.Optimizer.Seed != 42 || cfg.Optimizer.MaxIterations != 100 {
		t.Fatalf("optimizer defaults: %+v", cfg.Optimizer)
	}
}

func TestLoadYAMLAndEnvOverride(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := []byte("addr: \":9090\"\nrateRps: 5\noptimizer:\n  seed: 7\n  maxIterations: 50\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("PORT", "7070") // env wins over file
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Addr != ":7070" {
		t.Fatalf("addr: %s", cfg.Addr)
	}
	if cfg.RateRPS != 5 {
		t.Fatalf("rateRps: %v", cfg.RateRPS)
	}
	if cfg.Optimizer.Seed != 7 || cfg.Optimizer.MaxIterations != 50 {
		t.Fatalf("optimizer: %+v", cfg.Optimizer)
	}
}

func TestLoadBadFile(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing config file")
	}
}

func TestLoadZeroSeedFallsBack(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, []byte("optimizer:\n  seed: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("PORT", "")
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Optimizer.Seed != 42 {
		t.Fatalf("zero seed should fall back to 42, got %d", cfg.Optimizer.Seed)
	}
}

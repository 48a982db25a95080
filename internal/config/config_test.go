package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestValidate_InvalidPort(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 0},
		Database: DatabaseConfig{
			Addrs: []string{"localhost:6379"},
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingDatabaseAddrs(t *testing.T) {
	cfg := Config{
		HTTP: HTTPConfig{Port: 8080},
		Database: DatabaseConfig{
			Addrs: []string{},
		},
	}

	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected error for missing database addrs")
	}
}

func TestValidate_EnhancerOptional(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{Port: 8080},
		Database: DatabaseConfig{Addrs: []string{"localhost:6379"}},
	}

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error without enhancer config: %v", err)
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 10 {
		t.Errorf("expected ReadTimeoutSec=10, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 30 {
		t.Errorf("expected WriteTimeoutSec=30, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("expected ShutdownSec=10, got %d", cfg.HTTP.ShutdownSec)
	}
	if cfg.Database.ReadinessTimeout != 10 {
		t.Errorf("expected ReadinessTimeout=10, got %d", cfg.Database.ReadinessTimeout)
	}
	if cfg.Enhancer.Model != "gpt-4o-mini" {
		t.Errorf("expected default enhancer model, got %q", cfg.Enhancer.Model)
	}
	if cfg.Enhancer.TimeoutSec != 12 {
		t.Errorf("expected Enhancer.TimeoutSec=12, got %d", cfg.Enhancer.TimeoutSec)
	}
	if cfg.Ingest.BatchSize != 500 {
		t.Errorf("expected Ingest.BatchSize=500, got %d", cfg.Ingest.BatchSize)
	}
	if cfg.Enhancer.BudgetAction != "warn" {
		t.Errorf("expected BudgetAction=warn, got %q", cfg.Enhancer.BudgetAction)
	}
	if cfg.Enhancer.CacheTTLSec != 3600 {
		t.Errorf("expected CacheTTLSec=3600, got %d", cfg.Enhancer.CacheTTLSec)
	}
}

func TestValidate_InvalidBudgetAction(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{Port: 8080},
		Database: DatabaseConfig{Addrs: []string{"localhost:6379"}},
		Enhancer: EnhancerConfig{BudgetAction: "block"},
	}

	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid budget_action")
	}
}

func TestApplyDefaults_NoOverride(t *testing.T) {
	cfg := Config{
		HTTP:     HTTPConfig{ReadTimeoutSec: 30, WriteTimeoutSec: 60, ShutdownSec: 5},
		Database: DatabaseConfig{ReadinessTimeout: 15},
		Enhancer: EnhancerConfig{Model: "gpt-4o", TimeoutSec: 5},
		Ingest:   IngestConfig{BatchSize: 100},
	}
	cfg.ApplyDefaults()

	if cfg.HTTP.ReadTimeoutSec != 30 {
		t.Errorf("expected ReadTimeoutSec=30, got %d", cfg.HTTP.ReadTimeoutSec)
	}
	if cfg.HTTP.WriteTimeoutSec != 60 {
		t.Errorf("expected WriteTimeoutSec=60, got %d", cfg.HTTP.WriteTimeoutSec)
	}
	if cfg.Enhancer.Model != "gpt-4o" {
		t.Errorf("expected Model=gpt-4o, got %q", cfg.Enhancer.Model)
	}
	if cfg.Enhancer.TimeoutSec != 5 {
		t.Errorf("expected Enhancer.TimeoutSec=5, got %d", cfg.Enhancer.TimeoutSec)
	}
	if cfg.Ingest.BatchSize != 100 {
		t.Errorf("expected Ingest.BatchSize=100, got %d", cfg.Ingest.BatchSize)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("PARTDEX_TEST_KEY", "sk-abc")

	in := []byte("api_key: ${PARTDEX_TEST_KEY}\nmodel: ${PARTDEX_TEST_MODEL:-gpt-4o-mini}\n")
	out := string(expandEnvVars(in))

	if out != "api_key: sk-abc\nmodel: gpt-4o-mini\n" {
		t.Errorf("expanded = %q", out)
	}
}

func TestLoad_FromConfigDir(t *testing.T) {
	dir := t.TempDir()
	cfgDir := filepath.Join(dir, "config")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatal(err)
	}
	yaml := "http:\n  port: 9090\ndatabase:\n  addrs: [\"localhost:6379\"]\nenhancer:\n  api_key: \"\"\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "test.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load("test")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.HTTP.Port != 9090 {
		t.Errorf("Port = %d, want 9090", cfg.HTTP.Port)
	}
	if cfg.Enhancer.TimeoutSec != 12 {
		t.Errorf("TimeoutSec = %d, want default 12", cfg.Enhancer.TimeoutSec)
	}
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, "environment: test\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 8090 {
		t.Errorf("port = %d, want 8090", cfg.Server.Port)
	}
	if cfg.Symbol != "BTCUSDC" {
		t.Errorf("symbol = %q, want BTCUSDC", cfg.Symbol)
	}
	if cfg.API.Timeout != 10*time.Second {
		t.Errorf("api timeout = %s, want 10s", cfg.API.Timeout)
	}
	if cfg.Panels.Volatility.Interval != time.Hour {
		t.Errorf("volatility interval = %s, want 1h", cfg.Panels.Volatility.Interval)
	}
	if cfg.Panels.Tendencies.Interval != 0 {
		t.Errorf("tendencies interval = %s, want 0", cfg.Panels.Tendencies.Interval)
	}
	if cfg.Panels.Flow.VolumeHighRatio != 1.5 || cfg.Panels.Flow.VolumeLowRatio != 0.5 {
		t.Errorf("flow thresholds = %v/%v, want 1.5/0.5",
			cfg.Panels.Flow.VolumeHighRatio, cfg.Panels.Flow.VolumeLowRatio)
	}
}

func TestLoadOverrides(t *testing.T) {
	path := writeConfig(t, `
environment: development
symbol: ETHUSDC
panels:
  flow:
    interval: 30m
    volume_high_ratio: 2.0
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Symbol != "ETHUSDC" {
		t.Errorf("symbol = %q", cfg.Symbol)
	}
	if cfg.Panels.Flow.Interval != 30*time.Minute {
		t.Errorf("flow interval = %s", cfg.Panels.Flow.Interval)
	}
	if cfg.Panels.Flow.VolumeHighRatio != 2.0 {
		t.Errorf("high ratio = %v", cfg.Panels.Flow.VolumeHighRatio)
	}
}

func TestLoadWithEnvOverrides(t *testing.T) {
	path := writeConfig(t, "environment: test\n")
	t.Setenv("METRICS_API_BASE_URL", "https://metrics.example.com")
	t.Setenv("METRICS_API_KEY", "sk-test")
	t.Setenv("SYMBOL", "BTCUSDT")

	cfg, err := LoadWithEnv(path)
	if err != nil {
		t.Fatalf("LoadWithEnv: %v", err)
	}
	if cfg.API.BaseURL != "https://metrics.example.com" {
		t.Errorf("base url = %q", cfg.API.BaseURL)
	}
	if cfg.API.Key != "sk-test" {
		t.Errorf("key = %q", cfg.API.Key)
	}
	if cfg.Symbol != "BTCUSDT" {
		t.Errorf("symbol = %q", cfg.Symbol)
	}
}

func TestValidateRejectsBadThresholds(t *testing.T) {
	path := writeConfig(t, `
environment: test
panels:
  flow:
    volume_high_ratio: 0.5
    volume_low_ratio: 1.5
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected validation error for inverted thresholds")
	}
}

func TestValidateRequiresSymbol(t *testing.T) {
	cfg := &Config{}
	cfg.Environment = "test"
	cfg.API.BaseURL = "http://localhost:8080"
	cfg.Panels.Flow.VolumeHighRatio = 1.5
	cfg.Panels.Flow.VolumeLowRatio = 0.5
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing symbol")
	}
}

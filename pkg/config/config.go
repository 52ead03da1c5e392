package config

import (
	"fmt"
	"os"
	"time"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment" default:"production"`
	Server      struct {
		Port            int           `yaml:"port" default:"8090"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"10s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
	} `yaml:"server"`
	Log struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"console"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"log"`
	API struct {
		BaseURL        string        `yaml:"base_url" default:"http://localhost:8080"`
		Key            string        `yaml:"key"`
		Timeout        time.Duration `yaml:"timeout" default:"10s"`
		RequestsPerSec int           `yaml:"requests_per_sec" default:"5"`
	} `yaml:"api"`
	Symbol string `yaml:"symbol" default:"BTCUSDC"`
	Panels struct {
		// Interval 0 means manual-only: one load at startup, then
		// refreshes happen only through the refresh endpoint.
		Tendencies struct {
			Interval time.Duration `yaml:"interval" default:"0s"`
		} `yaml:"tendencies"`
		Volatility struct {
			Interval time.Duration `yaml:"interval" default:"1h"`
		} `yaml:"volatility"`
		Flow struct {
			Interval        time.Duration `yaml:"interval" default:"1h"`
			VolumeHighRatio float64       `yaml:"volume_high_ratio" default:"1.5"`
			VolumeLowRatio  float64       `yaml:"volume_low_ratio" default:"0.5"`
		} `yaml:"flow"`
		Derivatives struct {
			Interval time.Duration `yaml:"interval" default:"1h"`
		} `yaml:"derivatives"`
		Session struct {
			Interval time.Duration `yaml:"interval" default:"0s"`
			// Optional AVWAP anchor, RFC3339 or unix seconds. Empty
			// lets the remote API anchor at UTC day start.
			AvwapAnchor string `yaml:"avwap_anchor"`
		} `yaml:"session"`
	} `yaml:"panels"`
}

// Load reads and parses a YAML configuration file.
func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var c Config
	if err := defaults.Set(&c); err != nil {
		return nil, fmt.Errorf("config defaults: %w", err)
	}
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &c, nil
}

// LoadWithEnv loads config from YAML and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("METRICS_API_BASE_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("METRICS_API_KEY"); v != "" {
		c.API.Key = v
	}
	if v := os.Getenv("SYMBOL"); v != "" {
		c.Symbol = v
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.API.BaseURL == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if c.Symbol == "" {
		return fmt.Errorf("symbol is required")
	}
	if c.Panels.Flow.VolumeLowRatio >= c.Panels.Flow.VolumeHighRatio {
		return fmt.Errorf("panels.flow: volume_low_ratio must be below volume_high_ratio")
	}
	return nil
}

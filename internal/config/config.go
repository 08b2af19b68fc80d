package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Market struct {
		Symbol     string `yaml:"symbol"`
		Interval   string `yaml:"interval"`    // sampling granularity of fetched bars
		Period     string `yaml:"period"`      // total lookback span
		WindowDays int    `yaml:"window_days"` // calendar days per evaluation window
	} `yaml:"market"`
	HTTP struct {
		Listen string `yaml:"listen"`
	} `yaml:"http"`
	Fetch struct {
		Timeout time.Duration `yaml:"timeout"`
		Proxy   string        `yaml:"proxy"`
	} `yaml:"fetch"`
	Cache struct {
		SQLitePath string        `yaml:"sqlite_path"`
		TTL        time.Duration `yaml:"ttl"`
	} `yaml:"cache"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	LogLevel string `yaml:"log_level"`
}

// Load reads config from a YAML file, applies GOLDSENTINEL_* environment
// variable overrides, then fills in defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment overrides, e.g. GOLDSENTINEL_MARKET_SYMBOL.
	if err := envconfig.Process("goldsentinel", cfg); err != nil {
		return nil, fmt.Errorf("env overrides: %w", err)
	}

	// Defaults
	if cfg.Market.Symbol == "" {
		cfg.Market.Symbol = "GC=F"
	}
	if cfg.Market.Interval == "" {
		cfg.Market.Interval = "15m"
	}
	if cfg.Market.Period == "" {
		cfg.Market.Period = "5d"
	}
	if cfg.Market.WindowDays == 0 {
		cfg.Market.WindowDays = 2
	}
	if cfg.HTTP.Listen == "" {
		cfg.HTTP.Listen = ":8787"
	}
	if cfg.Fetch.Timeout == 0 {
		cfg.Fetch.Timeout = 30 * time.Second
	}
	if cfg.Cache.TTL == 0 {
		cfg.Cache.TTL = 10 * time.Minute
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 */15 * * * *"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}

	return cfg, nil
}

// Validate checks that all required fields hold sane values.
func (c *Config) Validate() error {
	if c.Market.Symbol == "" {
		return fmt.Errorf("market.symbol is required")
	}
	if c.Market.Interval == "" {
		return fmt.Errorf("market.interval is required")
	}
	if c.Market.Period == "" {
		return fmt.Errorf("market.period is required")
	}
	if c.Market.WindowDays < 1 {
		return fmt.Errorf("market.window_days must be at least 1")
	}
	if c.Fetch.Timeout <= 0 {
		return fmt.Errorf("fetch.timeout must be positive")
	}
	if c.HTTP.Listen == "" {
		return fmt.Errorf("http.listen is required")
	}
	return nil
}

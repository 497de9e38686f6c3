package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Simulation struct {
		Days         int     `yaml:"days"`
		InitialPrice float64 `yaml:"initial_price"`
		Volatility   float64 `yaml:"volatility"`
		ShortWindow  int     `yaml:"short_window"`
		LongWindow   int     `yaml:"long_window"`
		InitialCash  float64 `yaml:"initial_cash"`
		Seed         int64   `yaml:"seed"` // 0 means time-derived
	} `yaml:"simulation"`
	Report struct {
		Every int    `yaml:"every"` // print every Nth ledger row, 0 disables
		Color string `yaml:"color"` // auto, always, never
	} `yaml:"report"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides and defaults. A missing file is not an error; defaults apply.
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

	// Environment variable overrides
	if v := os.Getenv("BACKTEST_DAYS"); v != "" {
		var days int
		if _, err := fmt.Sscanf(v, "%d", &days); err == nil {
			cfg.Simulation.Days = days
		}
	}
	if v := os.Getenv("BACKTEST_INITIAL_PRICE"); v != "" {
		var price float64
		if _, err := fmt.Sscanf(v, "%f", &price); err == nil {
			cfg.Simulation.InitialPrice = price
		}
	}
	if v := os.Getenv("BACKTEST_VOLATILITY"); v != "" {
		var vol float64
		if _, err := fmt.Sscanf(v, "%f", &vol); err == nil {
			cfg.Simulation.Volatility = vol
		}
	}
	if v := os.Getenv("BACKTEST_SHORT_WINDOW"); v != "" {
		var window int
		if _, err := fmt.Sscanf(v, "%d", &window); err == nil {
			cfg.Simulation.ShortWindow = window
		}
	}
	if v := os.Getenv("BACKTEST_LONG_WINDOW"); v != "" {
		var window int
		if _, err := fmt.Sscanf(v, "%d", &window); err == nil {
			cfg.Simulation.LongWindow = window
		}
	}
	if v := os.Getenv("BACKTEST_INITIAL_CASH"); v != "" {
		var cash float64
		if _, err := fmt.Sscanf(v, "%f", &cash); err == nil {
			cfg.Simulation.InitialCash = cash
		}
	}
	if v := os.Getenv("BACKTEST_SEED"); v != "" {
		var seed int64
		if _, err := fmt.Sscanf(v, "%d", &seed); err == nil {
			cfg.Simulation.Seed = seed
		}
	}
	if v := os.Getenv("BACKTEST_COLOR"); v != "" {
		cfg.Report.Color = v
	}

	// Defaults
	if cfg.Simulation.Days == 0 {
		cfg.Simulation.Days = 60
	}
	if cfg.Simulation.InitialPrice == 0 {
		cfg.Simulation.InitialPrice = 50000
	}
	if cfg.Simulation.Volatility == 0 {
		cfg.Simulation.Volatility = 0.02
	}
	if cfg.Simulation.ShortWindow == 0 {
		cfg.Simulation.ShortWindow = 7
	}
	if cfg.Simulation.LongWindow == 0 {
		cfg.Simulation.LongWindow = 30
	}
	if cfg.Simulation.InitialCash == 0 {
		cfg.Simulation.InitialCash = 10000
	}
	if cfg.Report.Every == 0 {
		cfg.Report.Every = 5
	}
	if cfg.Report.Color == "" {
		cfg.Report.Color = "auto"
	}

	return cfg, nil
}

// Validate checks that all parameters are well-formed. Window ordering is
// deliberately not validated: short >= long is degenerate but legal.
func (c *Config) Validate() error {
	if c.Simulation.Days < 1 {
		return fmt.Errorf("simulation.days must be >= 1")
	}
	if c.Simulation.InitialPrice <= 0 {
		return fmt.Errorf("simulation.initial_price must be positive")
	}
	if c.Simulation.Volatility < 0 {
		return fmt.Errorf("simulation.volatility must be non-negative")
	}
	if c.Simulation.ShortWindow <= 0 {
		return fmt.Errorf("simulation.short_window must be positive")
	}
	if c.Simulation.LongWindow <= 0 {
		return fmt.Errorf("simulation.long_window must be positive")
	}
	if c.Simulation.InitialCash < 0 {
		return fmt.Errorf("simulation.initial_cash must be non-negative")
	}
	switch c.Report.Color {
	case "auto", "always", "never":
	default:
		return fmt.Errorf("report.color must be auto, always or never, got %q", c.Report.Color)
	}
	if c.Report.Every < 0 {
		return fmt.Errorf("report.every must be non-negative")
	}
	return nil
}

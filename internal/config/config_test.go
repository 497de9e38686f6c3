package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_DefaultsWhenFileMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Simulation.Days != 60 {
		t.Errorf("expected default days 60, got %d", cfg.Simulation.Days)
	}
	if cfg.Simulation.InitialPrice != 50000 {
		t.Errorf("expected default initial price 50000, got %v", cfg.Simulation.InitialPrice)
	}
	if cfg.Simulation.ShortWindow != 7 || cfg.Simulation.LongWindow != 30 {
		t.Errorf("expected default windows 7/30, got %d/%d", cfg.Simulation.ShortWindow, cfg.Simulation.LongWindow)
	}
	if cfg.Simulation.InitialCash != 10000 {
		t.Errorf("expected default initial cash 10000, got %v", cfg.Simulation.InitialCash)
	}
	if cfg.Report.Every != 5 || cfg.Report.Color != "auto" {
		t.Errorf("unexpected report defaults: every=%d color=%q", cfg.Report.Every, cfg.Report.Color)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := []byte("simulation:\n  days: 90\n  initial_cash: 2500\nreport:\n  color: never\n")
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("BACKTEST_DAYS", "120")
	t.Setenv("BACKTEST_SEED", "42")

	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Simulation.Days != 120 {
		t.Errorf("env should override file: expected days 120, got %d", cfg.Simulation.Days)
	}
	if cfg.Simulation.InitialCash != 2500 {
		t.Errorf("expected initial cash 2500 from file, got %v", cfg.Simulation.InitialCash)
	}
	if cfg.Simulation.Seed != 42 {
		t.Errorf("expected seed 42 from env, got %d", cfg.Simulation.Seed)
	}
	if cfg.Report.Color != "never" {
		t.Errorf("expected color never from file, got %q", cfg.Report.Color)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero days", func(c *Config) { c.Simulation.Days = 0 }},
		{"negative price", func(c *Config) { c.Simulation.InitialPrice = -5 }},
		{"negative volatility", func(c *Config) { c.Simulation.Volatility = -0.1 }},
		{"bad short window", func(c *Config) { c.Simulation.ShortWindow = -7 }},
		{"bad long window", func(c *Config) { c.Simulation.LongWindow = -30 }},
		{"negative cash", func(c *Config) { c.Simulation.InitialCash = -1 }},
		{"bad color", func(c *Config) { c.Report.Color = "rainbow" }},
		{"negative every", func(c *Config) { c.Report.Every = -2 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
			if err != nil {
				t.Fatal(err)
			}
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

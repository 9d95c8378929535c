//-------------------------------------------------------------------------
//
// pgEdge Shop Data Generator
//
// Portions copyright (c) 2025 - 2026, pgEdge, Inc.
// This software is released under The PostgreSQL License
//
//-------------------------------------------------------------------------

// Package config handles configuration management for pgedge-shopdata.
// Configuration is loaded from config files and CLI flags (no environment variables).
// CLI flags take precedence over config file values, and every value has a
// default so each command also runs with no file and no flags at all.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for pgedge-shopdata.
type Config struct {
	// Connection is the PostgreSQL connection string of the relational store.
	Connection string `mapstructure:"connection"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `mapstructure:"log_level"`

	// DataDir is the directory holding the generated CSV files.
	DataDir string `mapstructure:"data_dir"`

	// Generate holds configuration for the generate subcommand.
	Generate GenerateConfig `mapstructure:"generate"`

	// Report holds configuration for the report subcommand.
	Report ReportConfig `mapstructure:"report"`
}

// GenerateConfig holds configuration for dataset generation.
type GenerateConfig struct {
	// Customers is the number of customers to generate.
	Customers int `mapstructure:"customers"`

	// Products is the number of products to generate.
	Products int `mapstructure:"products"`

	// Orders is the number of orders to generate.
	Orders int `mapstructure:"orders"`

	// MaxItemsPerOrder bounds the number of distinct products in one order.
	MaxItemsPerOrder int `mapstructure:"max_items_per_order"`

	// Seed makes generation reproducible. 0 picks a time-based seed.
	Seed uint64 `mapstructure:"seed"`
}

// ReportConfig holds configuration for the report runner.
type ReportConfig struct {
	// Queries restricts the report to the named queries. Empty runs all.
	Queries []string `mapstructure:"queries"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Connection: "postgres://postgres@localhost:5432/postgres",
		LogLevel:   "info",
		DataDir:    "data",
		Generate: GenerateConfig{
			Customers:        120,
			Products:         60,
			Orders:           300,
			MaxItemsPerOrder: 5,
		},
	}
}

// Load reads configuration from config files.
// Config file locations (in order of precedence):
// 1. Path specified by configFile parameter
// 2. ./pgedge-shopdata.yaml
// 3. ~/.config/pgedge-shopdata/config.yaml
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigName("pgedge-shopdata")
	v.SetConfigType("yaml")

	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "pgedge-shopdata"))
	}

	if configFile != "" {
		v.SetConfigFile(configFile)
	}

	// Read config file (ignore if not found)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := DefaultConfig()

	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}

	return cfg, nil
}

// ValidateGenerate checks configuration required for the generate command.
func (c *Config) ValidateGenerate() error {
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	g := c.Generate
	if g.Customers < 1 {
		return fmt.Errorf("customers must be at least 1")
	}
	if g.Products < 1 {
		return fmt.Errorf("products must be at least 1")
	}
	if g.Orders < 1 {
		return fmt.Errorf("orders must be at least 1")
	}
	if g.MaxItemsPerOrder < 1 {
		return fmt.Errorf("max_items_per_order must be at least 1")
	}
	if g.MaxItemsPerOrder > g.Products {
		return fmt.Errorf("max_items_per_order (%d) must not exceed products (%d)",
			g.MaxItemsPerOrder, g.Products)
	}
	return nil
}

// ValidateLoad checks configuration required for the load command.
func (c *Config) ValidateLoad() error {
	if c.Connection == "" {
		return fmt.Errorf("connection string is required")
	}
	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}
	return nil
}

// ValidateReport checks configuration required for the report command.
func (c *Config) ValidateReport() error {
	if c.Connection == "" {
		return fmt.Errorf("connection string is required")
	}
	return nil
}

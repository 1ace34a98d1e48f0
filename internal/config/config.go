// Package config provides configuration management for gfshard.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mrz1836/gfshard/rs"
	"github.com/mrz1836/gfshard/sss"
)

// Config represents the application configuration: default RS/SSS
// parameters the CLI falls back to when flags are not supplied, plus
// logging settings.
type Config struct {
	Version int           `yaml:"version"`
	Home    string        `yaml:"home"`
	RS      RSConfig      `yaml:"rs"`
	SSS     SSSConfig     `yaml:"sss"`
	Logging LoggingConfig `yaml:"logging"`
}

// RSConfig mirrors rs.EncodingConfig for YAML round-tripping.
type RSConfig struct {
	DataShards   int `yaml:"data_shards"`
	ParityShards int `yaml:"parity_shards"`
	ShardSize    int `yaml:"shard_size"`
}

// Encoding converts RSConfig to an rs.EncodingConfig.
func (c RSConfig) Encoding() rs.EncodingConfig {
	return rs.EncodingConfig{
		DataShards:   c.DataShards,
		ParityShards: c.ParityShards,
		ShardSize:    c.ShardSize,
	}
}

// SSSConfig mirrors sss.Config for YAML round-tripping.
type SSSConfig struct {
	Threshold       int  `yaml:"threshold"`
	TotalShares     int  `yaml:"total_shares"`
	SecretMaxSize   int  `yaml:"secret_max_size"`
	UseSecureRandom bool `yaml:"use_secure_random"`
}

// Sharing converts SSSConfig to an sss.Config.
func (c SSSConfig) Sharing() sss.Config {
	return sss.Config{
		Threshold:       c.Threshold,
		TotalShares:     c.TotalShares,
		SecretMaxSize:   c.SecretMaxSize,
		FieldSize:       sss.FieldSize,
		UseSecureRandom: c.UseSecureRandom,
	}
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads configuration from the specified file, layering it on top
// of Defaults.
func Load(path string) (*Config, error) {
	// #nosec G304 -- config file path is from validated user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes configuration to the specified file.
func Save(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o600)
}

// Path returns the default config file path under home.
func Path(home string) string {
	return filepath.Join(home, "config.yaml")
}

// GetHome returns the gfshard home directory path.
func (c *Config) GetHome() string {
	return c.Home
}

// GetLoggingLevel returns the configured logging level.
func (c *Config) GetLoggingLevel() string {
	return c.Logging.Level
}

// GetLoggingFile returns the configured log file path.
func (c *Config) GetLoggingFile() string {
	return c.Logging.File
}

// DefaultHome returns the default gfshard home directory.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".gfshard"
	}
	return filepath.Join(home, ".gfshard")
}

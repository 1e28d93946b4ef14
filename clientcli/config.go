package clientcli

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultEndpoint is the default server endpoint URL.
const DefaultEndpoint = "http://localhost:8080"

// Config holds client connection settings.
type Config struct {
	Endpoint string `yaml:"endpoint"`
}

// WithDefaults returns a copy of the config with empty fields filled in.
func (c *Config) WithDefaults() *Config {
	out := *c
	if out.Endpoint == "" {
		out.Endpoint = DefaultEndpoint
	}
	return &out
}

// DefaultConfigPath returns ~/.filedepot/config.yaml, or an empty string
// when the home directory cannot be determined.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".filedepot", "config.yaml")
}

// LoadConfigFromFile reads a YAML config file.
func LoadConfigFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config file: %w", err)
	}

	return &cfg, nil
}

// SaveConfigToFile writes the config as YAML, creating parent directories
// as needed.
func SaveConfigToFile(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// ConfigFromEnv builds a config from FILEDEPOT_SERVER.
func ConfigFromEnv() *Config {
	return &Config{
		Endpoint: os.Getenv("FILEDEPOT_SERVER"),
	}
}

// MergeConfig merges configs left to right; later non-empty values win.
func MergeConfig(configs ...*Config) *Config {
	merged := &Config{}
	for _, cfg := range configs {
		if cfg == nil {
			continue
		}
		if cfg.Endpoint != "" {
			merged.Endpoint = cfg.Endpoint
		}
	}
	return merged
}

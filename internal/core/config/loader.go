package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v2"
)

// Load reads configuration from a YAML file.
func Load(path string) (*AppConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	// Expand environment variables in the YAML content
	expandedData := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expandedData), &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// Default returns a configuration usable without a config file.
func Default() *AppConfig {
	var cfg AppConfig
	cfg.applyDefaults()
	return &cfg
}

func (cfg *AppConfig) applyDefaults() {
	if cfg.Daemon.Address == "" {
		cfg.Daemon.Address = "localhost:50053"
	}
	if cfg.Timeouts.Dial == 0 {
		cfg.Timeouts.Dial = 10 * time.Second
	}
	if cfg.Timeouts.Connect == 0 {
		cfg.Timeouts.Connect = 5 * time.Second
	}
	if cfg.Timeouts.Probe == 0 {
		cfg.Timeouts.Probe = 50 * time.Millisecond
	}
	if cfg.Monitor.Port == 0 {
		cfg.Monitor.Port = 9090
	}
	if cfg.Monitor.Interval == 0 {
		cfg.Monitor.Interval = 10 * time.Second
	}
}

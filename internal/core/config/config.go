package config

import "time"

// AppConfig represents the top-level configuration.
type AppConfig struct {
	Daemon   DaemonConfig  `yaml:"daemon"`
	Timeouts TimeoutConfig `yaml:"timeouts"`
	Logging  LoggingConfig `yaml:"logging"`
	Monitor  MonitorConfig `yaml:"monitor"`
}

// DaemonConfig holds settings for reaching the keymapd daemon.
type DaemonConfig struct {
	Address string `yaml:"address"`
	TLS     bool   `yaml:"tls"`
}

// TimeoutConfig holds the time budgets for the session layer.
type TimeoutConfig struct {
	Dial    time.Duration `yaml:"dial"`    // gRPC channel dial
	Connect time.Duration `yaml:"connect"` // one-shot session connect
	Probe   time.Duration `yaml:"probe"`   // availability probe, kept short on purpose
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, text
}

// MonitorConfig holds settings for the long-running monitor mode.
type MonitorConfig struct {
	Port     int           `yaml:"port"`
	Interval time.Duration `yaml:"interval"`
}

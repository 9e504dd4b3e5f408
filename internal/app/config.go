package app

import "fmt"

// Config holds the process-level options of an App. Bot settings such as the
// token live in config.Bot and are read by the loader.
type Config struct {
	ConfigPath string // .hcl file or directory; empty means environment only

	LogFormat       string
	LogLevel        string
	HealthcheckPort int
}

// NewConfig validates cfg and returns a normalized copy. Log level and
// format are case-insensitive and default to "info" and "text".
func NewConfig(cfg Config) (*Config, error) {
	level, format, err := normalizeLogging(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	cfg.LogLevel, cfg.LogFormat = level, format

	if cfg.HealthcheckPort < 0 || cfg.HealthcheckPort > 65535 {
		return nil, fmt.Errorf("healthcheck port %d is out of range", cfg.HealthcheckPort)
	}
	return &cfg, nil
}

// configPaths lists the paths handed to the loader.
func (c *Config) configPaths() []string {
	if c.ConfigPath == "" {
		return nil
	}
	return []string{c.ConfigPath}
}

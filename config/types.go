package config

import "time"

// Config represents the complete configuration structure
type Config struct {
	API      APIConfig      `mapstructure:"api"`
	Defaults DefaultsConfig `mapstructure:"defaults"`
	Filter   FilterConfig   `mapstructure:"filter"`
	Safety   SafetyConfig   `mapstructure:"safety"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// APIConfig holds the Secure Home account and connection settings
type APIConfig struct {
	Email    string        `mapstructure:"email"`
	Password string        `mapstructure:"password"`
	Token    string        `mapstructure:"token"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// DefaultsConfig carries the site and partition used when flags are omitted
type DefaultsConfig struct {
	SiteID      string `mapstructure:"site_id"`
	PartitionID string `mapstructure:"partition_id"`
}

// FilterConfig contains the default notification filter and named presets
type FilterConfig struct {
	Default string            `mapstructure:"default"`
	Presets map[string]string `mapstructure:"presets"`
}

// SafetyConfig contains safety-related settings
type SafetyConfig struct {
	ConfirmDisarm bool `mapstructure:"confirm_disarm"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}

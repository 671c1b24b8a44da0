package config

import (
	"time"
)

// AppConfig is the top-level CLI configuration.
type AppConfig struct {
	API     APIConfig     `yaml:"api"`
	Logging LoggingConfig `yaml:"logging"`
	Jobs    JobsConfig    `yaml:"jobs"`
}

// APIConfig holds connection settings for the Voxa API.
type APIConfig struct {
	Key                 string `yaml:"key"`
	BaseURL             string `yaml:"base_url"`
	TimeoutSeconds      int    `yaml:"timeout_seconds"`
	MaxRetries          int    `yaml:"max_retries"`
	PollIntervalSeconds int    `yaml:"poll_interval_seconds"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// JobsConfig enables the Redis-backed async job registry when URL is set.
type JobsConfig struct {
	RedisURL      string `yaml:"redis_url"`
	RedisPassword string `yaml:"redis_password"`
}

// Timeout returns the per-attempt timeout, 0 when unset.
func (c APIConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// PollInterval returns the async poll interval, 0 when unset.
func (c APIConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalSeconds) * time.Second
}

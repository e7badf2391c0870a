package domain

import "time"

// ConfigFileName is the name of the configuration file searched for by the loader.
const ConfigFileName = "relink.yaml"

// DefaultFrameRate is the number of host ticks per second when not configured.
const DefaultFrameRate = 60

// ProgramConfig describes one hot-reloaded shader program.
// File paths are already resolved against the data directory.
type ProgramConfig struct {
	Name         string
	Files        ShaderFiles
	Geometry     GeometryConfig
	PollInterval time.Duration
}

// LogConfig controls the logging adapter.
type LogConfig struct {
	Level      LogLevel
	JSON       bool
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// MetricsConfig controls the metrics endpoint. An empty Addr disables it.
type MetricsConfig struct {
	Addr string
}

// Config is the validated application configuration.
type Config struct {
	DataDir      string
	FrameRate    int
	PollInterval time.Duration
	Log          LogConfig
	Metrics      MetricsConfig
	Programs     []ProgramConfig
}

// FrameInterval returns the duration of one host tick.
func (c *Config) FrameInterval() time.Duration {
	rate := c.FrameRate
	if rate <= 0 {
		rate = DefaultFrameRate
	}
	return time.Second / time.Duration(rate)
}

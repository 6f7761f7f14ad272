// Package config loads touchstamp configuration from TOML (or YAML) files.
//
// Configuration structure:
//   - [repo]: repository root; empty means "search upward for .git"
//   - [stamp]: zone name, UTC offset and layout of the timestamp
//   - [heartbeat]: heartbeat log path and message
//   - [readme]: document path, line pattern and replacement template
//   - [schedule]: cron expressions used by "touchstamp watch"
//   - [metrics]: listen address for the Prometheus endpoint
//   - [logging]: logging level, format, and output
//
// Path values may reference environment variables using ${VAR} or
// ${VAR:default} syntax, and may start with ~/.
package config

// Config represents the main application configuration.
type Config struct {
	Repo      RepoConfig      `toml:"repo" yaml:"repo"`
	Stamp     StampConfig     `toml:"stamp" yaml:"stamp"`
	Heartbeat HeartbeatConfig `toml:"heartbeat" yaml:"heartbeat"`
	Readme    ReadmeConfig    `toml:"readme" yaml:"readme"`
	Schedule  ScheduleConfig  `toml:"schedule" yaml:"schedule"`
	Metrics   MetricsConfig   `toml:"metrics" yaml:"metrics"`
	Logging   LoggingConfig   `toml:"logging" yaml:"logging"`
}

// RepoConfig locates the repository.
type RepoConfig struct {
	Root string `toml:"root" yaml:"root"`
}

// StampConfig describes how the current time is rendered.
type StampConfig struct {
	Zone        string `toml:"zone" yaml:"zone"`
	OffsetHours int    `toml:"offset_hours" yaml:"offset_hours"`
	Layout      string `toml:"layout" yaml:"layout"` // Go layout or strftime pattern
}

// HeartbeatConfig describes the heartbeat log.
type HeartbeatConfig struct {
	Path    string `toml:"path" yaml:"path"`
	Message string `toml:"message" yaml:"message"`
	MaxAge  string `toml:"max_age" yaml:"max_age"` // Go duration, e.g. "2h"
}

// ReadmeConfig describes the stamped document.
type ReadmeConfig struct {
	Path     string `toml:"path" yaml:"path"`
	Pattern  string `toml:"pattern" yaml:"pattern"`
	Template string `toml:"template" yaml:"template"`
}

// ScheduleConfig holds cron expressions for watch mode. An empty value
// disables the job.
type ScheduleConfig struct {
	Heartbeat string `toml:"heartbeat" yaml:"heartbeat"`
	Readme    string `toml:"readme" yaml:"readme"`
}

// MetricsConfig configures the Prometheus endpoint.
type MetricsConfig struct {
	Listen string `toml:"listen" yaml:"listen"`
	Path   string `toml:"path" yaml:"path"`
}

// LoggingConfig selects log level, format and destination.
type LoggingConfig struct {
	Level  string `toml:"level" yaml:"level"`
	Format string `toml:"format" yaml:"format"`
	Output string `toml:"output" yaml:"output"`
}

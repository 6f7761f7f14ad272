package config

import (
	"github.com/aatumaykin/touchstamp/internal/heartbeat"
	"github.com/aatumaykin/touchstamp/internal/readme"
	"github.com/aatumaykin/touchstamp/internal/timestamp"
)

const (
	DefaultZone              = "JST"
	DefaultOffsetHours       = 9
	DefaultHeartbeatSchedule = "@hourly"
	DefaultReadmeSchedule    = "0 0 * * *"
	DefaultMetricsPath       = "/metrics"
)

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills unset fields with their default values.
func applyDefaults(c *Config) {
	// The default zone applies only when neither name nor offset is given.
	// An offset without a name is left for Validate to reject.
	if c.Stamp.Zone == "" && c.Stamp.OffsetHours == 0 {
		c.Stamp.Zone = DefaultZone
		c.Stamp.OffsetHours = DefaultOffsetHours
	}
	if c.Stamp.Layout == "" {
		c.Stamp.Layout = timestamp.DefaultLayout
	}

	if c.Heartbeat.Path == "" {
		c.Heartbeat.Path = heartbeat.DefaultPath
	}
	if c.Heartbeat.Message == "" {
		c.Heartbeat.Message = heartbeat.DefaultMessage
	}

	if c.Readme.Path == "" {
		c.Readme.Path = readme.DefaultPath
	}
	if c.Readme.Pattern == "" {
		c.Readme.Pattern = readme.DefaultPattern
	}
	if c.Readme.Template == "" {
		c.Readme.Template = readme.DefaultTemplate
	}

	if c.Schedule.Heartbeat == "" && c.Schedule.Readme == "" {
		c.Schedule.Heartbeat = DefaultHeartbeatSchedule
		c.Schedule.Readme = DefaultReadmeSchedule
	}

	if c.Metrics.Path == "" {
		c.Metrics.Path = DefaultMetricsPath
	}

	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.Logging.Output == "" {
		c.Logging.Output = "stderr"
	}
}

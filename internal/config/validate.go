package config

import (
	"fmt"
	"strings"

	"github.com/aatumaykin/touchstamp/internal/cron"
	"github.com/aatumaykin/touchstamp/internal/logger"
	"github.com/aatumaykin/touchstamp/internal/readme"
	"github.com/aatumaykin/touchstamp/internal/timestamp"
)

// Validate checks the configuration and returns every problem found.
func (c *Config) Validate() []error {
	var errors []error

	if c.Stamp.Zone == "" {
		errors = append(errors, fmt.Errorf("stamp.zone is required when stamp.offset_hours is set"))
	}
	if err := timestamp.ValidateOffset(c.Stamp.OffsetHours); err != nil {
		errors = append(errors, fmt.Errorf("stamp.offset_hours: %w", err))
	}
	if layout, err := c.Layout(); err != nil {
		errors = append(errors, fmt.Errorf("stamp.layout: %w", err))
	} else if err := timestamp.CheckRoundTrip(c.Location(), layout); err != nil {
		errors = append(errors, fmt.Errorf("stamp.layout with zone %q: %w", c.Stamp.Zone, err))
	}

	if c.Heartbeat.Path == "" {
		errors = append(errors, fmt.Errorf("heartbeat.path is required"))
	} else if err := validatePath(c.Heartbeat.Path, "heartbeat.path"); err != nil {
		errors = append(errors, err)
	}
	if strings.ContainsAny(c.Heartbeat.Message, "\r\n") {
		errors = append(errors, fmt.Errorf("heartbeat.message must be a single line"))
	}
	if _, err := c.MaxAge(); err != nil {
		errors = append(errors, err)
	}

	if c.Readme.Path == "" {
		errors = append(errors, fmt.Errorf("readme.path is required"))
	} else if err := validatePath(c.Readme.Path, "readme.path"); err != nil {
		errors = append(errors, err)
	}
	if _, err := readme.CompilePattern(c.Readme.Pattern); err != nil {
		errors = append(errors, fmt.Errorf("readme.pattern: %w", err))
	}
	if !strings.Contains(c.Readme.Template, readme.Placeholder) {
		errors = append(errors, fmt.Errorf("readme.template must contain %s", readme.Placeholder))
	}

	if c.Schedule.Heartbeat != "" {
		if err := cron.ValidateSpec(c.Schedule.Heartbeat); err != nil {
			errors = append(errors, fmt.Errorf("schedule.heartbeat: %w", err))
		}
	}
	if c.Schedule.Readme != "" {
		if err := cron.ValidateSpec(c.Schedule.Readme); err != nil {
			errors = append(errors, fmt.Errorf("schedule.readme: %w", err))
		}
	}

	if c.Metrics.Listen != "" && !strings.HasPrefix(c.Metrics.Path, "/") {
		errors = append(errors, fmt.Errorf("metrics.path must start with /"))
	}

	if c.Logging.Level == "" {
		errors = append(errors, fmt.Errorf("logging.level is required"))
	} else if !logger.ValidLevel(c.Logging.Level) {
		errors = append(errors, fmt.Errorf("invalid logging.level: %s (expected: debug, info, warn, error)", c.Logging.Level))
	}

	if c.Logging.Format == "" {
		errors = append(errors, fmt.Errorf("logging.format is required"))
	} else if !logger.ValidFormat(c.Logging.Format) {
		errors = append(errors, fmt.Errorf("invalid logging.format: %s (expected: json, text)", c.Logging.Format))
	}

	if c.Logging.Output == "" {
		errors = append(errors, fmt.Errorf("logging.output is required"))
	}

	return errors
}

func validatePath(path, fieldName string) error {
	if strings.Contains(path, "..") {
		return fmt.Errorf("%s contains potentially dangerous path traversal sequence", fieldName)
	}
	return nil
}

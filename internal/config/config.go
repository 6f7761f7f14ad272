package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/aatumaykin/touchstamp/internal/timestamp"
)

// Load reads configuration from path. Files ending in .yaml or .yml are
// decoded as YAML, everything else as TOML.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	applyDefaults(&cfg)
	expandEnvVars(&cfg)

	return &cfg, nil
}

// LoadOptional is Load, except that a missing file yields Default().
func LoadOptional(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			cfg := Default()
			expandEnvVars(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	return Load(path)
}

// Location returns the fixed-offset zone described by the stamp section.
func (c *Config) Location() *time.Location {
	return timestamp.Zone(c.Stamp.Zone, c.Stamp.OffsetHours)
}

// Layout returns the stamp layout as a Go time layout.
func (c *Config) Layout() (string, error) {
	return timestamp.ParseLayout(c.Stamp.Layout)
}

// Stamper builds a stamper for this configuration on clock.
func (c *Config) Stamper(clock timestamp.Clock) (*timestamp.Stamper, error) {
	layout, err := c.Layout()
	if err != nil {
		return nil, err
	}
	return timestamp.NewStamper(clock, c.Location(), layout), nil
}

// MaxAge returns heartbeat.max_age as a duration; empty means zero.
func (c *Config) MaxAge() (time.Duration, error) {
	if c.Heartbeat.MaxAge == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Heartbeat.MaxAge)
	if err != nil {
		return 0, fmt.Errorf("invalid heartbeat.max_age %q: %w", c.Heartbeat.MaxAge, err)
	}
	return d, nil
}

// expandEnvVars expands ${VAR} references and ~/ in path-like fields.
func expandEnvVars(c *Config) {
	c.Repo.Root = expandHome(expandEnv(c.Repo.Root))
	c.Heartbeat.Path = expandHome(expandEnv(c.Heartbeat.Path))
	c.Readme.Path = expandHome(expandEnv(c.Readme.Path))
	c.Metrics.Listen = expandEnv(c.Metrics.Listen)
	c.Logging.Output = expandHome(expandEnv(c.Logging.Output))
}

// expandEnv expands a value of the form ${VAR} or ${VAR:default}. Other
// values are returned unchanged.
func expandEnv(s string) string {
	if !strings.HasPrefix(s, "${") {
		return s
	}

	end := strings.Index(s, "}")
	if end == -1 {
		return s
	}

	content := s[2:end]
	rest := s[end+1:]
	if parts := strings.SplitN(content, ":", 2); len(parts) == 2 {
		if val := os.Getenv(parts[0]); val != "" {
			return val + rest
		}
		return parts[1] + rest
	}

	return os.Getenv(content) + rest
}

// expandHome replaces a leading ~/ with the home directory.
func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

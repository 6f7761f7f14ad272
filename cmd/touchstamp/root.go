package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aatumaykin/touchstamp/internal/app"
	"github.com/aatumaykin/touchstamp/internal/config"
	"github.com/aatumaykin/touchstamp/internal/constants"
	"github.com/aatumaykin/touchstamp/internal/logger"
)

var (
	configPath string
	rootPath   string
	debug      bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "touchstamp",
	Short: "Keep repository timestamps current",
	Long: `touchstamp appends heartbeat lines to a log and rewrites the
"last updated" line of a README, always in a fixed-offset time zone (JST by
default). Run it from cron or CI, or let "touchstamp watch" schedule itself.`,
	Version:      Version,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file (default: "+constants.DefaultConfigPath+" if present)")
	rootCmd.PersistentFlags().StringVarP(&rootPath, "root", "r", "", "Repository root (default: nearest directory containing .git)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(heartbeatCmd)
	rootCmd.AddCommand(readmeCmd)
	rootCmd.AddCommand(watchCmd)
}

// loadConfig loads .env and the configuration file, then applies flag
// overrides. An explicit --config must exist; the default path is optional.
func loadConfig() (*config.Config, error) {
	if err := config.LoadEnvOptional(constants.DefaultEnvPath); err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", constants.DefaultEnvPath, err)
	}

	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		cfg, err = config.Load(configPath)
	} else {
		cfg, err = config.LoadOptional(constants.DefaultConfigPath)
	}
	if err != nil {
		return nil, err
	}

	if rootPath != "" {
		cfg.Repo.Root = rootPath
	}
	if debug {
		cfg.Logging.Level = "debug"
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("invalid configuration: %w", errors.Join(errs...))
	}
	return cfg, nil
}

// setup builds the application for a touch command.
func setup() (*app.App, *logger.Logger, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(logger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	log, _ = log.WithRunID()
	logger.SetDefault(log)

	a, err := app.New(cfg, log, app.Options{})
	if err != nil {
		return nil, nil, err
	}
	return a, log, nil
}

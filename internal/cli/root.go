// Package cli implements the crema command-line interface.
package cli

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crema-app/crema/internal/config"
	"github.com/crema-app/crema/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "crema",
	Short: "crema: espresso shot tracking for dialed-in coffee",
	Long: `crema tracks your espresso shots: grinder settings, doses, yields
and tasting notes, so dialing in a new bag takes guesses out of the loop.

Run "crema onboard" once to register your grinder and basket.`,
	Version:       version.GetVersion(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

// appConfig holds the configuration loaded at startup, shared by the
// subcommands.
var appConfig *config.Config

// Execute loads configuration, configures logging and runs the root
// command. It is the single entry point used by cmd/crema.
func Execute() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	appConfig = cfg
	setupLogging(cfg)
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("crema %s\n", version.GetVersion()))
}

// loadConfig loads the app configuration from the default directory,
// falling back to defaults when no config file exists yet.
func loadConfig() (*config.Config, error) {
	mgr := config.NewManager()
	cfg, err := mgr.Load(config.DefaultDir())
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}
	return cfg, nil
}

// setupLogging configures the process-wide slog logger from config.
func setupLogging(cfg *config.Config) {
	level := slog.LevelInfo
	switch strings.ToLower(cfg.System.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if strings.ToLower(cfg.System.LogFormat) == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}
	slog.SetDefault(slog.New(handler))
}

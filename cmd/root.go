// Package cmd implements the CLI commands for careerladder using Cobra.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/gaurav-prasanna/careerladder/config"
)

// defaultConfigFile is picked up from the working directory when --config is not set.
const defaultConfigFile = "careerladder.toml"

// Global flag variables.
var (
	flagConfig   string
	flagLogLevel string
	flagBrowser  bool
	flagRedis    string
)

// Loaded by the root PersistentPreRunE before any subcommand runs.
var (
	cfg    *config.Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "careerladder",
	Short: "careerladder — turn footballer transfer histories into career puzzles",
	Long: `careerladder scrapes player profiles from Transfermarkt, collapses each
transfer history into a club-by-club career timeline and derives a daily
"guess the player" puzzle from it.

Usage:
  careerladder scrape <profile-url>
  careerladder batch [list-file] --format ts
  careerladder discover <squad-url>
  careerladder today <players.json>`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to a TOML config file (default: ./"+defaultConfigFile+" if present)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&flagBrowser, "browser", false, "Render pages with headless Chrome")
	rootCmd.PersistentFlags().StringVar(&flagRedis, "redis", "", "Redis URL for the page cache, e.g. redis://localhost:6379/0")
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// setup loads configuration, applies global flag overrides and builds the logger.
func setup(cmd *cobra.Command, _ []string) error {
	path, err := resolveConfigPath(flagConfig)
	if err != nil {
		return err
	}

	loaded, err := config.Load(path, ".env")
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		loaded.Logging.Level = flagLogLevel
	}
	if flags.Changed("browser") {
		loaded.Fetch.Browser = flagBrowser
	}
	if flags.Changed("redis") {
		loaded.Cache.RedisURL = flagRedis
	}
	if err := loaded.Validate(); err != nil {
		return err
	}

	level, _ := loaded.LogLevel()
	logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	cfg = loaded
	logger.Debug("configuration loaded", "file", path, "players", len(cfg.Players), "format", cfg.Output.Format)
	return nil
}

// resolveConfigPath returns the explicit path, or the default file when it
// exists, or "" for none.
func resolveConfigPath(explicit string) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	info, err := os.Stat(defaultConfigFile)
	switch {
	case err == nil && !info.IsDir():
		return defaultConfigFile, nil
	case err == nil, errors.Is(err, fs.ErrNotExist):
		return "", nil
	default:
		return "", fmt.Errorf("stat config: %w", err)
	}
}

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"council-portal-api/internal/config"
	"council-portal-api/internal/logging"

	"github.com/spf13/cobra"
)

var (
	flagDBPath   string
	flagLogLevel string
	flagCache    string
)

var rootCmd = &cobra.Command{
	Use:           "portal",
	Short:         "Municipal council portal API",
	Long:          "Serves the council portal's content API and manages its data store.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "SQLite database path (overrides PORTAL_DB_PATH)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "debug, info, warn or error (overrides PORTAL_LOG_LEVEL)")
	rootCmd.PersistentFlags().StringVar(&flagCache, "cache", "", "cache backend: memory or bolt (overrides PORTAL_CACHE_BACKEND)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(cacheCmd)
}

// loadConfig reads the environment and applies any persistent flags the
// caller set.
func loadConfig(cmd *cobra.Command) (config.Config, *slog.Logger, error) {
	cfg, err := config.Load(os.Getenv)
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("load config: %w", err)
	}
	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Database.Path = flagDBPath
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = flagLogLevel
	}
	if flags.Changed("cache") {
		cfg.Cache.Backend = flagCache
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, nil, fmt.Errorf("config: %w", err)
	}

	logger, err := logging.New(os.Stderr, cfg.Log.Level)
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, logger, nil
}

package cmd

import (
	"fmt"

	"council-portal-api/internal/database"

	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the content tables",
	Long:  "Provisions every table the portal reads and writes. Safe to run repeatedly.",
	RunE:  runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	db, err := database.Open(cfg.Database.Path, cfg.Database.Debug)
	if err != nil {
		return err
	}
	if sqlDB, err := db.DB(); err == nil {
		defer sqlDB.Close()
	}

	if err := database.Migrate(db); err != nil {
		return err
	}
	logger.Info("migrated", "db", cfg.Database.Path)
	fmt.Fprintln(cmd.OutOrStdout(), "tables are up to date")
	return nil
}

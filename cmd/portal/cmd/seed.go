package cmd

import (
	"fmt"

	"council-portal-api/internal/database"

	"github.com/spf13/cobra"
)

var seedMigrate bool

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the starter content",
	Long:  "Inserts the default services, departments, officials and notices. Existing rows are kept.",
	RunE:  runSeed,
}

func init() {
	seedCmd.Flags().BoolVar(&seedMigrate, "migrate", true, "Run migrations first")
}

func runSeed(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	a, err := openApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	if seedMigrate {
		if err := database.Migrate(a.db); err != nil {
			return err
		}
	}
	n, err := database.Seed(a.db)
	if err != nil {
		return err
	}
	// seeded rows must not hide behind entries cached before the seed
	if err := a.content.InvalidateAll(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "inserted %d rows\n", n)
	return nil
}

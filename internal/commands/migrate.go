package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SscSPs/rental_ledger/internal/platform/config"
	"github.com/SscSPs/rental_ledger/pkg/database"
)

func newMigrateCommand(d deps) *cobra.Command {
	return &cobra.Command{
		Use:       "migrate [up|down]",
		Short:     "Apply or revert the ledger schema",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{string(database.MigrateUp), string(database.MigrateDown)},
		RunE: func(cmd *cobra.Command, args []string) error {
			direction := database.MigrateUp
			if len(args) == 1 {
				direction = database.MigrationDirection(args[0])
			}

			cfg, err := d.loadConfig()
			if err != nil {
				return err
			}
			if cfg.StorageDriver != config.DriverPostgres {
				return fmt.Errorf("migrations need STORAGE_DRIVER=%s, got %q", config.DriverPostgres, cfg.StorageDriver)
			}

			changed, err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath, direction)
			if err != nil {
				return err
			}
			if !changed {
				fmt.Fprintln(cmd.OutOrStdout(), "No migrations to apply.")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Migrations applied (%s).\n", direction)
			return nil
		},
	}
}

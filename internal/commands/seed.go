package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SscSPs/rental_ledger/internal/app"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
)

func newSeedCommand(d deps) *cobra.Command {
	var creator string

	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Insert the default rental chart of accounts",
		Long:  "Insert the default rental chart of accounts. Accounts that already exist by name are left untouched.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return d.withApp(cmd, app.Options{}, func(ctx context.Context, a *app.App) error {
				chart := domain.DefaultChart()
				created, err := a.Services.Account.SeedAccounts(ctx, chart, creator)
				if err != nil {
					return fmt.Errorf("seeding chart of accounts: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d of %d accounts.\n", created, len(chart))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&creator, "created-by", "ledgerctl", "identity recorded on the new accounts")

	return cmd
}

package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/SscSPs/rental_ledger/internal/app"
)

func newPartyCommand(d deps) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "party",
		Short: "Manage customers and vendors",
	}

	cmd.AddCommand(&cobra.Command{
		Use:       "add [customer|vendor] NAME",
		Short:     "Register a customer or vendor",
		Args:      cobra.ExactArgs(2),
		ValidArgs: []string{"customer", "vendor"},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, name := args[0], strings.TrimSpace(args[1])
			if name == "" {
				return fmt.Errorf("party name must not be blank")
			}
			if kind != "customer" && kind != "vendor" {
				return fmt.Errorf("unknown party kind %q: want customer or vendor", kind)
			}

			return d.withApp(cmd, app.Options{}, func(ctx context.Context, a *app.App) error {
				add := a.Parties.AddCustomer
				if kind == "vendor" {
					add = a.Parties.AddVendor
				}
				id, err := add(ctx, name)
				if err != nil {
					return fmt.Errorf("adding %s: %w", kind, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Added %s %q with id %d.\n", kind, name, id)
				return nil
			})
		},
	})

	return cmd
}

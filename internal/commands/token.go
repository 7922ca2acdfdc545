package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/SscSPs/rental_ledger/internal/utils"
)

func newTokenCommand(d deps) *cobra.Command {
	var subject string
	var expiry time.Duration

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Mint a bearer token for calling the API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := d.loadConfig()
			if err != nil {
				return err
			}
			if expiry <= 0 {
				expiry = cfg.JWTExpiryDuration
			}
			token, err := utils.GenerateJWT(subject, cfg.JWTSecret, expiry, cfg.JWTIssuer)
			if err != nil {
				return fmt.Errorf("minting token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().StringVar(&subject, "subject", "", "caller identity recorded as creator (required)")
	_ = cmd.MarkFlagRequired("subject")
	cmd.Flags().DurationVar(&expiry, "expiry", 0, "token lifetime; defaults to JWT_EXPIRY_DURATION")

	return cmd
}

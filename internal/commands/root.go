// Package commands implements ledgerctl, the setup and inspection CLI.
package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/SscSPs/rental_ledger/internal/app"
	"github.com/SscSPs/rental_ledger/internal/platform/config"
)

// deps are the collaborators every subcommand resolves lazily, so that
// --help works without a database.
type deps struct {
	loadConfig func() (*config.Config, error)
	openApp    func(ctx context.Context, cfg *config.Config, logger *slog.Logger, opts app.Options) (*app.App, error)
}

func defaultDeps() deps {
	return deps{
		loadConfig: config.LoadConfig,
		openApp:    app.New,
	}
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	return newRootCommand(defaultDeps())
}

func newRootCommand(d deps) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ledgerctl",
		Short: "Set up and inspect the rental ledger",
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newMigrateCommand(d),
		newSeedCommand(d),
		newPartyCommand(d),
		newTrialBalanceCommand(d),
		newTokenCommand(d),
	)

	return rootCmd
}

func cliLogger(w io.Writer) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelWarn}))
}

// withApp loads configuration, opens the ledger and runs fn against it.
func (d deps) withApp(cmd *cobra.Command, opts app.Options, fn func(ctx context.Context, a *app.App) error) error {
	cfg, err := d.loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	a, err := d.openApp(ctx, cfg, cliLogger(cmd.ErrOrStderr()), opts)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(ctx, a)
}

package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/SscSPs/rental_ledger/internal/app"
	"github.com/SscSPs/rental_ledger/internal/core/domain"
	"github.com/SscSPs/rental_ledger/internal/dto"
)

func newTrialBalanceCommand(d deps) *cobra.Command {
	var asOfFlag string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "trial-balance",
		Short: "Print the trial balance as of a date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			asOf := domain.DateOnly(time.Now())
			if asOfFlag != "" {
				parsed, err := domain.ParseDate(asOfFlag)
				if err != nil {
					return fmt.Errorf("--as-of: %w", err)
				}
				asOf = parsed
			}

			return d.withApp(cmd, app.Options{}, func(ctx context.Context, a *app.App) error {
				report, err := a.Services.Reporting.TrialBalance(ctx, asOf)
				if err != nil {
					return err
				}
				if asJSON {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(dto.ToTrialBalanceResponse(report))
				}
				return writeTrialBalance(cmd.OutOrStdout(), report)
			})
		},
	}

	cmd.Flags().StringVar(&asOfFlag, "as-of", "", "cutoff date (YYYY-MM-DD), inclusive; defaults to today")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")

	return cmd
}

func writeTrialBalance(out io.Writer, report *domain.TrialBalanceReport) error {
	fmt.Fprintf(out, "Trial balance as of %s\n\n", report.AsOf.Format(domain.DateLayout))

	tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(tw, "Account\tType\tDebit\tCredit\t")
	for _, line := range report.Lines {
		name := line.AccountName
		if line.Anomalous {
			name += " (!)"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t\n", name, line.AccountType,
			line.DebitBalance.StringFixed(2), line.CreditBalance.StringFixed(2))
	}
	fmt.Fprintf(tw, "Total\t\t%s\t%s\t\n", report.TotalDebit.StringFixed(2), report.TotalCredit.StringFixed(2))
	if err := tw.Flush(); err != nil {
		return err
	}

	if !report.Balanced() {
		fmt.Fprintln(out, "\nWARNING: debits and credits do not agree")
	}
	return nil
}

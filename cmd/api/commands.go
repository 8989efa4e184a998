package main

import (
	"fmt"

	"github.com/spf13/cobra"

	adminUseCase "github.com/amirhossein-jamali/linkledger/internal/domain/usecase/admin"
)

const (
	flagEmail  = "email"
	flagAmount = "amount"
	flagReason = "reason"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer a.close()
			if err := a.migrate(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return nil
		},
	}
}

func newGrantCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grant",
		Short: "Credit a user's balance as an operator",
		RunE: func(cmd *cobra.Command, _ []string) error {
			email, _ := cmd.Flags().GetString(flagEmail)
			amount, _ := cmd.Flags().GetInt64(flagAmount)
			reason, _ := cmd.Flags().GetString(flagReason)

			a, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer a.close()

			res, err := a.useCases(disabledGateway{}).admin.Grant(cmd.Context(), adminUseCase.SystemActor, email, amount, reason)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "granted %d credits to %s (reference %s, balance %d)\n",
				res.Amount, email, res.Reference, res.Balance)
			return nil
		},
	}
	cmd.Flags().String(flagEmail, "", "email of the user to credit")
	cmd.Flags().Int64(flagAmount, 0, "credits to add")
	cmd.Flags().String(flagReason, "", "note stored with the transaction")
	_ = cmd.MarkFlagRequired(flagEmail)
	_ = cmd.MarkFlagRequired(flagAmount)
	return cmd
}

func newPurgeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "purge",
		Short: "Remove expired rate limit counters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := bootstrap(cmd)
			if err != nil {
				return err
			}
			defer a.close()
			removed, err := a.rateLimits().PurgeExpired(cmd.Context(), a.clock.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d expired counters\n", removed)
			return nil
		},
	}
}

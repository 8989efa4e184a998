package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const flagConfig = "config"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "linkledger: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "linkledger",
		Short:         "Paid link lifecycle and credit ledger service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String(flagConfig, "", "config file (default configs/<LL_ENV>.yaml)")

	cmd.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newGrantCommand(),
		newPurgeCommand(),
	)
	return cmd
}

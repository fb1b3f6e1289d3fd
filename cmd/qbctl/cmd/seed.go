package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Install the default chart of accounts and current period",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, svcs, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		ctx := cmd.Context()
		if err := svcs.Account.SeedDefaultChart(ctx, userName); err != nil {
			return err
		}
		period, err := svcs.Period.GetCurrentPeriod(ctx)
		if err != nil {
			return err
		}
		accounts, err := svcs.Account.ListAccounts(ctx, true)
		if err != nil {
			return err
		}
		fmt.Printf("Chart ready: %d active accounts\n", len(accounts))
		fmt.Printf("Current period: %s\n", period.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}

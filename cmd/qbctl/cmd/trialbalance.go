package cmd

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	portssvc "github.com/quietbooks/quietbooks/internal/core/ports/services"
)

var tbUpTo string

var trialBalanceCmd = &cobra.Command{
	Use:     "tb",
	Aliases: []string{"trial-balance"},
	Short:   "Print the trial balance",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, svcs, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		opts := portssvc.TrialBalanceOptions{IncludeTemporary: true}
		if tbUpTo != "" {
			d, err := time.Parse("2006-01-02", tbUpTo)
			if err != nil {
				return fmt.Errorf("invalid --up-to date %q", tbUpTo)
			}
			opts.UpToDate = &d
		}
		rows, err := svcs.TrialBalance.Compute(cmd.Context(), opts)
		if err != nil {
			return err
		}

		totalDebit, totalCredit := decimal.Zero, decimal.Zero
		fmt.Printf("%-6s %-40s %14s %14s\n", "Code", "Account", "Debit", "Credit")
		for _, row := range rows {
			if row.NetDebit.IsZero() && row.NetCredit.IsZero() {
				continue
			}
			fmt.Printf("%-6s %-40s %14s %14s\n",
				row.Code, row.Name, row.NetDebit.StringFixed(2), row.NetCredit.StringFixed(2))
			totalDebit = totalDebit.Add(row.NetDebit)
			totalCredit = totalCredit.Add(row.NetCredit)
		}
		fmt.Printf("%-6s %-40s %14s %14s\n", "", "TOTAL",
			totalDebit.StringFixed(2), totalCredit.StringFixed(2))
		return nil
	},
}

func init() {
	trialBalanceCmd.Flags().StringVar(&tbUpTo, "up-to", "", "include entries up to this date (YYYY-MM-DD)")
	rootCmd.AddCommand(trialBalanceCmd)
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current period and its accounting cycle steps",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, svcs, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		ctx := cmd.Context()
		period, err := svcs.Period.GetCurrentPeriod(ctx)
		if err != nil {
			return err
		}
		state := "open"
		if period.IsClosed {
			state = "closed"
		}
		fmt.Printf("Period: %s (%s)\n", period.Name, state)

		steps, err := svcs.Period.GetCycleStatus(ctx, period.PeriodID)
		if err != nil {
			return err
		}
		for _, st := range steps {
			marker := " "
			switch st.Status {
			case "COMPLETED":
				marker = "x"
			case "IN_PROGRESS":
				marker = "~"
			}
			fmt.Printf("  [%s] %2d. %s", marker, st.Step, st.StepName)
			if st.Note != "" {
				fmt.Printf("  (%s)", st.Note)
			}
			fmt.Println()
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
}

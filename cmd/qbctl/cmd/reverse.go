package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var reverseAsOf string

var reverseCmd = &cobra.Command{
	Use:   "reverse",
	Short: "Post scheduled reversing entries that have fallen due",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, svcs, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		asOf := time.Now()
		if reverseAsOf != "" {
			d, err := time.Parse("2006-01-02", reverseAsOf)
			if err != nil {
				return fmt.Errorf("invalid --as-of date %q", reverseAsOf)
			}
			asOf = d
		}
		entryIDs, err := svcs.Reversing.ProcessSchedule(cmd.Context(), asOf, userName)
		if err != nil {
			return err
		}
		if len(entryIDs) == 0 {
			fmt.Println("No reversals due")
			return nil
		}
		fmt.Printf("Posted %d reversing entries\n", len(entryIDs))
		return nil
	},
}

func init() {
	reverseCmd.Flags().StringVar(&reverseAsOf, "as-of", "", "process items due on or before this date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(reverseCmd)
}

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var closeDate string

var closeCmd = &cobra.Command{
	Use:   "close",
	Short: "Post closing entries for the current period",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, svcs, err := openServices(cmd)
		if err != nil {
			return err
		}
		defer db.Close()

		date := time.Now()
		if closeDate != "" {
			d, err := time.Parse("2006-01-02", closeDate)
			if err != nil {
				return fmt.Errorf("invalid --date %q", closeDate)
			}
			date = d
		}
		entryIDs, err := svcs.Closing.MakeClosingEntries(cmd.Context(), date, userName)
		if err != nil {
			return err
		}
		if len(entryIDs) == 0 {
			fmt.Println("Nothing to close: all temporary balances are zero")
			return nil
		}
		fmt.Printf("Posted %d closing entries\n", len(entryIDs))
		for _, id := range entryIDs {
			fmt.Printf("  %s\n", id)
		}
		return nil
	},
}

func init() {
	closeCmd.Flags().StringVar(&closeDate, "date", "", "closing date (YYYY-MM-DD, default today)")
	rootCmd.AddCommand(closeCmd)
}

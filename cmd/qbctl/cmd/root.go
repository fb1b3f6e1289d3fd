package cmd

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	portssvc "github.com/quietbooks/quietbooks/internal/core/ports/services"
	"github.com/quietbooks/quietbooks/internal/core/services"
	"github.com/quietbooks/quietbooks/internal/repositories/database/sqlite"
	"github.com/quietbooks/quietbooks/pkg/database"
)

var (
	dbPath   string
	userName string
)

var rootCmd = &cobra.Command{
	Use:   "qbctl",
	Short: "Command line tools for the quietbooks ledger",
	Long: `qbctl operates directly on a quietbooks database file: seed the
chart of accounts, inspect the accounting cycle, print a trial balance,
post closing entries and process scheduled reversals.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "quietbooks.db", "path to the database file")
	rootCmd.PersistentFlags().StringVar(&userName, "user", "local", "user recorded on audit entries")

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	slog.SetDefault(logger)
}

// openServices opens the database and wires the full service stack.
// The caller must Close the returned handle.
func openServices(cmd *cobra.Command) (*sql.DB, *portssvc.ServiceContainer, error) {
	db, err := database.Open(dbPath)
	if err != nil {
		return nil, nil, err
	}
	if err := sqlite.InitSchema(cmd.Context(), db); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("initialize schema: %w", err)
	}
	return db, services.NewServiceContainer(sqlite.NewRepositoryProvider(db)), nil
}

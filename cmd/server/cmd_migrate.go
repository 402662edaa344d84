package main

import (
	"fmt"
	"slices"

	"github.com/phrazzld/flashdeck/internal/platform/postgres"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate <up|down|status|version|reset>",
	Short:     "Run database schema migrations",
	Long:      `Runs goose against the SQL migrations embedded in the binary.`,
	ValidArgs: postgres.MigrateCommands,
	Args:      cobra.MatchAll(cobra.ExactArgs(1), validMigrateCommand),
	RunE:      runMigrate,
}

func validMigrateCommand(_ *cobra.Command, args []string) error {
	if !slices.Contains(postgres.MigrateCommands, args[0]) {
		return fmt.Errorf("unknown migration command %q (expected one of %v)", args[0], postgres.MigrateCommands)
	}
	return nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	cfg, logger, err := loadAppConfig()
	if err != nil {
		return err
	}

	db, err := openDatabase(cmd.Context(), cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() { _ = db.Close() }()

	return postgres.Migrate(cmd.Context(), db, logger, args[0])
}

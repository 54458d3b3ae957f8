package main

import (
	"fmt"

	"github.com/jrsteele09/go-profile-server/internal/config"
	"github.com/jrsteele09/go-profile-server/storage/postgres"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func NewMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Run database migrations",
		Long:  `Run all pending database migrations against the PostgreSQL database.`,
		RunE:  runMigrate,
	}
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	c := config.New()
	if c.GetDatabaseURL() == "" {
		return fmt.Errorf("[migrate] DATABASE_URL environment variable is required")
	}

	store, err := postgres.Open(cmd.Context(), c.GetDatabaseURL(), c.GetDBConnectTimeout())
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Migrate(cmd.Context()); err != nil {
		return err
	}
	log.Info().Msg("migrations applied")
	cmd.Println("Migrations completed successfully")
	return nil
}

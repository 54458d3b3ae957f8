package main

import (
	"github.com/jrsteele09/go-profile-server/internal/config"
	"github.com/jrsteele09/go-profile-server/internal/logging"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the command tree. Running without a subcommand serves.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "profile-server",
		Short:         "Developer profile API server",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			c := config.New()
			logging.Setup(c.GetEnv(), c.GetLogLevel())
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}

	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewMigrateCmd())

	return cmd
}

package main

import (
	"github.com/MKhiriev/aura/internal/config"
	"github.com/MKhiriev/aura/internal/store"
	"github.com/MKhiriev/aura/migrations"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations",
		Long: `Applies every pending migration to the configured database and prints the
resulting schema version. The server does the same at startup.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := toolLogger(cmd.ErrOrStderr())

			cfg, err := config.GetToolConfig()
			if err != nil {
				return err
			}

			db, err := store.NewDB(cmd.Context(), cfg.Storage.DB, log)
			if err != nil {
				return err
			}
			defer db.Close()

			if err = db.Migrate(); err != nil {
				return err
			}

			version, err := migrations.Version(db.DB, db.Driver())
			if err != nil {
				return err
			}

			color.New(color.FgGreen).Fprintf(cmd.OutOrStdout(), "schema is at version %d\n", version)
			return nil
		},
	}
}

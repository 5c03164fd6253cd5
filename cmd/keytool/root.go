package main

import (
	"context"
	"io"

	"github.com/MKhiriev/aura/internal/config"
	"github.com/MKhiriev/aura/internal/logger"
	"github.com/MKhiriev/aura/internal/store"
	"github.com/spf13/cobra"
)

var verbose bool

func newRootCmd() *cobra.Command {
	verbose = false

	root := &cobra.Command{
		Use:   "aura-keytool",
		Short: "Administrative tasks for the aura journal database",
		Long: `aura-keytool manages the journal's content encryption keys and schema.

Usage:
  aura-keytool keygen               print a new encryption key
  aura-keytool reencrypt            move entries onto the primary key
  aura-keytool migrate              apply pending schema migrations

The database and keys are configured through the server's environment
variables (STORAGE_DB_DRIVER, STORAGE_DB_DATABASE_URI, APP_ENCRYPTION_KEY,
APP_PREVIOUS_ENCRYPTION_KEYS) or the JSON file named by CONFIG.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "write JSON logs to stderr")

	root.AddCommand(newKeygenCmd())
	root.AddCommand(newReencryptCmd())
	root.AddCommand(newMigrateCmd())

	return root
}

// toolLogger discards logs unless --verbose is set.
func toolLogger(w io.Writer) *logger.Logger {
	if !verbose {
		return logger.Nop()
	}
	return logger.NewLoggerTo(w, "aura-keytool")
}

// openStorages loads the tool configuration and connects to the database,
// applying pending migrations.
func openStorages(ctx context.Context, log *logger.Logger) (*config.StructuredConfig, *store.Storages, error) {
	cfg, err := config.GetToolConfig()
	if err != nil {
		return nil, nil, err
	}

	storages, err := store.NewStorages(ctx, cfg.Storage.DB, log)
	if err != nil {
		return nil, nil, err
	}

	return cfg, storages, nil
}

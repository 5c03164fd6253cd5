package main

import (
	"fmt"
	"io"

	"github.com/MKhiriev/aura/internal/crypto"
	"github.com/MKhiriev/aura/internal/service"
	"github.com/MKhiriev/aura/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func newReencryptCmd() *cobra.Command {
	var batchSize uint64

	cmd := &cobra.Command{
		Use:   "reencrypt",
		Short: "Re-encrypt entries stored under a previous key",
		Long: `Walks every journal entry and rewrites the ones that only open with a key
from APP_PREVIOUS_ENCRYPTION_KEYS under APP_ENCRYPTION_KEY. Entries changed
or deleted concurrently are skipped and counted as conflicts. Entries no
configured key can open are left untouched.

Safe to run while the server is up and safe to repeat.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			log := toolLogger(cmd.ErrOrStderr())

			cfg, storages, err := openStorages(ctx, log)
			if err != nil {
				return err
			}
			defer storages.Close()

			cipher, err := crypto.NewContentCipherFromConfig(cfg.App.EncryptionKey, cfg.App.PreviousEncryptionKeys)
			if err != nil {
				return err
			}

			report, err := service.NewKeyRotationService(storages.EntryRepository, cipher, log).
				ReencryptEntries(ctx, batchSize)
			if err != nil {
				return fmt.Errorf("re-encryption stopped: %w", err)
			}

			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}
	cmd.Flags().Uint64Var(&batchSize, "batch-size", service.DefaultReencryptBatchSize, "entries read per page")

	return cmd
}

func printReport(w io.Writer, report models.ReencryptReport) {
	fmt.Fprintf(w, "scanned:       %d\n", report.Scanned)
	color.New(color.FgGreen).Fprintf(w, "rewritten:     %d\n", report.Rewritten)
	fmt.Fprintf(w, "current:       %d\n", report.Current)

	warn := color.New(color.FgYellow)
	if report.Conflicts > 0 {
		warn.Fprintf(w, "conflicts:     %d (run again to retry)\n", report.Conflicts)
	} else {
		fmt.Fprintf(w, "conflicts:     %d\n", report.Conflicts)
	}

	if report.Undecryptable > 0 {
		color.New(color.FgRed).Fprintf(w, "undecryptable: %d (no configured key opens them)\n", report.Undecryptable)
	} else {
		fmt.Fprintf(w, "undecryptable: %d\n", report.Undecryptable)
	}
}

package main

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/aura/internal/crypto"
	"github.com/spf13/cobra"
)

var errInvalidCount = errors.New("count must be positive")

func newKeygenCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Print new random AES-256 keys",
		Long: `Prints random 256-bit keys as 64 hex characters, one per line, ready for
APP_ENCRYPTION_KEY.

To rotate: move the current key to the front of APP_PREVIOUS_ENCRYPTION_KEYS,
set the new one as APP_ENCRYPTION_KEY, restart the server and run
"aura-keytool reencrypt".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if count <= 0 {
				return errInvalidCount
			}

			for range count {
				key, err := crypto.GenerateKey()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of keys to generate")

	return cmd
}

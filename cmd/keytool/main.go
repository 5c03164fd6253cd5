// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Command aura-keytool performs administrative tasks on an aura database:
// generating content encryption keys, re-encrypting journal entries after a
// key rotation and applying schema migrations.
//
// Database and key settings are read from the same environment variables
// (and optional CONFIG JSON file) as the server.
package main

import (
	"os"

	"github.com/fatih/color"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

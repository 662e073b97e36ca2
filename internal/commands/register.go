// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/dacolabs/davro/internal/session"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "davro",
		Short:             "Convert JSON data to and from Avro object container files",
		PersistentPreRunE: session.PreRunLoad,
		SilenceUsage:      true,
	}

	rootCmd.PersistentFlags().Bool("verbose", false, "Route diagnostics through the structured logger at debug level")

	registerFromJSONCmd(rootCmd)
	registerToJSONCmd(rootCmd)
	registerGetSchemaCmd(rootCmd)
	registerSchemaGenCmd(rootCmd)
	registerVersionCmd(rootCmd)

	return rootCmd
}

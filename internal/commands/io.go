// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"io"
	"os"

	"github.com/spf13/cobra"
)

// streamMarker selects stdin/stdout in a positional argument.
const streamMarker = "-"

// openInput resolves an input argument to a reader plus its closer.
func openInput(cmd *cobra.Command, arg string) (io.Reader, func() error, error) {
	if arg == streamMarker {
		return cmd.InOrStdin(), func() error { return nil }, nil
	}
	f, err := os.Open(arg) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// openOutput resolves an output argument to a writer plus its closer.
func openOutput(cmd *cobra.Command, arg string) (io.Writer, func() error, error) {
	if arg == streamMarker {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(arg) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dacolabs/davro/internal/container"
)

func registerGetSchemaCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "getschema <input>",
		Short: "Print the schema of an Avro object container file",
		Example: `  davro getschema events.avro
  davro getschema - < events.avro`,
		Args: cobra.ExactArgs(1),
		RunE: runGetSchema,
	}
	parent.AddCommand(cmd)
}

func runGetSchema(cmd *cobra.Command, args []string) error {
	in, closeIn, err := openInput(cmd, args[0])
	if err != nil {
		return err
	}
	defer closeIn() //nolint:errcheck

	reader, err := container.NewReader(in)
	if err != nil {
		return err
	}
	schema, err := reader.Schema()
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), schema.String())
	return nil
}

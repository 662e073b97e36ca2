// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dacolabs/davro/internal/schemagen"
)

type schemaGenOptions struct {
	output    string
	name      string
	namespace string
}

func registerSchemaGenCmd(parent *cobra.Command) {
	opts := &schemaGenOptions{}

	cmd := &cobra.Command{
		Use:   "schemagen <schema-file>",
		Short: "Derive an Avro schema from a JSON Schema document",
		Long: `Derive an Avro schema (.avsc) from a JSON Schema document in JSON or
YAML form. Properties keep the order of the source document; properties
not listed in required become ["null", type] unions.`,
		Example: `  # Print the Avro schema to stdout
  davro schemagen event.schema.json

  # Write it next to the ingest pipeline's other schemas
  davro schemagen event.schema.yaml -o schemas/event.avsc`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSchemaGen(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output file (default: stdout)")
	cmd.Flags().StringVar(&opts.name, "name", "", "Record name (default: derived from the input file name)")
	cmd.Flags().StringVar(&opts.namespace, "namespace", "schemas", "Record namespace")

	parent.AddCommand(cmd)
}

func runSchemaGen(cmd *cobra.Command, path string, opts *schemaGenOptions) error {
	schema, order, err := schemagen.Load(path)
	if err != nil {
		return err
	}

	name := opts.name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		name = strings.TrimSuffix(name, ".schema")
	}

	data, err := schemagen.Generate(name, opts.namespace, schema, order)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	return os.WriteFile(opts.output, data, 0o600)
}

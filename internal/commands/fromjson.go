// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"fmt"
	"os"

	"github.com/hamba/avro/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dacolabs/davro/internal/container"
	"github.com/dacolabs/davro/internal/diag"
	"github.com/dacolabs/davro/internal/ingest"
	"github.com/dacolabs/davro/internal/session"
)

type fromJSONOptions struct {
	schema     string
	schemaFile string
	codec      string
	level      int
}

func registerFromJSONCmd(parent *cobra.Command) {
	opts := &fromJSONOptions{}

	cmd := &cobra.Command{
		Use:   "fromjson <input> <output>",
		Short: "Import newline-delimited JSON into an Avro object container file",
		Long: `Import newline-delimited JSON into an Avro object container file.

Each input line holds one or more JSON documents. Documents are
materialized against the schema: objects become records, arrays become
batches of records (or whole sequences when the schema itself is an
array). Fields the schema does not know, and values no widening reaches,
are skipped with a warning. A line that is not valid JSON stops ingestion;
records emitted before it are preserved.

Input and output are file paths, or "-" for stdin/stdout.`,
		Example: `  # stdin to file, schema inline
  cat events.ndjson | davro fromjson - events.avro --schema '{"type":"record","name":"Event","fields":[{"name":"id","type":"long"}]}'

  # file to file, schema from a file, deflate-compressed blocks
  davro fromjson events.ndjson events.avro --schema-file event.avsc --codec deflate --level 5`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFromJSON(cmd, args, opts)
		},
	}

	cmd.Flags().StringVar(&opts.schema, "schema", "", "Schema as inline JSON text")
	cmd.Flags().StringVar(&opts.schemaFile, "schema-file", "", "Path to a schema file")
	cmd.Flags().StringVar(&opts.codec, "codec", "", "Block compression codec (deflate); omit for no compression")
	cmd.Flags().IntVar(&opts.level, "level", container.DefaultLevel, "Deflate compression level (1-9)")

	parent.AddCommand(cmd)
}

func runFromJSON(cmd *cobra.Command, args []string, opts *fromJSONOptions) error {
	sess, err := session.RequireFromCommand(cmd)
	if err != nil {
		return err
	}

	// davro.yaml supplies defaults for flags the user did not set.
	if cfg := sess.Config; cfg != nil {
		if !cmd.Flags().Changed("codec") && cfg.Codec != "" {
			opts.codec = cfg.Codec
		}
		if !cmd.Flags().Changed("level") && cfg.Level != 0 {
			opts.level = cfg.Level
		}
	}

	schema, err := loadSchema(opts.schema, opts.schemaFile)
	if err != nil {
		return err
	}

	in, closeIn, err := openInput(cmd, args[0])
	if err != nil {
		return err
	}
	defer closeIn() //nolint:errcheck

	out, closeOut, err := openOutput(cmd, args[1])
	if err != nil {
		return err
	}

	var sink diag.Sink
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		sink = diag.Zap(sess.Logger.Sugar())
	} else {
		sink = diag.Writer(cmd.ErrOrStderr())
	}

	writer, err := container.NewWriter(out, schema, container.Codec(opts.codec), opts.level)
	if err != nil {
		closeOut() //nolint:errcheck
		return err
	}

	count, runErr := ingest.Run(in, schema, writer, sink)

	// Finalize the container on every path, so records emitted before a
	// parse abort survive in a valid file.
	if err := writer.Flush(); err != nil && runErr == nil {
		runErr = err
	}
	if err := writer.Close(); err != nil && runErr == nil {
		runErr = err
	}
	if err := closeOut(); err != nil && runErr == nil {
		runErr = err
	}
	if runErr != nil {
		return runErr
	}

	sess.Logger.Debug("ingestion complete", zap.Int("records", count))
	return nil
}

// loadSchema parses the schema from inline text or a file path.
func loadSchema(inline, file string) (avro.Schema, error) {
	switch {
	case inline != "" && file != "":
		return nil, fmt.Errorf("--schema and --schema-file are mutually exclusive")
	case inline != "":
		return avro.Parse(inline)
	case file != "":
		data, err := os.ReadFile(file) //nolint:gosec // path is provided by caller
		if err != nil {
			return nil, err
		}
		return avro.Parse(string(data))
	default:
		return nil, fmt.Errorf("a schema is required (--schema or --schema-file)")
	}
}

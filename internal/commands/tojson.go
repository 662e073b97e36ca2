// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"bufio"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/dacolabs/davro/internal/container"
)

func registerToJSONCmd(parent *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "tojson <input> [output]",
		Short: "Dump the records of an Avro object container file as JSON",
		Long: `Dump the records of an Avro object container file as JSON, one record
per line. Union values keep their branch envelope, matching the Avro JSON
encoding. Output defaults to stdout.`,
		Example: `  davro tojson events.avro
  davro tojson events.avro events.ndjson`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runToJSON,
	}
	parent.AddCommand(cmd)
}

func runToJSON(cmd *cobra.Command, args []string) error {
	in, closeIn, err := openInput(cmd, args[0])
	if err != nil {
		return err
	}
	defer closeIn() //nolint:errcheck

	outArg := streamMarker
	if len(args) == 2 {
		outArg = args[1]
	}
	out, closeOut, err := openOutput(cmd, outArg)
	if err != nil {
		return err
	}
	defer closeOut() //nolint:errcheck

	reader, err := container.NewReader(in)
	if err != nil {
		return err
	}

	buf := bufio.NewWriter(out)
	enc := json.NewEncoder(buf)
	for reader.Next() {
		v, err := reader.Decode()
		if err != nil {
			return fmt.Errorf("decoding record: %w", err)
		}
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encoding record: %w", err)
		}
	}
	if err := reader.Err(); err != nil {
		return fmt.Errorf("reading container: %w", err)
	}
	return buf.Flush()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const eventSchema = `{
	"type": "record",
	"name": "Event",
	"fields": [
		{"name": "id", "type": "long"},
		{"name": "note", "type": ["null", "string"]}
	]
}`

func execute(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	cmd := NewRootCmd()
	cmd.SetIn(strings.NewReader(stdin))
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err = cmd.Execute()
	return out.String(), errOut.String(), err
}

func TestFromJSON_ThenToJSON(t *testing.T) {
	dir := t.TempDir()
	containerPath := filepath.Join(dir, "events.avro")

	input := `{"id":1}` + "\n" + `{"id":2,"note":"hi"}` + "\n"
	_, _, err := execute(t, input, "fromjson", "-", containerPath, "--schema", eventSchema)
	require.NoError(t, err)

	data, err := os.ReadFile(containerPath) //nolint:gosec // test file path
	require.NoError(t, err)

	stdout, _, err := execute(t, string(data), "tojson", "-")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	require.Len(t, lines, 2)

	var first map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, float64(1), first["id"])
	assert.Nil(t, first["note"])

	var second map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.Equal(t, map[string]any{"string": "hi"}, second["note"])
}

func TestFromJSON_SchemaFileAndDeflate(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "event.avsc")
	containerPath := filepath.Join(dir, "events.avro")
	require.NoError(t, os.WriteFile(schemaPath, []byte(eventSchema), 0o600))

	input := `{"id":7,"note":"compressed"}` + "\n"
	_, _, err := execute(t, input, "fromjson", "-", containerPath,
		"--schema-file", schemaPath, "--codec", "deflate", "--level", "5")
	require.NoError(t, err)

	data, err := os.ReadFile(containerPath) //nolint:gosec // test file path
	require.NoError(t, err)

	stdout, _, err := execute(t, string(data), "tojson", "-")
	require.NoError(t, err)
	assert.Contains(t, stdout, "compressed")
}

func TestFromJSON_UnmappedFieldWarnsOnStderr(t *testing.T) {
	dir := t.TempDir()
	containerPath := filepath.Join(dir, "events.avro")

	input := `{"id":1,"bogus":true}` + "\n"
	_, stderr, err := execute(t, input, "fromjson", "-", containerPath, "--schema", eventSchema)
	require.NoError(t, err)
	assert.Contains(t, stderr, "skipping unmapped field bogus")
}

func TestFromJSON_MalformedLineFails(t *testing.T) {
	dir := t.TempDir()
	containerPath := filepath.Join(dir, "events.avro")

	_, stderr, err := execute(t, "{\n", "fromjson", "-", containerPath, "--schema", eventSchema)
	assert.Error(t, err)
	assert.Contains(t, stderr, "error parsing: {")
}

func TestFromJSON_SchemaFlagsAreExclusive(t *testing.T) {
	_, _, err := execute(t, "", "fromjson", "-", "-",
		"--schema", eventSchema, "--schema-file", "event.avsc")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestFromJSON_SchemaRequired(t *testing.T) {
	_, _, err := execute(t, "", "fromjson", "-", "-")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "schema is required")
}

func TestGetSchema(t *testing.T) {
	dir := t.TempDir()
	containerPath := filepath.Join(dir, "events.avro")

	_, _, err := execute(t, `{"id":1}`+"\n", "fromjson", "-", containerPath, "--schema", eventSchema)
	require.NoError(t, err)

	stdout, _, err := execute(t, "", "getschema", containerPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, `"name":"Event"`)
	assert.Contains(t, stdout, `"type":"record"`)
}

func TestSchemaGen(t *testing.T) {
	dir := t.TempDir()
	schemaPath := filepath.Join(dir, "order.schema.json")
	outPath := filepath.Join(dir, "order.avsc")
	require.NoError(t, os.WriteFile(schemaPath, []byte(`{
		"type": "object",
		"required": ["id"],
		"properties": {
			"id": {"type": "integer"},
			"note": {"type": "string"}
		}
	}`), 0o600))

	_, _, err := execute(t, "", "schemagen", schemaPath, "--output", outPath)
	require.NoError(t, err)

	data, err := os.ReadFile(outPath) //nolint:gosec // test file path
	require.NoError(t, err)

	var result map[string]any
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, "record", result["type"])
	assert.Equal(t, "Order", result["name"])
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "davro version")
}

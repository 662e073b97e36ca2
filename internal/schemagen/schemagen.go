// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

// Package schemagen derives Avro schemas from JSON Schema documents, so a
// schema authored once for validation can drive container ingestion too.
package schemagen

import (
	"fmt"
	"os"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/google/jsonschema-go/jsonschema"
	"gopkg.in/yaml.v3"
)

// avroRecord represents an Avro record schema.
type avroRecord struct {
	Type      string      `json:"type"`
	Name      string      `json:"name"`
	Namespace string      `json:"namespace,omitempty"`
	Fields    []avroField `json:"fields"`
}

// avroField represents a field within an Avro record.
type avroField struct {
	Name string `json:"name"`
	Type any    `json:"type"`
}

// avroArray represents an Avro array type.
type avroArray struct {
	Type  string `json:"type"`
	Items any    `json:"items"`
}

// avroLogicalType represents an Avro logical type.
type avroLogicalType struct {
	Type        string `json:"type"`
	LogicalType string `json:"logicalType"`
}

// Load reads a JSON Schema document from a .json or .yaml file, returning
// the parsed schema and the property key order of the source document.
func Load(path string) (*jsonschema.Schema, map[string][]string, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by caller
	if err != nil {
		return nil, nil, err
	}

	var schema jsonschema.Schema
	switch {
	case strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml"):
		var raw any
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, nil, err
		}
		jsonData, err := json.Marshal(raw)
		if err != nil {
			return nil, nil, err
		}
		if err := json.Unmarshal(jsonData, &schema); err != nil {
			return nil, nil, err
		}
		order, err := KeyOrderYAML(data)
		if err != nil {
			return nil, nil, err
		}
		return &schema, order, nil
	case strings.HasSuffix(path, ".json"):
		if err := json.Unmarshal(data, &schema); err != nil {
			return nil, nil, err
		}
		order, err := KeyOrderJSON(data)
		if err != nil {
			return nil, nil, err
		}
		return &schema, order, nil
	default:
		return nil, nil, fmt.Errorf("format not supported")
	}
}

// Generate converts a JSON Schema describing an object into an Avro record
// schema document. Fields keep the source document's property order;
// properties not listed in required become ["null", type] unions.
func Generate(name, namespace string, schema *jsonschema.Schema, order map[string][]string) ([]byte, error) {
	if schema.Type != "object" {
		return nil, fmt.Errorf("root schema must describe an object, got %q", schema.Type)
	}

	root := avroRecord{
		Type:      "record",
		Name:      pascal(name),
		Namespace: namespace,
		Fields:    buildFields(schema, "properties", order),
	}

	out, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal Avro schema: %w", err)
	}
	return append(out, '\n'), nil
}

// buildFields converts the schema's properties to Avro fields in source
// order. path is the dotted key-order path of this properties object.
func buildFields(s *jsonschema.Schema, path string, order map[string][]string) []avroField {
	required := make(map[string]bool, len(s.Required))
	for _, name := range s.Required {
		required[name] = true
	}

	names := orderedNames(s.Properties, order[path])
	fields := make([]avroField, 0, len(names))
	for _, name := range names {
		avroType := buildType(name, s.Properties[name], joinPath(path, name), order)
		if !required[name] {
			avroType = []any{"null", avroType}
		}
		fields = append(fields, avroField{Name: name, Type: avroType})
	}
	return fields
}

// buildType maps one JSON Schema property to an Avro type value.
func buildType(name string, s *jsonschema.Schema, path string, order map[string][]string) any {
	if s == nil {
		return "string"
	}
	switch s.Type {
	case "object":
		return avroRecord{
			Type:   "record",
			Name:   pascal(name),
			Fields: buildFields(s, joinPath(path, "properties"), order),
		}
	case "array":
		return avroArray{
			Type:  "array",
			Items: buildType(name, s.Items, joinPath(path, "items"), order),
		}
	case "integer":
		return "long"
	case "number":
		return "double"
	case "boolean":
		return "boolean"
	case "string":
		switch s.Format {
		case "date":
			return avroLogicalType{Type: "int", LogicalType: "date"}
		case "date-time":
			return avroLogicalType{Type: "long", LogicalType: "timestamp-millis"}
		case "uuid":
			return avroLogicalType{Type: "string", LogicalType: "uuid"}
		}
		return "string"
	default:
		return "string"
	}
}

// orderedNames lists property names in source-document order, falling back
// to sorted order for names the order pass did not see.
func orderedNames(props map[string]*jsonschema.Schema, order []string) []string {
	names := make([]string, 0, len(props))
	seen := make(map[string]bool, len(props))
	for _, name := range order {
		if _, ok := props[name]; ok && !seen[name] {
			names = append(names, name)
			seen[name] = true
		}
	}
	var rest []string
	for name := range props {
		if !seen[name] {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

// pascal converts a property or file name to a PascalCase Avro name.
func pascal(s string) string {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == '-' || r == '_' || r == ' ' || r == '.'
	})
	var b strings.Builder
	for _, part := range parts {
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(part[1:])
	}
	return b.String()
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Daco Labs

package schemagen

import (
	"strings"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// KeyOrderJSON extracts, for every "properties" object in the raw JSON
// document, the order of its keys. The result is keyed by dotted path,
// e.g. "properties" for the root and "properties.address.properties" for
// a nested object.
func KeyOrderJSON(data []byte) (map[string][]string, error) {
	result := make(map[string][]string)

	var extract func(dec *json.Decoder, path string)
	extract = func(dec *json.Decoder, path string) {
		token, err := dec.Token()
		if err != nil {
			return
		}
		t, ok := token.(json.Delim)
		if !ok {
			return
		}
		switch t {
		case '{':
			var keys []string
			for dec.More() {
				keyToken, err := dec.Token()
				if err != nil {
					return
				}
				key, ok := keyToken.(string)
				if !ok {
					continue
				}
				keys = append(keys, key)
				extract(dec, joinPath(path, key))
			}
			_, _ = dec.Token()
			if strings.HasSuffix(path, "properties") || path == "properties" {
				result[path] = keys
			}
		case '[':
			for dec.More() {
				extract(dec, path)
			}
			_, _ = dec.Token()
		}
	}

	dec := json.NewDecoder(strings.NewReader(string(data)))
	extract(dec, "")
	return result, nil
}

// KeyOrderYAML mirrors KeyOrderJSON for YAML input, walking the yaml.Node
// tree instead of a token stream.
func KeyOrderYAML(data []byte) (map[string][]string, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	result := make(map[string][]string)
	var walk func(node *yaml.Node, path string)
	walk = func(node *yaml.Node, path string) {
		switch node.Kind {
		case yaml.DocumentNode:
			for _, child := range node.Content {
				walk(child, path)
			}
		case yaml.MappingNode:
			var keys []string
			for i := 0; i+1 < len(node.Content); i += 2 {
				key := node.Content[i].Value
				keys = append(keys, key)
				walk(node.Content[i+1], joinPath(path, key))
			}
			if strings.HasSuffix(path, "properties") || path == "properties" {
				result[path] = keys
			}
		case yaml.SequenceNode:
			for _, child := range node.Content {
				walk(child, path)
			}
		}
	}
	walk(&doc, "")
	return result, nil
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

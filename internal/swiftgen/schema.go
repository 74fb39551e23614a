// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Utah News

package swiftgen

import (
	"encoding/json"
	"strings"

	"github.com/google/jsonschema-go/jsonschema"

	"github.com/utahnews/swiftgen/internal/pymodel"
)

// buildSchema derives the machine-readable schema document for one
// record model from its mapped field types. Properties marshal in
// sorted key order; required names keep declaration order.
func buildSchema(model pymodel.ModelMetadata) *jsonschema.Schema {
	schema := &jsonschema.Schema{
		Type:       "object",
		Properties: make(map[string]*jsonschema.Schema, len(model.Fields)),
	}
	if model.Docstring != nil {
		schema.Description = strings.TrimSpace(*model.Docstring)
	}

	for _, field := range model.Fields {
		prop := schemaForSpelling(field.TargetType)
		if field.Description != nil {
			prop.Description = *field.Description
		}
		schema.Properties[field.Name] = prop
		if !field.IsOptional {
			schema.Required = append(schema.Required, field.Name)
		}
	}
	return schema
}

// schemaForSpelling maps a Swift type spelling to one of the fixed
// schema keywords: object, array, string, integer, number, boolean.
func schemaForSpelling(swiftType string) *jsonschema.Schema {
	t := strings.TrimSuffix(strings.TrimSpace(swiftType), "?")

	if strings.HasPrefix(t, "[") && strings.HasSuffix(t, "]") {
		interior := t[1 : len(t)-1]
		if topLevelColon(interior) >= 0 {
			// Dictionary spellings describe open objects.
			return &jsonschema.Schema{Type: "object"}
		}
		return &jsonschema.Schema{
			Type:  "array",
			Items: schemaForSpelling(interior),
		}
	}

	switch t {
	case "String", "Date", "Data", "Any":
		return &jsonschema.Schema{Type: "string"}
	case "Int":
		return &jsonschema.Schema{Type: "integer"}
	case "Double":
		return &jsonschema.Schema{Type: "number"}
	case "Bool":
		return &jsonschema.Schema{Type: "boolean"}
	}

	// Custom model references nest as objects.
	return &jsonschema.Schema{Type: "object"}
}

// topLevelColon finds the key/value separator of a dictionary
// spelling, ignoring colons inside nested brackets.
func topLevelColon(s string) int {
	depth := 0
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '[':
			depth++
		case ']':
			depth--
		case ':':
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

// renderSchema marshals a schema indented for embedding in a Swift
// multiline string literal.
func renderSchema(schema *jsonschema.Schema, prefix string) (string, error) {
	data, err := json.MarshalIndent(schema, prefix, "    ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

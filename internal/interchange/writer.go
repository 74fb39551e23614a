// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Utah News

package interchange

import (
	"encoding/json"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Writer encodes a Document to a file.
type Writer struct {
	write     func(path string, v any) error
	extension string
}

var (
	// JSONWriter writes interchange documents as JSON.
	JSONWriter = Writer{writeJSON, ".json"}
	// YAMLWriter writes interchange documents as YAML.
	YAMLWriter = Writer{writeYaml, ".yaml"}
)

// WriterFor picks a Writer from a format name or, when the format is
// empty, from the output path's extension. JSON is the default.
func WriterFor(format, path string) Writer {
	switch format {
	case "yaml":
		return YAMLWriter
	case "json":
		return JSONWriter
	}
	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		return YAMLWriter
	}
	return JSONWriter
}

// Write encodes the document to the given path.
func (wr Writer) Write(doc *Document, path string) error {
	return wr.write(path, doc)
}

// Extension returns the writer's file extension.
func (wr Writer) Extension() string {
	return wr.extension
}

func writeJSON(path string, v any) error {
	f, err := os.Create(path) //nolint:gosec // path is from CLI flags
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYaml(path string, v any) error {
	f, err := os.Create(path) //nolint:gosec // path is from CLI flags
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck
	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(v)
}

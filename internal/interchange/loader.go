// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Utah News

package interchange

import (
	"encoding/json"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"
)

// Loader loads interchange documents from a filesystem.
type Loader struct {
	fsys fs.FS
}

// NewLoader creates a Loader that reads from the given filesystem.
func NewLoader(fsys fs.FS) *Loader {
	return &Loader{fsys: fsys}
}

// LoadFile loads and decodes a document. The format is determined from
// the file extension; anything that is not YAML decodes as JSON.
func (l *Loader) LoadFile(filePath string) (*Document, error) {
	f, err := l.fsys.Open(filePath)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	data, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}

	var doc Document
	if strings.HasSuffix(filePath, ".yaml") || strings.HasSuffix(filePath, ".yml") {
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", filePath, err)
		}
	} else if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", filePath, err)
	}
	normalize(&doc)
	return &doc, nil
}

// normalize restores the nil-versus-empty distinctions the YAML
// encoding loses: a record model's absent enum_values decodes as an
// empty slice and comes back as nil here, matching the JSON flavor.
func normalize(doc *Document) {
	for i := range doc.Models {
		m := &doc.Models[i]
		if !m.IsEnum && len(m.EnumValues) == 0 {
			m.EnumValues = nil
		}
	}
}

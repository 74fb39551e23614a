// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Utah News

// Package interchange defines the serialized document passed from the
// parse stage to the generate stage. The format is the sole contract
// between the two and is stable enough to hand-author for tests.
package interchange

import (
	"time"

	"github.com/utahnews/swiftgen/internal/pymodel"
)

// Document is an ordered batch of model descriptors plus provenance.
type Document struct {
	Models          []pymodel.ModelMetadata `json:"models" yaml:"models"`
	GeneratedAt     string                  `json:"generated_at" yaml:"generated_at"`
	SourceDirectory string                  `json:"source_directory" yaml:"source_directory"`
}

// New builds a Document for the given batch, stamped with the current
// time in RFC 3339.
func New(models []pymodel.ModelMetadata, sourceDir string) *Document {
	return &Document{
		Models:          models,
		GeneratedAt:     time.Now().Format(time.RFC3339),
		SourceDirectory: sourceDir,
	}
}

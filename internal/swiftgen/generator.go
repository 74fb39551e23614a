// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Utah News

// Package swiftgen emits Swift declarations from a parsed model batch.
package swiftgen

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"text/template"

	"github.com/utahnews/swiftgen/internal/interchange"
	"github.com/utahnews/swiftgen/internal/pymodel"
	"github.com/utahnews/swiftgen/internal/typemap"
)

//go:embed templates/*.tmpl
var tmplFS embed.FS

var tmpl = template.Must(template.New("").Funcs(template.FuncMap{
	"last": func(i int, fields []structField) bool {
		return i == len(fields)-1
	},
}).ParseFS(tmplFS, "templates/*.tmpl"))

// indexFile is the aggregate inclusion point for callers of the
// generated output.
const indexFile = "GeneratedModels.swift"

// structProtocols is the fixed conformance set for record models.
var structProtocols = []string{"Codable", "Identifiable", "Hashable", "Sendable", "JSONSchemaProvider"}

// enumProtocols is the fixed conformance set for enums.
var enumProtocols = []string{"String", "CaseIterable", "Codable"}

// Warner receives generation diagnostics.
type Warner interface {
	Warnf(format string, args ...any)
}

// Generator writes one Swift file per model plus an aggregate index.
// Output I/O failures are fatal and abort the whole run; regenerating
// from an unchanged document overwrites identical content.
type Generator struct {
	outputDir string
	warn      Warner
}

// New creates a Generator writing under outputDir.
func New(outputDir string, warn Warner) *Generator {
	if warn == nil {
		warn = discardWarner{}
	}
	return &Generator{outputDir: outputDir, warn: warn}
}

type discardWarner struct{}

func (discardWarner) Warnf(string, ...any) {}

// Generate emits every model in the document, in batch order, and
// finishes with the index file. It returns the paths written.
func (g *Generator) Generate(doc *interchange.Document) ([]string, error) {
	if err := os.MkdirAll(g.outputDir, 0o750); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var written []string
	var declared []string

	for _, model := range doc.Models {
		data, err := g.render(model)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", model.Name, err)
		}

		outFile := filepath.Join(g.outputDir, model.Name+".swift")
		if err := os.WriteFile(outFile, data, 0o600); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", outFile, err)
		}
		written = append(written, outFile)
		declared = append(declared, model.Name)
	}

	indexPath := filepath.Join(g.outputDir, indexFile)
	index, err := g.renderIndex(declared)
	if err != nil {
		return nil, err
	}
	if err := os.WriteFile(indexPath, index, 0o600); err != nil {
		return nil, fmt.Errorf("failed to write %s: %w", indexPath, err)
	}
	return append(written, indexPath), nil
}

func (g *Generator) render(model pymodel.ModelMetadata) ([]byte, error) {
	if model.IsEnum {
		return g.renderEnum(model)
	}
	return g.renderStruct(model)
}

type structField struct {
	Name     string
	Type     string
	Doc      string
	Optional bool
}

type structData struct {
	Name       string
	DocLines   []string
	Imports    []string
	Protocols  string
	Fields     []structField
	JSONSchema string
}

func (g *Generator) renderStruct(model pymodel.ModelMetadata) ([]byte, error) {
	data := structData{
		Name:      model.Name,
		DocLines:  docLines(model.Docstring),
		Protocols: strings.Join(structProtocols, ", "),
	}

	importSet := make(map[string]bool)
	for _, field := range model.Fields {
		swiftType := field.TargetType
		mapped, imports := typemap.Map(field.SourceType, field.GenericArgs)
		if swiftType == "" {
			swiftType = mapped
		}
		// A hand-authored document may carry only the target spelling;
		// its imports resolve from the spelling itself.
		if field.SourceType == "" {
			imports = typemap.ImportsForSpelling(swiftType)
		}
		for _, imp := range imports {
			importSet[imp] = true
		}

		var doc string
		if field.Description != nil {
			doc = *field.Description
		}
		data.Fields = append(data.Fields, structField{
			Name:     field.Name,
			Type:     swiftType,
			Doc:      doc,
			Optional: field.IsOptional,
		})
	}

	// Imports dedupe and sort here; the mapper hands them over raw.
	for imp := range importSet {
		data.Imports = append(data.Imports, imp)
	}
	sort.Strings(data.Imports)

	rendered, err := renderSchema(buildSchema(model), "        ")
	if err != nil {
		return nil, err
	}
	data.JSONSchema = rendered

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "struct.swift.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

type enumData struct {
	Name      string
	DocLines  []string
	Protocols string
	Cases     []string
}

func (g *Generator) renderEnum(model pymodel.ModelMetadata) ([]byte, error) {
	data := enumData{
		Name:      model.Name,
		DocLines:  docLines(model.Docstring),
		Protocols: strings.Join(enumProtocols, ", "),
	}

	seen := make(map[string]bool)
	for _, value := range model.EnumValues {
		name := strings.ToLower(value)
		// Duplicate cases cannot compile in Swift; first wins.
		if seen[name] {
			g.warn.Warnf("%s: dropping duplicate case %s", model.Name, name)
			continue
		}
		seen[name] = true
		data.Cases = append(data.Cases, name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "enum.swift.tmpl", data); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

type indexData struct {
	Names []string
}

func (g *Generator) renderIndex(names []string) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "index.swift.tmpl", indexData{Names: names}); err != nil {
		return nil, fmt.Errorf("failed to execute template: %w", err)
	}
	return buf.Bytes(), nil
}

// docLines splits an optional docstring into trimmed comment lines.
func docLines(doc *string) []string {
	if doc == nil {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(strings.TrimSpace(*doc), "\n") {
		lines = append(lines, strings.TrimSpace(line))
	}
	return lines
}

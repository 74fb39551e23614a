// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Utah News

package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/utahnews/swiftgen/internal/interchange"
	"github.com/utahnews/swiftgen/internal/swiftgen"
	"github.com/utahnews/swiftgen/internal/ui"
)

type generateOptions struct {
	schema    string
	outputDir string
	verbose   bool
}

func newGenerateCmd() *cobra.Command {
	opts := &generateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Swift models from a schema document",
		Long: `Generate one Swift file per model in the schema document, plus an
aggregate GeneratedModels.swift index.`,
		Example: `  # Generate Swift models from a parsed schema
  swiftgen generate --schema schema.json --output-dir Sources/Models`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.schema, "schema", "", "Path to the schema document")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "Directory for generated Swift files")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

func runGenerate(cmd *cobra.Command, opts *generateOptions) error {
	cfg := projectConfig(cmd)
	opts.schema = configOr(opts.schema, cfg.Schema)
	opts.outputDir = configOr(opts.outputDir, cfg.OutputDir)
	if opts.schema == "" {
		return errors.New("--schema is required (flag or swiftgen.yaml)")
	}
	if opts.outputDir == "" {
		return errors.New("--output-dir is required (flag or swiftgen.yaml)")
	}

	printer := ui.NewPrinter(cmd.ErrOrStderr(), opts.verbose)

	doc, err := loadDocument(opts.schema)
	if err != nil {
		return err
	}

	written, err := generateModels(doc, opts.outputDir, printer)
	if err != nil {
		return err
	}

	printer.PrintResult([]ui.ResultField{
		{Label: "Schema", Value: opts.schema},
		{Label: "Models", Value: fmt.Sprintf("%d", len(doc.Models))},
		{Label: "Output", Value: opts.outputDir},
	}, fmt.Sprintf("Generated %d Swift files", len(written)))

	return nil
}

// loadDocument reads an interchange document from a path on disk.
func loadDocument(schemaPath string) (*interchange.Document, error) {
	dir, base := filepath.Split(schemaPath)
	if dir == "" {
		dir = "."
	}
	doc, err := interchange.NewLoader(os.DirFS(dir)).LoadFile(base)
	if err != nil {
		return nil, fmt.Errorf("failed to load schema document: %w", err)
	}
	return doc, nil
}

// generateModels runs the generate stage and returns the written paths.
func generateModels(doc *interchange.Document, outputDir string, printer *ui.Printer) ([]string, error) {
	written, err := swiftgen.New(outputDir, printer).Generate(doc)
	if err != nil {
		return nil, err
	}
	for _, path := range written {
		printer.Infof("  %s", path)
	}
	return written, nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Utah News

package commands

import (
	"errors"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"

	"github.com/utahnews/swiftgen/internal/interchange"
	"github.com/utahnews/swiftgen/internal/pymodel"
	"github.com/utahnews/swiftgen/internal/ui"
)

type parseOptions struct {
	sourceDir string
	output    string
	format    string
	verbose   bool
}

func newParseCmd() *cobra.Command {
	opts := &parseOptions{}

	cmd := &cobra.Command{
		Use:   "parse",
		Short: "Parse Pydantic models into a schema document",
		Long: `Parse all Pydantic models under a source directory and write the
extracted schema document for a later generate run.`,
		Example: `  # Parse server models into a JSON schema document
  swiftgen parse --source-dir server/models --output schema.json

  # YAML output with per-file progress
  swiftgen parse --source-dir server/models --output schema.yaml --verbose`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.sourceDir, "source-dir", "s", "", "Directory containing Python Pydantic models")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Output path for the schema document")
	cmd.Flags().StringVar(&opts.format, "format", "", "Document format (json or yaml, default from extension)")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

func runParse(cmd *cobra.Command, opts *parseOptions) error {
	cfg := projectConfig(cmd)
	opts.sourceDir = configOr(opts.sourceDir, cfg.SourceDir)
	opts.output = configOr(opts.output, cfg.Schema)
	opts.format = configOr(opts.format, cfg.Format)
	if opts.sourceDir == "" {
		return errors.New("--source-dir is required (flag or swiftgen.yaml)")
	}
	if opts.output == "" {
		return errors.New("--output is required (flag or swiftgen.yaml)")
	}

	printer := ui.NewPrinter(cmd.ErrOrStderr(), opts.verbose)

	models, err := parseModels(opts.sourceDir, printer)
	if err != nil {
		return err
	}

	doc := interchange.New(models, opts.sourceDir)
	writer := interchange.WriterFor(opts.format, opts.output)
	if err := writer.Write(doc, opts.output); err != nil {
		return fmt.Errorf("failed to write schema document: %w", err)
	}

	printer.PrintResult([]ui.ResultField{
		{Label: "Source", Value: opts.sourceDir},
		{Label: "Models", Value: fmt.Sprintf("%d", len(models))},
		{Label: "Schema", Value: opts.output},
	}, "Parsed schema written")

	return nil
}

// parseModels runs the parse stage against a directory on disk.
func parseModels(sourceDir string, printer *ui.Printer) ([]pymodel.ModelMetadata, error) {
	info, err := os.Stat(sourceDir)
	if err != nil {
		return nil, fmt.Errorf("source directory %s: %w", sourceDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source path %s is not a directory", sourceDir)
	}

	printer.Infof("Parsing Pydantic models from: %s", sourceDir)

	models, err := pymodel.NewParser(os.DirFS(sourceDir), printer).ParseAll()
	if err != nil {
		return nil, err
	}

	printer.Infof("Found %d models", len(models))
	if printer.Verbose() {
		for _, model := range models {
			printer.Infof("%s", spew.Sdump(model))
		}
	}
	return models, nil
}

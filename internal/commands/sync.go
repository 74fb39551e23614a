// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Utah News

package commands

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/utahnews/swiftgen/internal/interchange"
	"github.com/utahnews/swiftgen/internal/ui"
)

type syncOptions struct {
	sourceDir string
	outputDir string
	schema    string
	stage     bool
	verbose   bool
}

func newSyncCmd() *cobra.Command {
	opts := &syncOptions{}

	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Parse and generate in one run",
		Long: `Run the full pipeline: parse the Pydantic sources, write the schema
document, and generate Swift models. With --stage the generated files
are staged for commit, which is how the pre-commit hook drives it.`,
		Example: `  # Full pipeline
  swiftgen sync --source-dir server/models --output-dir Sources/Models

  # From the pre-commit hook
  swiftgen sync --source-dir server/models --output-dir Sources/Models --stage`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.sourceDir, "source-dir", "s", "", "Directory containing Python Pydantic models")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "Directory for generated Swift files")
	cmd.Flags().StringVar(&opts.schema, "schema", "", "Schema document path (default <output-dir>/schema.json)")
	cmd.Flags().BoolVar(&opts.stage, "stage", false, "Stage generated files with git add")
	cmd.Flags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable verbose output")

	return cmd
}

func runSync(cmd *cobra.Command, opts *syncOptions) error {
	cfg := projectConfig(cmd)
	opts.sourceDir = configOr(opts.sourceDir, cfg.SourceDir)
	opts.outputDir = configOr(opts.outputDir, cfg.OutputDir)
	opts.schema = configOr(opts.schema, cfg.Schema)
	if opts.sourceDir == "" {
		return errors.New("--source-dir is required (flag or swiftgen.yaml)")
	}
	if opts.outputDir == "" {
		return errors.New("--output-dir is required (flag or swiftgen.yaml)")
	}

	printer := ui.NewPrinter(cmd.ErrOrStderr(), opts.verbose)

	schemaPath := opts.schema
	if schemaPath == "" {
		schemaPath = filepath.Join(opts.outputDir, "schema.json")
	}

	models, err := parseModels(opts.sourceDir, printer)
	if err != nil {
		return err
	}

	doc := interchange.New(models, opts.sourceDir)
	if dir := filepath.Dir(schemaPath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create schema directory: %w", err)
		}
	}
	if err := interchange.WriterFor("", schemaPath).Write(doc, schemaPath); err != nil {
		return fmt.Errorf("failed to write schema document: %w", err)
	}

	written, err := generateModels(doc, opts.outputDir, printer)
	if err != nil {
		return err
	}

	if opts.stage {
		if err := stageFiles(append(written, schemaPath)); err != nil {
			return err
		}
	}

	printer.PrintResult([]ui.ResultField{
		{Label: "Source", Value: opts.sourceDir},
		{Label: "Models", Value: fmt.Sprintf("%d", len(models))},
		{Label: "Output", Value: opts.outputDir},
	}, "Models synced")

	return nil
}

func stageFiles(paths []string) error {
	args := append([]string{"add", "--"}, paths...)
	out, err := exec.Command("git", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("failed to stage generated files: %v: %s", err, out)
	}
	return nil
}

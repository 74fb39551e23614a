// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Utah News

package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/utahnews/swiftgen/internal/config"
	"github.com/utahnews/swiftgen/internal/ui"
)

type initOptions struct {
	sourceDir string
	outputDir string
	schema    string
	format    string
	force     bool
}

func newInitCmd() *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a swiftgen.yaml project configuration",
		Long: `Write a swiftgen.yaml in the current directory. Commands fall back to
its values when the corresponding flags are omitted.`,
		Example: `  swiftgen init --source-dir server/models --output-dir Sources/Models`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInit(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.sourceDir, "source-dir", "s", "", "Directory containing Python Pydantic models")
	cmd.Flags().StringVarP(&opts.outputDir, "output-dir", "o", "", "Directory for generated Swift files")
	cmd.Flags().StringVar(&opts.schema, "schema", "", "Schema document path")
	cmd.Flags().StringVar(&opts.format, "format", "", "Schema document format (json or yaml)")
	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing swiftgen.yaml")

	return cmd
}

func runInit(cmd *cobra.Command, opts *initOptions) error {
	if _, err := os.Stat(config.FileName); err == nil && !opts.force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", config.FileName)
	}

	cfg := &config.Config{
		Version:   config.CurrentConfigVersion,
		SourceDir: opts.sourceDir,
		OutputDir: opts.outputDir,
		Schema:    opts.schema,
		Format:    opts.format,
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if err := cfg.Save(config.FileName); err != nil {
		return fmt.Errorf("failed to write %s: %w", config.FileName, err)
	}

	ui.NewPrinter(cmd.ErrOrStderr(), false).PrintResult([]ui.ResultField{
		{Label: "Config", Value: config.FileName},
	}, "Project initialized")

	return nil
}

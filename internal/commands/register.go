// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Utah News

// Package commands contains all CLI command definitions.
package commands

import (
	"github.com/spf13/cobra"

	"github.com/utahnews/swiftgen/internal/config"
)

// NewRootCmd creates and returns the root command for the CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "swiftgen",
		Short: "Generate Swift models from Pydantic declarations",
		Long: `swiftgen parses Python Pydantic models into a schema document and
generates the corresponding Swift models with type mapping and
protocol conformance.`,
		SilenceUsage:      true,
		PersistentPreRunE: config.PreRunLoad,
	}

	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newParseCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newSyncCmd())
	rootCmd.AddCommand(newDoctorCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// projectConfig returns the loaded project configuration, or a zero
// value when no swiftgen.yaml was found.
func projectConfig(cmd *cobra.Command) config.Config {
	if cfg := config.FromCommand(cmd); cfg != nil {
		return *cfg
	}
	return config.Config{}
}

// configOr returns the flag value, or the swiftgen.yaml fallback when
// the flag was omitted.
func configOr(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}

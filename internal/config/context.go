// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Utah News

package config

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

// contextKey is used to store a Config in a context.Context.
type contextKey struct{}

// Into returns a new context carrying cfg.
func Into(ctx context.Context, cfg *Config) context.Context {
	return context.WithValue(ctx, contextKey{}, cfg)
}

// From extracts the Config from a context.Context.
// Returns nil if no Config is stored.
func From(ctx context.Context) *Config {
	if cfg, ok := ctx.Value(contextKey{}).(*Config); ok {
		return cfg
	}
	return nil
}

// FromCommand extracts the Config from a cobra.Command's context.
// Returns nil if no Config is stored.
func FromCommand(cmd *cobra.Command) *Config {
	return From(cmd.Context())
}

// PreRunLoad is a PersistentPreRunE function that loads the project
// configuration from the working directory, when present, and stores it
// in the command's context. A missing swiftgen.yaml is not an error.
func PreRunLoad(cmd *cobra.Command, _ []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}

	cfg, err := LoadDir(cwd)
	if err != nil {
		return err
	}
	if cfg != nil {
		cmd.SetContext(Into(cmd.Context(), cfg))
	}
	return nil
}

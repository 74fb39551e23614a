// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Utah News

package commands

import (
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/utahnews/swiftgen/internal/ui"
)

type doctorOptions struct {
	sourceDir string
}

func newDoctorCmd() *cobra.Command {
	opts := &doctorOptions{}

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check the environment for model generation",
		Long: `Check that the tools and files model generation relies on are in
place. Doctor never parses or generates anything.`,
		Example: `  swiftgen doctor
  swiftgen doctor --source-dir server/models`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.sourceDir, "source-dir", "s", "", "Model source directory to check")

	return cmd
}

type check struct {
	label  string
	value  string
	fatal  bool
	failed bool
}

func runDoctor(cmd *cobra.Command, opts *doctorOptions) error {
	opts.sourceDir = configOr(opts.sourceDir, projectConfig(cmd).SourceDir)
	printer := ui.NewPrinter(cmd.ErrOrStderr(), false)

	checks := []check{
		checkTool("git", true),
		checkTool("swift", false),
	}
	if opts.sourceDir != "" {
		checks = append(checks, checkSourceDir(opts.sourceDir))
	}

	var fields []ui.ResultField
	failed := false
	for _, c := range checks {
		fields = append(fields, ui.ResultField{Label: c.label, Value: c.value})
		if c.failed {
			if c.fatal {
				failed = true
			} else {
				printer.Warnf("%s: %s", c.label, c.value)
			}
		}
	}

	printer.PrintResult(fields, "")
	if failed {
		return fmt.Errorf("environment checks failed")
	}
	return nil
}

func checkTool(name string, fatal bool) check {
	path, err := exec.LookPath(name)
	if err != nil {
		return check{label: name, value: "not found on PATH", fatal: fatal, failed: true}
	}
	return check{label: name, value: path}
}

func checkSourceDir(dir string) check {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return check{label: "source", value: fmt.Sprintf("%s is not a directory", dir), fatal: true, failed: true}
	}

	count := 0
	_ = filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return nil
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".py") && !strings.HasPrefix(d.Name(), "__") {
			count++
		}
		return nil
	})
	if count == 0 {
		return check{label: "source", value: fmt.Sprintf("no Python model files under %s", dir), fatal: true, failed: true}
	}
	return check{label: "source", value: fmt.Sprintf("%d Python files under %s", count, dir)}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Utah News

// Package ui provides styled terminal output for CLI commands.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#27ca3f"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#f9ca24"))
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#bababa"))
)

// Printer writes styled command output. Info output is gated by the
// verbose flag; warnings and results always print.
type Printer struct {
	out     io.Writer
	verbose bool
}

// NewPrinter creates a Printer writing to out. A nil out defaults to
// stderr so generated artifacts on stdout stay clean.
func NewPrinter(out io.Writer, verbose bool) *Printer {
	if out == nil {
		out = os.Stderr
	}
	return &Printer{out: out, verbose: verbose}
}

// Warnf prints a yellow warning line.
func (p *Printer) Warnf(format string, args ...any) {
	fmt.Fprintf(p.out, "%s %s\n", warnStyle.Render("warning:"), fmt.Sprintf(format, args...))
}

// Infof prints a progress line when verbose mode is on.
func (p *Printer) Infof(format string, args ...any) {
	if !p.verbose {
		return
	}
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Verbose reports whether verbose mode is on.
func (p *Printer) Verbose() bool {
	return p.verbose
}

// ResultField is a label-value pair for PrintResult.
type ResultField struct {
	Label string
	Value string
}

// PrintResult prints a styled summary with green checkmarks and gray
// labels.
func (p *Printer) PrintResult(fields []ResultField, successMsg string) {
	check := successStyle.Render("✓")

	fmt.Fprintln(p.out)
	for _, f := range fields {
		fmt.Fprintf(p.out, "%s %s %s\n", check, labelStyle.Render(f.Label+":"), f.Value)
	}

	if successMsg != "" {
		fmt.Fprintln(p.out, successStyle.Render("\n"+successMsg))
	}
}

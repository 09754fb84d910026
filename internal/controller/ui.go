// Package controller renders workflow results on the terminal.
package controller

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	m "nocturne.dev/pkg/nocturne/internal/model"
)

// Format selects how mapping statistics are printed.
type Format string

// Available Format values.
const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
)

// ParseFormat resolves a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(name))) {
	case "", FormatTable:
		return FormatTable, nil
	case FormatYAML:
		return FormatYAML, nil
	}

	return FormatTable, fmt.Errorf("unknown output format %q (want table or yaml)", name)
}

// UI defines how the workflow presents its results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayStats(ctx context.Context, reports []m.SourceReport, format Format) error
	DisplaySkipped(ctx context.Context, skipped []m.LineDiagnostic) error
	DisplayTree(ctx context.Context, title string, mappings *m.Context) error
}

// NewUI picks the interactive UI for terminals and the plain one otherwise.
func NewUI(cmd *cobra.Command, tty bool) UI {
	if tty {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is an interactive terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

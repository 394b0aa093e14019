// Package controller renders coverage comparisons and displays run outcomes.
package controller

import (
	"context"
	"os"

	m "covdelta.dev/pkg/covdelta/internal/model"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// Renderer turns a comparison into report text.
type Renderer interface {
	Render(comparison m.Comparison) (string, error)
}

// UI defines how a report run is shown on the console.
// Implementations can use different output methods (plain text, styled, etc).
type UI interface {
	DisplaySkipped(ctx context.Context, path m.Path)
	DisplayMissingBaseline(ctx context.Context, path m.Path)
	DisplayComparison(ctx context.Context, comparison m.Comparison)
	DisplayCheck(ctx context.Context, check m.Check)
}

// NewUI returns a StyledUI for terminals and a SimpleUI otherwise.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	if isTTY {
		return NewStyledUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Package controller provides output adapters for mcyview reports and the
// interactive browser.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	m "mcyview.dev/pkg/mcyview/internal/model"
)

// Output formats understood by SimpleUI.
const (
	FormatTable = "table"
	FormatYAML  = "yaml"
)

// Navigator is the navigation engine as seen by a presentation layer: it
// accepts inbound events, answers with outbound ones and exposes the
// projections to render.
type Navigator interface {
	Dispatch(event m.Inbound) ([]m.Outbound, error)
	Roots(view m.View) []int
	Node(view m.View, idx int) (m.Node, bool)
	Tags() []string
	Source(file string) (m.AnnotatedSource, error)
}

// UI defines the interface for presenting a mutation cover database.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplaySummary(ctx context.Context, summary m.Summary) error
	DisplayTags(ctx context.Context, tags []m.TagCount) error
	DisplayCoverage(ctx context.Context, files []m.FileCoverage) error
	DisplayProperties(ctx context.Context, record m.PropertyRecord) error
	DisplaySource(ctx context.Context, source m.AnnotatedSource) error
	Browse(ctx context.Context, nav Navigator) error
}

// NewUI picks the interactive TUI on a terminal and the plain SimpleUI
// otherwise.
func NewUI(cmd *cobra.Command, isTTY bool, format string) UI {
	simple := NewSimpleUI(cmd, format)
	if isTTY {
		return NewTUI(simple, cmd.InOrStdin(), cmd.OutOrStdout())
	}

	return simple
}

// IsTTY reports whether f is a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

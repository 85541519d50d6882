package controller

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// TUI implements UI for terminals. Reports are printed like SimpleUI does;
// Browse runs an interactive Bubble Tea program.
type TUI struct {
	*SimpleUI
	input  io.Reader
	output io.Writer
}

// NewTUI creates a new TUI printing reports through simple.
func NewTUI(simple *SimpleUI, input io.Reader, output io.Writer) *TUI {
	return &TUI{SimpleUI: simple, input: input, output: output}
}

// Browse runs the interactive browser until the user quits or ctx is done.
func (t *TUI) Browse(ctx context.Context, nav Navigator) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	program := tea.NewProgram(
		newBrowseModel(nav),
		tea.WithContext(ctx),
		tea.WithInput(t.input),
		tea.WithOutput(t.output),
		tea.WithAltScreen(),
	)

	if _, err := program.Run(); err != nil {
		return fmt.Errorf("browse: %w", err)
	}

	return nil
}

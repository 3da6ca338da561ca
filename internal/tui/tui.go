// Package tui provides the interactive prompts of the installer: choosing a
// profile, choosing a secondary plugin build and confirming preconditions.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MnFeN/Triggernometry/internal/tui/components"
)

// ErrCanceled is returned when the user leaves a prompt without answering.
var ErrCanceled = errors.New("canceled by user")

// Options configures where prompts read keys from and render to.
type Options struct {
	Input  io.Reader
	Output io.Writer
}

func (o Options) programOptions(ctx context.Context) []tea.ProgramOption {
	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if o.Input != nil {
		opts = append(opts, tea.WithInput(o.Input))
	}
	if o.Output != nil {
		opts = append(opts, tea.WithOutput(o.Output))
	}
	return opts
}

// Pick shows items under title and returns the chosen one. The item whose
// ID equals preselect starts highlighted.
func Pick(ctx context.Context, title string, items []components.ListItem, preselect string, opts Options) (components.ListItem, error) {
	if len(items) == 0 {
		return components.ListItem{}, fmt.Errorf("%s: nothing to choose from", title)
	}

	model := newPickerModel(title, items, preselect)
	finalModel, err := tea.NewProgram(model, opts.programOptions(ctx)...).Run()
	if err != nil {
		return components.ListItem{}, fmt.Errorf("%s: %w", title, err)
	}

	m, ok := finalModel.(pickerModel)
	if !ok {
		return components.ListItem{}, fmt.Errorf("unexpected model type")
	}
	if m.canceled || m.chosen == nil {
		return components.ListItem{}, ErrCanceled
	}
	return *m.chosen, nil
}

// Confirm asks the user to acknowledge message.
func Confirm(ctx context.Context, title, message string, opts Options) (bool, error) {
	model := newConfirmModel(title, message)
	finalModel, err := tea.NewProgram(model, opts.programOptions(ctx)...).Run()
	if err != nil {
		return false, fmt.Errorf("%s: %w", title, err)
	}

	m, ok := finalModel.(confirmModel)
	if !ok {
		return false, fmt.Errorf("unexpected model type")
	}
	if !m.answered {
		return false, ErrCanceled
	}
	return m.confirmed, nil
}

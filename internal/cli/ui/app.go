package ui

import (
	"errors"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrCancelled is returned when the picker is closed without a selection.
var ErrCancelled = errors.New("selection cancelled")

var runProgram = func(m tea.Model, opts ...tea.ProgramOption) (tea.Model, error) {
	return tea.NewProgram(m, opts...).Run()
}

// Pick shows a single-choice list and returns the Value of the chosen option.
func Pick(title string, options []Option, in io.Reader, out io.Writer) (string, error) {
	if len(options) == 0 {
		return "", fmt.Errorf("pick %q: no options", title)
	}
	final, err := runProgram(newModel(title, options), tea.WithInput(in), tea.WithOutput(out))
	if err != nil {
		return "", err
	}
	m, ok := final.(model)
	if !ok {
		return "", fmt.Errorf("pick %q: unexpected model %T", title, final)
	}
	if m.cancelled || m.chosen < 0 {
		return "", ErrCancelled
	}
	return m.options[m.chosen].Value, nil
}

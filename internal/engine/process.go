package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Command is one external process invocation.
type Command struct {
	Name string
	Args []string
	// Dir is the working directory. Empty means the current process directory.
	Dir string
}

// String renders the command line for messages.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Runner executes external commands synchronously.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// ProcessError reports an external command that could not be started or
// exited non-zero.
type ProcessError struct {
	Command  Command
	ExitCode int
	Err      error
}

func (e *ProcessError) Error() string {
	if e.Dir() != "" {
		return fmt.Sprintf("command %q (in %s) failed: %v", e.Command.String(), e.Dir(), e.Err)
	}
	return fmt.Sprintf("command %q failed: %v", e.Command.String(), e.Err)
}

// Dir returns the working directory the command ran in.
func (e *ProcessError) Dir() string { return e.Command.Dir }

func (e *ProcessError) Unwrap() error { return e.Err }

// ExecRunner runs commands with os/exec, streaming their output.
type ExecRunner struct {
	// Stdin, Stdout and Stderr default to the process's own streams.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns an ExecRunner attached to the terminal.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

// Run blocks until cmd exits. A non-zero exit status is returned as a
// *ProcessError carrying the child's code.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) error {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir
	c.Stdin = r.Stdin
	if c.Stdin == nil {
		c.Stdin = os.Stdin
	}
	c.Stdout = r.Stdout
	if c.Stdout == nil {
		c.Stdout = os.Stdout
	}
	c.Stderr = r.Stderr
	if c.Stderr == nil {
		c.Stderr = os.Stderr
	}

	if err := c.Run(); err != nil {
		code := 1
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
			code = exitErr.ExitCode()
		}
		return &ProcessError{Command: cmd, ExitCode: code, Err: err}
	}
	return nil
}

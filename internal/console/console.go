// Package console prints the user-facing progress and error messages of a
// bootstrap run. It is the only output channel the tool has.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Printer writes progress lines to Out and problems to Err.
type Printer struct {
	Out     io.Writer
	Err     io.Writer
	Verbose bool

	success *color.Color
	warn    *color.Color
	fail    *color.Color
	debug   *color.Color
}

// New returns a Printer on stdout/stderr.
func New(verbose bool) *Printer {
	return NewWithWriters(os.Stdout, os.Stderr, verbose)
}

// NewWithWriters returns a Printer on the given writers. Colors follow
// fatih/color's global NoColor switch, which is off for non-terminals.
func NewWithWriters(out, err io.Writer, verbose bool) *Printer {
	return &Printer{
		Out:     out,
		Err:     err,
		Verbose: verbose,
		success: color.New(color.FgHiGreen),
		warn:    color.New(color.FgHiYellow),
		fail:    color.New(color.FgHiRed),
		debug:   color.New(color.FgHiBlack),
	}
}

// Step prints a plain progress line.
func (p *Printer) Step(format string, a ...interface{}) {
	fmt.Fprintf(p.Out, format+"\n", a...)
}

// Success prints a highlighted completion line.
func (p *Printer) Success(format string, a ...interface{}) {
	p.success.Fprintf(p.Out, format+"\n", a...)
}

// Warn prints a highlighted warning line to Out.
func (p *Printer) Warn(format string, a ...interface{}) {
	p.warn.Fprintf(p.Out, format+"\n", a...)
}

// Errorf prints an error line to Err.
func (p *Printer) Errorf(format string, a ...interface{}) {
	p.fail.Fprintf(p.Err, format+"\n", a...)
}

// Debugf prints to Err only in verbose mode.
func (p *Printer) Debugf(format string, a ...interface{}) {
	if !p.Verbose {
		return
	}
	p.debug.Fprintf(p.Err, "[proboot] "+format+"\n", a...)
}

// Discard returns a Printer that drops everything.
func Discard() *Printer {
	return NewWithWriters(io.Discard, io.Discard, false)
}

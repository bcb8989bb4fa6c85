// Package console prints the human-readable status lines of a run.
package console

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

// ANSI colour codes
const (
	reset  = "\u001B[0m"
	red    = "\u001B[31m"
	green  = "\u001B[32m"
	yellow = "\u001B[33m"
)

// Printer writes status lines. Info, Warn and Success go to Out; Error goes to Err.
type Printer struct {
	Out   io.Writer
	Err   io.Writer
	Color bool
}

// New creates a printer that colours output only when out is a terminal
// and NO_COLOR is unset.
func New(out, errOut io.Writer) *Printer {
	return &Printer{
		Out:   out,
		Err:   errOut,
		Color: isTerminal(out) && os.Getenv("NO_COLOR") == "",
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Info prints an uncoloured line. An empty emoji leaves the prefix column blank.
func (p *Printer) Info(message, emoji string) {
	fmt.Fprintf(p.Out, "%s\t%s\n", emoji, message)
}

func (p *Printer) Warn(message string) {
	fmt.Fprintf(p.Out, "⚠️\t%s\n", p.paint(yellow, message))
}

func (p *Printer) Success(message string) {
	fmt.Fprintf(p.Out, "✅\t%s\n", p.paint(green, message))
}

// Error reports a fatal problem, followed by its cause when there is one.
// Terminating the process is left to the caller.
func (p *Printer) Error(message string, cause error) {
	fmt.Fprintf(p.Err, "❌\t%s\n", p.paint(red, message))
	if cause != nil {
		fmt.Fprintf(p.Err, "\t%s\n", p.paint(red, cause.Error()))
	}
}

func (p *Printer) paint(color, s string) string {
	if !p.Color {
		return s
	}
	return color + s + reset
}

package cmd

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// statusPrinter writes progress and status lines to the error stream so they
// never mix with report output.
type statusPrinter struct {
	w io.Writer
}

func newStatusPrinter(w io.Writer) statusPrinter {
	return statusPrinter{w: w}
}

// Info prints a progress line.
func (s statusPrinter) Info(format string, args ...interface{}) {
	color.New(color.FgGreen).Fprintln(s.w, fmt.Sprintf(format, args...))
}

// Warning prints a notice that is not an error.
func (s statusPrinter) Warning(format string, args ...interface{}) {
	color.New(color.FgYellow).Fprintln(s.w, fmt.Sprintf(format, args...))
}

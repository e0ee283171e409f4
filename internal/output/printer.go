// Package output formats command results for the terminal.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
)

// Exit codes reported by the CLI.
const (
	ExitSuccess    = 0
	ExitGeneral    = 1
	ExitUsageError = 2
)

// ColorMode represents color output mode
type ColorMode int

const (
	// ColorAuto enables colors on terminals unless NO_COLOR is set or TERM is dumb
	ColorAuto ColorMode = iota
	// ColorAlways forces colors on
	ColorAlways
	// ColorNever forces colors off
	ColorNever
)

// ParseColorMode parses "auto", "always" or "never".
func ParseColorMode(s string) (ColorMode, error) {
	switch s {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	default:
		return ColorAuto, fmt.Errorf("invalid color mode %q: must be auto, always, or never", s)
	}
}

// ResolveColors decides whether a mode enables colors in the current environment.
func ResolveColors(mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false
		}
		return os.Getenv("TERM") != "dumb" && !color.NoColor
	}
}

// Printer writes command messages to out and errors to err.
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

// NewPrinter creates a printer over the given writers.
func NewPrinter(out, errOut io.Writer, useColors bool) *Printer {
	return &Printer{out: out, err: errOut, useColors: useColors}
}

// Print prints a plain message
func (p *Printer) Print(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Success prints a confirmation message
func (p *Printer) Success(format string, args ...interface{}) {
	if p.useColors {
		p.paint(color.FgGreen).Fprintf(p.out, format+"\n", args...)
		return
	}
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Hint prints a follow-up suggestion
func (p *Printer) Hint(format string, args ...interface{}) {
	if p.useColors {
		p.paint(color.FgCyan).Fprintf(p.out, format+"\n", args...)
		return
	}
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Error prints "Error: <err>" to the error stream
func (p *Printer) Error(err error) {
	if p.useColors {
		p.paint(color.FgRed, color.Bold).Fprintf(p.err, "Error: %v\n", err)
		return
	}
	fmt.Fprintf(p.err, "Error: %v\n", err)
}

func (p *Printer) paint(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

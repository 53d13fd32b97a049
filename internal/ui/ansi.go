package ui

import (
	"fmt"
	"io"
	"os"
)

var (
	reset = "\033[0m"
	bold  = "\033[1m"
	dim   = "\033[2m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"

	symCross = "✖"
)

var (
	forceColor   bool
	disableColor bool
)

// SetColorForcing overrides TTY detection. disable wins over force.
func SetColorForcing(force, disable bool) {
	forceColor = force
	disableColor = disable
}

// ColorDisabled reports whether styled output is off, honouring NO_COLOR.
func ColorDisabled() bool {
	return disableColor || os.Getenv("NO_COLOR") != ""
}

func isTTY() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// C wraps s in an ANSI colour when colour output is enabled.
func C(color, s string) string {
	if ColorDisabled() || color == "" {
		return s
	}
	if forceColor || isTTY() {
		return color + s + reset
	}
	return s
}

// Fail writes a failure line to w.
func Fail(w io.Writer, msg string) {
	fmt.Fprintln(w, C(Current().Error, symCross+" "+msg))
}

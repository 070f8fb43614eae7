package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

var (
	green  = color.New(color.FgGreen)
	yellow = color.New(color.FgYellow)
	red    = color.New(color.FgRed, color.Bold)
)

func success(w io.Writer, format string, a ...any) {
	green.Fprintf(w, "✓ "+format+"\n", a...)
}

func warning(w io.Writer, format string, a ...any) {
	yellow.Fprintf(w, "! "+format+"\n", a...)
}

// failure prints the message and returns it as the command error.
func failure(w io.Writer, format string, a ...any) error {
	msg := fmt.Sprintf(format, a...)
	red.Fprintf(w, "✗ %s\n", msg)
	return fmt.Errorf("%s", msg)
}

package printers

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// PrettyPrint writes one-line status messages for the user.
type PrettyPrint struct {
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

// Title prints an emphasised line.
func (pp *PrettyPrint) Title(title string) {
	_, _ = color.New(color.Bold, color.Underline).Fprintln(pp.out(), title)
}

// Notice prints a plain status line.
func (pp *PrettyPrint) Notice(format string, a ...interface{}) {
	_, _ = fmt.Fprintf(pp.out(), format+"\n", a...)
}

// Warning prints a highlighted line that does not stop the run.
func (pp *PrettyPrint) Warning(format string, a ...interface{}) {
	_, _ = color.New(color.FgHiYellow).Fprintf(pp.out(), format+"\n", a...)
}

// Success prints a confirmation line.
func (pp *PrettyPrint) Success(format string, a ...interface{}) {
	_, _ = color.New(color.FgGreen).Fprintf(pp.out(), format+"\n", a...)
}

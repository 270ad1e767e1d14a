package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

var (
	symCheck = "✔"
	symCross = "✖"
)

// SetColorForcing overrides terminal detection. disable wins over force.
func SetColorForcing(force, disable bool) {
	switch {
	case disable:
		lipgloss.SetColorProfile(termenv.Ascii)
	case force:
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

func OK(w io.Writer, msg string)   { fmt.Fprintln(w, Current().Success.Render(symCheck+" "+msg)) }
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, Current().Error.Render(symCross+" "+msg)) }

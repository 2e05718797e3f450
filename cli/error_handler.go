package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/grovetools/docnav/errors"
	"github.com/grovetools/docnav/tui/theme"
)

// ErrorHandler provides user-friendly error messages
type ErrorHandler struct {
	Verbose bool
	Out     io.Writer
}

// NewErrorHandler creates a new error handler writing to stderr
func NewErrorHandler(verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Verbose: verbose,
		Out:     os.Stderr,
	}
}

// Handle prints a message and a hint for err based on its code, then
// returns err unchanged.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}

	t := theme.DefaultTheme
	fail := t.Error.Render(theme.IconError)
	dnErr, _ := errors.As(err)
	detail := func(key string) interface{} {
		if dnErr == nil {
			return ""
		}
		return dnErr.Details[key]
	}

	switch errors.GetCode(err) {
	case errors.ErrCodeConfigNotFound:
		fmt.Fprintf(h.Out, "%s Configuration not found.\n", fail)
		fmt.Fprintln(h.Out, t.Muted.Render("Create docnav.yml or pass --config."))

	case errors.ErrCodeConfigInvalid, errors.ErrCodeConfigValidation:
		fmt.Fprintf(h.Out, "%s Invalid configuration: %v\n", fail, err)
		fmt.Fprintln(h.Out, t.Muted.Render("Run 'docnav schema config' to print the configuration schema."))

	case errors.ErrCodeSetNotFound:
		fmt.Fprintf(h.Out, "%s Navigation set '%v' not found\n", fail, detail("set"))
		if available := detail("available"); available != "" {
			fmt.Fprintln(h.Out, t.Muted.Render(fmt.Sprintf("Available sets: %v", available)))
		}
		fmt.Fprintln(h.Out, t.Muted.Render("Run 'docnav sets' to see every registered set."))

	case errors.ErrCodeSourceNotFound:
		fmt.Fprintf(h.Out, "%s Navigation source '%v' does not exist\n", fail, detail("path"))
		fmt.Fprintln(h.Out, t.Muted.Render("Check the 'sources' section of docnav.yml."))

	case errors.ErrCodeSourceInvalid:
		fmt.Fprintf(h.Out, "%s %v\n", fail, err)
		fmt.Fprintln(h.Out, t.Muted.Render("Run 'docnav schema' to print the navigation document schema."))

	case errors.ErrCodeInvalidVersion:
		fmt.Fprintf(h.Out, "%s Invalid documentation version '%v': %v\n", fail, detail("version"), detail("reason"))

	default:
		fmt.Fprintf(h.Out, "%s Error: %v\n", fail, err)
	}

	// If verbose mode, show full error details
	if h.Verbose && dnErr != nil {
		fmt.Fprintf(h.Out, "\nError details:\n%s\n", dnErr.ToJSON())
	}
	return err
}

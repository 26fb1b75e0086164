package errors

// display.go renders HelpErrors with color coding for TTY output.

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"golang.org/x/term"
)

// ANSI color codes for terminal output.
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[31m" // Error type/code
	colorYellow = "\033[33m" // Context information
	colorCyan   = "\033[36m" // Suggestions
	colorDim    = "\033[90m" // Secondary/cause info
	colorBold   = "\033[1m"  // Emphasis
)

// Formatter handles error display with optional color support.
type Formatter struct {
	// UseColor enables ANSI color codes in output.
	// When false, output is plain text suitable for logs.
	UseColor bool

	// Writer is the output destination. Defaults to os.Stderr.
	Writer io.Writer

	// Indent is the prefix for context and suggestion lines.
	Indent string
}

// DefaultFormatter returns a Formatter for standard error output.
// Color is enabled if stderr is a terminal.
func DefaultFormatter() *Formatter {
	return &Formatter{
		UseColor: IsTTY(os.Stderr),
		Writer:   os.Stderr,
		Indent:   "  ",
	}
}

// IsTTY returns true if the given file is a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// Format renders err with the default formatter.
func Format(err error) string {
	return DefaultFormatter().Format(err)
}

// Format renders an error. HelpErrors show code, message, context, cause,
// and suggestions; other errors show a single "Error:" line.
func (f *Formatter) Format(err error) string {
	if err == nil {
		return ""
	}

	he, ok := AsHelpError(err)
	if !ok {
		return f.formatStandardError(err)
	}
	return f.formatHelpError(he)
}

func (f *Formatter) formatStandardError(err error) string {
	var sb strings.Builder
	sb.WriteString(f.paint(colorRed, "Error: "))
	sb.WriteString(err.Error())
	return sb.String()
}

func (f *Formatter) formatHelpError(he *HelpError) string {
	var sb strings.Builder

	// ERROR [CODE]: Message
	if f.UseColor {
		sb.WriteString(colorRed + colorBold + "ERROR" + colorReset)
		sb.WriteString(colorRed + " [" + he.Code + "]: " + colorReset)
	} else {
		sb.WriteString("ERROR [" + he.Code + "]: ")
	}
	sb.WriteString(he.Message)
	sb.WriteString("\n")

	if he.HasContext() {
		keys := make([]string, 0, len(he.Context))
		for k := range he.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, key := range keys {
			sb.WriteString(f.Indent)
			sb.WriteString(f.paint(colorYellow, key+": "))
			sb.WriteString(he.Context[key])
			sb.WriteString("\n")
		}
	}

	if he.Cause != nil {
		sb.WriteString(f.Indent)
		sb.WriteString(f.paint(colorDim, "cause: "+he.Cause.Error()))
		sb.WriteString("\n")
	}

	if he.HasSuggestions() {
		if he.HasContext() || he.Cause != nil {
			sb.WriteString("\n")
		}
		for i, suggestion := range he.Suggestions {
			sb.WriteString(f.Indent)
			sb.WriteString(f.paint(colorCyan, "→ "+suggestion))
			if i < len(he.Suggestions)-1 {
				sb.WriteString("\n")
			}
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}

func (f *Formatter) paint(color, s string) string {
	if !f.UseColor {
		return s
	}
	return color + s + colorReset
}

// Display writes a formatted error to the formatter's writer.
func (f *Formatter) Display(err error) {
	if err == nil {
		return
	}
	fmt.Fprintln(f.Writer, f.Format(err))
}

// Display writes a formatted error to stderr with default settings.
func Display(err error) {
	DefaultFormatter().Display(err)
}

// Sprint returns a formatted error string without colors.
func Sprint(err error) string {
	f := &Formatter{Writer: io.Discard, Indent: "  "}
	return f.Format(err)
}

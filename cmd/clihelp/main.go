// clihelp - fixed-width help pages for command line tools
//
// clihelp reads a YAML description of a CLI's commands and renders aligned,
// wrapped help pages for any command path, either once or from an
// interactive browser.
//
// Components:
//   - layout: word wrapping, columns, and the line buffer
//   - entry: command entries and path lookup
//   - help: page rendering
//   - config: YAML configuration
//   - shell: the interactive browser
package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/r3d91ll/clihelp/pkg/errors"
)

const version = "1.0.0"

func main() {
	a := newApp(os.Stdin, os.Stdout, os.Stderr)
	if err := newRootCommand(a).Execute(); err != nil {
		errors.Display(err)
		os.Exit(1)
	}
}

// app holds the process streams and terminal checks shared by every
// command.
type app struct {
	in     io.Reader
	out    io.Writer
	errOut io.Writer
	log    *logrus.Logger

	configPath string
	verbose    bool

	// isTTY reports whether out is a terminal.
	isTTY func() bool

	// termWidth returns the width of out, or 0 when unknown.
	termWidth func() int
}

func newApp(in io.Reader, out, errOut io.Writer) *app {
	log := logrus.New()
	log.SetOutput(errOut)
	log.SetLevel(logrus.WarnLevel)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	a := &app{
		in:        in,
		out:       out,
		errOut:    errOut,
		log:       log,
		isTTY:     func() bool { return false },
		termWidth: func() int { return 0 },
	}
	if f, ok := out.(*os.File); ok {
		fd := int(f.Fd())
		a.isTTY = func() bool { return term.IsTerminal(fd) }
		a.termWidth = func() int {
			if !term.IsTerminal(fd) {
				return 0
			}
			w, _, err := term.GetSize(fd)
			if err != nil {
				return 0
			}
			return w
		}
	}
	return a
}

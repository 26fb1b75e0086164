// Package shell provides the interactive help browser for clihelp.
package shell

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/chzyer/readline"
	"github.com/sirupsen/logrus"

	"github.com/r3d91ll/clihelp/pkg/entry"
	"github.com/r3d91ll/clihelp/pkg/errors"
	"github.com/r3d91ll/clihelp/pkg/help"
	"github.com/r3d91ll/clihelp/pkg/layout"
)

// builtin describes one shell command.
type builtin struct {
	names       []string
	usage       string
	description string
}

// builtins lists the shell commands. Anything else typed is a command path.
var builtins = []builtin{
	{[]string{":help", ":h"}, ":help", "Show this list"},
	{[]string{":paths", ":ls"}, ":paths", "List every command and alias path"},
	{[]string{":width", ":w"}, ":width [n]", "Show or set the page width"},
	{[]string{":quit", ":exit", ":q"}, ":quit", "Leave the shell"},
}

// Shell is the interactive help browser. Each line typed is rendered as a
// help page for that command path.
type Shell struct {
	reg      *entry.Registry
	renderer *help.Renderer
	rl       *readline.Instance
	out      io.Writer
	errs     *errors.Formatter
	log      logrus.FieldLogger
	cfg      Config
	width    int
}

// Config holds shell configuration.
type Config struct {
	HistoryFile string

	// Width is the initial page width.
	Width int

	// Stdin and Stdout default to the process streams.
	Stdin  io.ReadCloser
	Stdout io.Writer

	// Color enables the colored prompt and error output.
	Color bool

	Logger logrus.FieldLogger
}

// New creates a shell over reg without attaching a terminal. Use Run to
// start the interactive loop.
func New(reg *entry.Registry, renderer *help.Renderer, cfg Config) *Shell {
	out := cfg.Stdout
	if out == nil {
		out = os.Stdout
	}
	log := cfg.Logger
	if log == nil {
		discard := logrus.New()
		discard.SetOutput(io.Discard)
		log = discard
	}
	width := cfg.Width
	if width < help.MinWidth {
		width = renderer.MaxWidthFor(0)
	}
	return &Shell{
		reg:      reg,
		renderer: renderer,
		out:      out,
		errs:     &errors.Formatter{UseColor: cfg.Color, Writer: out, Indent: "  "},
		log:      log,
		cfg:      cfg,
		width:    width,
	}
}

// Width returns the current page width.
func (s *Shell) Width() int {
	return s.width
}

// Run starts the interactive loop. It returns nil on :quit or end of input.
func (s *Shell) Run(ctx context.Context) error {
	cfg := s.cfg
	prompt := "clihelp> "
	if cfg.Color {
		prompt = help.ColorGreen + "clihelp>" + help.ColorReset + " "
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          prompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    NewPathCompleter(s.reg),
		Stdin:           cfg.Stdin,
		Stdout:          cfg.Stdout,
	})
	if err != nil {
		return errors.Wrap(err, errors.ErrInternal, errors.CategoryInternal, "failed to start line editor")
	}
	s.rl = rl

	var closeOnce sync.Once
	closeLine := func() { closeOnce.Do(func() { rl.Close() }) }
	defer closeLine()
	stop := closeOnDone(ctx, closeLine)
	defer stop()

	fmt.Fprintln(s.out, "Type a command path to show its help. :help lists shell commands, :quit exits.")
	fmt.Fprintln(s.out)

	for {
		line, err := s.rl.Readline()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			if err == readline.ErrInterrupt {
				continue
			}
			if err == io.EOF {
				return nil
			}
			return err
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := s.Execute(line); err != nil {
			if err == errQuit {
				return nil
			}
			if fatal := s.report(err); fatal {
				return err
			}
		}
	}
}

// closeOnDone calls closeFn once ctx is done, unblocking a pending
// Readline. The returned stop releases the watcher and waits for it to
// exit.
func closeOnDone(ctx context.Context, closeFn func()) (stop func()) {
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		defer close(exited)
		select {
		case <-ctx.Done():
			closeFn()
		case <-done:
		}
	}()
	return func() {
		close(done)
		<-exited
	}
}

// report displays err and reports whether the loop must stop. Output
// failures are fatal since nothing more can be shown.
func (s *Shell) report(err error) bool {
	if he, ok := errors.AsHelpError(err); ok {
		s.log.WithFields(logrus.Fields{
			"code":    he.Code,
			"context": he.ContextString(),
		}).Debug("command failed")
	}
	if errors.IsCategory(err, errors.CategoryIO) {
		return true
	}
	s.errs.Display(err)
	return false
}

var errQuit = fmt.Errorf("quit")

// Execute handles one input line: a shell command or a command path.
// It returns errQuit for :quit.
func (s *Shell) Execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return errors.Command(errors.ErrCommandEmptyInput, "empty input")
	}
	if !strings.HasPrefix(line, ":") {
		return s.show(line)
	}

	parts := strings.Fields(line)
	switch parts[0] {
	case ":quit", ":exit", ":q":
		return errQuit

	case ":help", ":h":
		return s.printHelp()

	case ":paths", ":ls":
		s.printPaths()

	case ":width", ":w":
		return s.handleWidth(parts[1:])

	default:
		return errors.Commandf(errors.ErrCommandNotFound, "unknown shell command: %s", parts[0]).
			WithContext("command", parts[0])
	}
	return nil
}

func (s *Shell) show(path string) error {
	s.log.WithFields(logrus.Fields{"path": path, "width": s.width}).Debug("rendering help")

	lines, err := s.renderer.Render(path, s.width)
	if err != nil {
		return err
	}
	w := layout.NewWriter()
	w.Write(lines...)
	w.Write("")
	if _, err := w.WriteTo(s.out); err != nil {
		return errors.IOWrap(err, errors.ErrIOWriteFailed, "failed to write help page")
	}
	return nil
}

func (s *Shell) printHelp() error {
	const left = 14
	right := s.width - left - 3
	if right < 1 {
		right = 1
	}

	w := layout.NewWriter()
	cols, err := w.NewColumns(layout.ColumnsConfig{
		Widths:     []int{left, right},
		Space:      "   ",
		SpaceFirst: " " + s.renderer.Options().Mark + " ",
	})
	if err != nil {
		return err
	}
	for _, b := range builtins {
		if err := cols.Write(0, []string{b.usage}, 2, nil); err != nil {
			return err
		}
		if err := cols.Write(1, []string{b.description}, 0, nil); err != nil {
			return err
		}
		cols.Merge(false)
	}
	w.Write("")
	_, err = w.WriteTo(s.out)
	return err
}

func (s *Shell) printPaths() {
	for _, p := range s.reg.Paths() {
		if p == "" {
			continue
		}
		fmt.Fprintln(s.out, "  "+p)
	}
	fmt.Fprintln(s.out)
}

func (s *Shell) handleWidth(args []string) error {
	if len(args) == 0 {
		fmt.Fprintf(s.out, "Page width: %d\n", s.width)
		return nil
	}

	n, err := strconv.Atoi(args[0])
	if err != nil || n < help.MinWidth {
		return errors.Commandf(errors.ErrCommandInvalidArg, "invalid width %q", args[0]).
			WithContext("min", strconv.Itoa(help.MinWidth)).
			WithSuggestion(fmt.Sprintf("Use a whole number of at least %d, e.g. :width 80", help.MinWidth))
	}
	s.width = n
	s.log.WithField("width", n).Debug("page width changed")
	fmt.Fprintf(s.out, "Page width set to %d\n", n)
	return nil
}

// Package help renders command help pages from a registry of entries.
//
// A page is a list of fixed-width lines built on the layout package: an
// optional title banner followed by DESCRIPTION, USAGE, ARGUMENTS, OPTIONS,
// EXAMPLES, ALIASES, and COMMANDS sections. Sections without content are
// omitted.
//
// # Package Structure
//
//   - help.go: Options, constants, and the Renderer type
//   - box.go: the title banner and ANSI-aware string helpers
//   - style.go: ANSI styling and per-line colorization
//   - commands.go: the entries describing the clihelp CLI itself
//   - render.go: page composition
//
// # Usage
//
//	reg, err := entry.NewRegistry(entries...)
//	if err != nil {
//		return err
//	}
//	r := help.NewRenderer(reg, help.Options{Name: "my-cli", Title: "My CLI"})
//	lines, err := r.Render("dependencies", r.MaxWidthFor(termWidth))
//
// Render never reads terminal state. Callers measure the terminal and pass
// the width in.
package help

import "github.com/r3d91ll/clihelp/pkg/entry"

// Box drawing characters for the title banner.
const (
	BoxTopLeft     = "┍"
	BoxTopRight    = "┑"
	BoxBottomLeft  = "┕"
	BoxBottomRight = "┙"

	BoxHorizontal = "━"
	BoxVertical   = "│"
)

// ANSI codes for styled output.
const (
	ColorReset   = "\033[0m"
	ColorBold    = "\033[1m"
	ColorGreen   = "\033[32m"
	ColorBlue    = "\033[34m"
	ColorCyan    = "\033[36m"
	ColorGray    = "\033[90m"
	ColorOff     = "\033[39m"
	Underline    = "\033[4m"
	UnderlineOff = "\033[24m"
)

// Defaults applied by NewRenderer to zero Options fields.
const (
	DefaultMaxWidth = 140
	DefaultMaxLeft  = 35
	DefaultMark     = "•"
)

// MinWidth is the narrowest page Render accepts.
const MinWidth = 10

// MinLeft is the narrowest left column of a two-column row. Left cells are
// indented by two, so anything smaller cannot hold a character.
const MinLeft = shiftBody + 1

// Options controls page geometry and decoration.
type Options struct {
	// Title is shown in a banner at the top of every page. Empty disables it.
	Title string

	// Name is the CLI executable name prefixed to every usage line.
	Name string

	// MaxWidth caps the width returned by MaxWidthFor.
	MaxWidth int

	// MaxLeft caps the left column of two-column sections.
	MaxLeft int

	// Mark separates the columns on the first row of each pair.
	Mark string

	// Color enables ANSI colorization of section rows.
	Color bool
}

// Renderer renders help pages for the entries of a registry.
type Renderer struct {
	reg  *entry.Registry
	opts Options
}

// NewRenderer creates a Renderer over reg.
func NewRenderer(reg *entry.Registry, opts Options) *Renderer {
	if opts.MaxWidth <= 0 {
		opts.MaxWidth = DefaultMaxWidth
	}
	if opts.MaxLeft <= 0 {
		opts.MaxLeft = DefaultMaxLeft
	}
	if opts.Mark == "" {
		opts.Mark = DefaultMark
	}
	return &Renderer{reg: reg, opts: opts}
}

// Registry returns the registry pages are rendered from.
func (r *Renderer) Registry() *entry.Registry {
	return r.reg
}

// Options returns the renderer options with defaults applied.
func (r *Renderer) Options() Options {
	return r.opts
}

// MaxWidthFor returns the page width for a terminal termWidth columns wide.
// A non-positive termWidth is treated as unknown.
func (r *Renderer) MaxWidthFor(termWidth int) int {
	if termWidth <= 0 || termWidth > r.opts.MaxWidth {
		termWidth = r.opts.MaxWidth
	}
	return termWidth - 1
}

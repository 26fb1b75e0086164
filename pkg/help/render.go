package help

// render.go composes help pages from entries through layout.Writer.

import (
	"sort"
	"strings"

	"github.com/r3d91ll/clihelp/pkg/entry"
	"github.com/r3d91ll/clihelp/pkg/errors"
	"github.com/r3d91ll/clihelp/pkg/layout"
)

// Section headings.
const (
	sectionDescription = "DESCRIPTION"
	sectionUsage       = "USAGE"
	sectionArguments   = "ARGUMENTS"
	sectionOptions     = "OPTIONS"
	sectionExamples    = "EXAMPLES"
	sectionAliases     = "ALIASES"
	sectionCommands    = "COMMANDS"
)

// Indents inside a section.
const (
	shiftBody    = 2
	shiftComment = 4
)

// page is the state of one Render call.
type page struct {
	opts  Options
	width int
	w     *layout.Writer
	full  *layout.Columns
	pair  *layout.Columns

	// sections counts headings written so far.
	sections int

	// current is the entry whose tokens Colorize highlights.
	current entry.Entry
}

// Render returns the help page for path laid out width columns wide.
//
// A width below MinWidth fails with HELP_INVALID_WIDTH. A path with no
// registered command or alias fails with HELP_NOT_FOUND, carrying the
// nearest registered paths as suggestions. When several entries answer to
// path, each one's sections are rendered in registration order followed by
// a single COMMANDS section.
func (r *Renderer) Render(path string, width int) ([]string, error) {
	if width < MinWidth {
		return nil, errors.HelpInvalidWidth(width, MinWidth)
	}
	entries := r.reg.Lookup(path)
	if len(entries) == 0 {
		return nil, errors.HelpNotFound(entry.NormalizePath(path), r.reg.Suggest(path)...)
	}

	p, err := r.newPage(width)
	if err != nil {
		return nil, err
	}

	if r.opts.Title != "" {
		banner := Banner(r.opts.Title, width)
		if r.opts.Color {
			// Title rows sit between the top border and the bottom border
			// plus trailing blank.
			for i := 1; i < len(banner)-2; i++ {
				banner[i] = Bold(banner[i])
			}
		}
		p.w.Write(banner...)
	}
	for _, e := range entries {
		p.current = e
		if err := p.entrySections(e); err != nil {
			return nil, err
		}
	}
	if err := p.commands(r.children(entries)); err != nil {
		return nil, err
	}
	return p.w.Lines(), nil
}

func (r *Renderer) newPage(width int) (*page, error) {
	p := &page{opts: r.opts, width: width}

	var opts []layout.WriterOption
	if r.opts.Color {
		opts = append(opts, layout.WithMergeHook(func(_ layout.ColumnsConfig, rows []string) []string {
			for i := range rows {
				rows[i] = Colorize(rows[i], p.opts.Name, p.current)
			}
			return rows
		}))
	}
	p.w = layout.NewWriter(opts...)

	left := int(float64(width) * 0.4)
	if left > r.opts.MaxLeft {
		left = r.opts.MaxLeft
	}
	if left < MinLeft {
		left = MinLeft
	}
	first := " " + r.opts.Mark + " "
	sepWidth := VisibleLength(first)

	var err error
	if p.full, err = p.w.NewColumns(layout.ColumnsConfig{Widths: []int{width}}); err != nil {
		return nil, err
	}
	p.pair, err = p.w.NewColumns(layout.ColumnsConfig{
		Widths:     []int{left, width - left - sepWidth},
		Space:      strings.Repeat(" ", sepWidth),
		SpaceFirst: first,
	})
	if err != nil {
		return nil, err
	}
	return p, nil
}

// children returns the direct children of every distinct command among
// entries, without duplicates.
func (r *Renderer) children(entries []entry.Entry) []entry.Entry {
	var result []entry.Entry
	seenCommand := make(map[string]bool)
	seenChild := make(map[string]bool)
	for _, e := range entries {
		if seenCommand[e.Command] {
			continue
		}
		seenCommand[e.Command] = true
		for _, c := range r.reg.Children(e) {
			if !seenChild[c.Command] {
				seenChild[c.Command] = true
				result = append(result, c)
			}
		}
	}
	return result
}

func (p *page) entrySections(e entry.Entry) error {
	steps := []func(entry.Entry) error{
		p.description,
		p.usage,
		p.arguments,
		p.options,
		p.examples,
		p.aliases,
	}
	for _, step := range steps {
		if err := step(e); err != nil {
			return err
		}
	}
	return nil
}

// heading starts a section, separated from the previous one by a blank line.
func (p *page) heading(title string) {
	if p.sections > 0 {
		p.blank()
	}
	p.sections++
	lines := layout.Wrap(title, p.width)
	if p.opts.Color {
		for i := range lines {
			lines[i] = Header(lines[i])
		}
	}
	p.w.Write(lines...)
}

func (p *page) blank() {
	p.w.Write(strings.Repeat(" ", p.width))
}

// block writes lines into the full-width column and merges them.
func (p *page) block(lines []string, shift int, post layout.PostProcessFunc) error {
	if err := p.full.Write(0, lines, shift, post); err != nil {
		return err
	}
	p.full.Merge(false)
	return nil
}

// row writes one left/right pair and merges it.
func (p *page) row(left, right string) error {
	if err := p.pair.Write(0, []string{left}, shiftBody, nil); err != nil {
		return err
	}
	if err := p.pair.Write(1, paragraphs(right), 0, nil); err != nil {
		return err
	}
	p.pair.Merge(false)
	return nil
}

func (p *page) description(e entry.Entry) error {
	if strings.TrimSpace(e.Description) == "" {
		return nil
	}
	p.heading(sectionDescription)
	return p.block(paragraphs(e.Description), shiftBody, nil)
}

func (p *page) usage(e entry.Entry) error {
	p.heading(sectionUsage)
	return p.block([]string{p.invocation(e.Command, argList(e))}, shiftBody, nil)
}

func (p *page) arguments(e entry.Entry) error {
	if len(e.Args) == 0 {
		return nil
	}
	p.heading(sectionArguments)
	for _, a := range e.Args {
		if err := p.row("<"+a.Name+">", a.Description); err != nil {
			return err
		}
	}
	return nil
}

func (p *page) options(e entry.Entry) error {
	if len(e.Options) == 0 {
		return nil
	}
	p.heading(sectionOptions)

	opts := make([]entry.Option, len(e.Options))
	copy(opts, e.Options)
	sort.SliceStable(opts, func(i, j int) bool {
		return opts[i].Keys[0] < opts[j].Keys[0]
	})
	for _, o := range opts {
		flags := o.FlagKeys()
		if o.Value != "" {
			flags += "=" + o.Value
		}
		if err := p.row(flags, o.Description); err != nil {
			return err
		}
	}
	return nil
}

func (p *page) examples(e entry.Entry) error {
	if len(e.Examples) == 0 {
		return nil
	}
	p.heading(sectionExamples)
	for i, ex := range e.Examples {
		if i > 0 {
			p.blank()
		}
		if err := p.block(paragraphs(ex.Description), shiftComment, p.comments); err != nil {
			return err
		}
		if err := p.block([]string{p.invocation(e.Command, ex.Cmd)}, shiftBody, nil); err != nil {
			return err
		}
	}
	return nil
}

func (p *page) aliases(e entry.Entry) error {
	if len(e.Aliases) == 0 {
		return nil
	}
	p.heading(sectionAliases)
	lines := make([]string, len(e.Aliases))
	for i, a := range e.Aliases {
		lines[i] = p.invocation(a)
	}
	return p.block(lines, shiftBody, nil)
}

func (p *page) commands(children []entry.Entry) error {
	if len(children) == 0 {
		return nil
	}
	p.heading(sectionCommands)
	for _, c := range children {
		p.current = c
		if err := p.row(p.invocation(c.Command), c.Description); err != nil {
			return err
		}
	}
	return nil
}

// invocation builds "$ name part..." with whitespace collapsed.
func (p *page) invocation(parts ...string) string {
	return "$ " + entry.NormalizePath(p.opts.Name+" "+strings.Join(parts, " "))
}

func argList(e entry.Entry) string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = "<" + a.Name + ">"
	}
	return strings.Join(args, " ")
}

// commentLines turns the indent of each wrapped example description into
// a "# " marker.
func commentLines(lines []string, _ layout.ColumnsConfig) []string {
	for i, l := range lines {
		lines[i] = "  # " + l[shiftComment:]
	}
	return lines
}

// comments applies commentLines and dims the result when coloring.
func (p *page) comments(lines []string, cfg layout.ColumnsConfig) []string {
	lines = commentLines(lines, cfg)
	if p.opts.Color {
		for i := range lines {
			lines[i] = Dim(lines[i])
		}
	}
	return lines
}

func paragraphs(text string) []string {
	return strings.Split(text, "\n")
}

package layout

import (
	"strings"

	"github.com/r3d91ll/clihelp/pkg/errors"
)

// ColumnsConfig describes the fixed geometry of a Columns instance.
type ColumnsConfig struct {
	// Widths holds one positive width per column. The column count is len(Widths).
	Widths []int

	// Space is inserted between adjacent columns on every row after the first.
	Space string

	// SpaceFirst is inserted between adjacent columns on row 0.
	// Empty means Space.
	SpaceFirst string
}

// PostProcessFunc transforms the wrapped, shifted lines produced from one
// input line before they are appended to a column.
type PostProcessFunc func(lines []string, cfg ColumnsConfig) []string

// ColumnsOption configures a Columns instance.
type ColumnsOption func(*Columns)

// WithSink forwards every merge to sink and clears the columns afterwards.
func WithSink(sink Sink) ColumnsOption {
	return func(c *Columns) {
		c.sink = sink
	}
}

// Columns accumulates text in parallel fixed-width columns and merges them
// into rows. Columns is not safe for concurrent use.
type Columns struct {
	cfg    ColumnsConfig
	cols   [][]string
	blanks []string
	sink   Sink
}

// NewColumns creates a Columns with the given geometry.
// A zero or negative width fails with LAYOUT_INVALID_WIDTH. An empty Widths
// slice is valid and produces empty merges.
func NewColumns(cfg ColumnsConfig, opts ...ColumnsOption) (*Columns, error) {
	widths := make([]int, len(cfg.Widths))
	copy(widths, cfg.Widths)
	for i, w := range widths {
		if w <= 0 {
			return nil, errors.InvalidWidth(i, w)
		}
	}
	cfg.Widths = widths
	if cfg.SpaceFirst == "" {
		cfg.SpaceFirst = cfg.Space
	}

	c := &Columns{
		cfg:    cfg,
		cols:   make([][]string, len(widths)),
		blanks: make([]string, len(widths)),
	}
	for i, w := range widths {
		c.blanks[i] = strings.Repeat(" ", w)
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Config returns the geometry, with SpaceFirst resolved.
func (c *Columns) Config() ColumnsConfig {
	cfg := c.cfg
	cfg.Widths = c.Widths()
	return cfg
}

// Count returns the number of columns.
func (c *Columns) Count() int {
	return len(c.cols)
}

// Widths returns a copy of the column widths.
func (c *Columns) Widths() []int {
	widths := make([]int, len(c.cfg.Widths))
	copy(widths, c.cfg.Widths)
	return widths
}

// Width returns the rune length of a merged row joined with Space.
func (c *Columns) Width() int {
	if len(c.cfg.Widths) == 0 {
		return 0
	}
	total := runeLen(c.cfg.Space) * (len(c.cfg.Widths) - 1)
	for _, w := range c.cfg.Widths {
		total += w
	}
	return total
}

// Height returns the line count of the tallest column.
func (c *Columns) Height() int {
	tallest := 0
	for _, col := range c.cols {
		if len(col) > tallest {
			tallest = len(col)
		}
	}
	return tallest
}

// Write wraps each of lines at the column width minus shift, indents the
// result by shift spaces, passes each batch through post when it is non-nil,
// and appends it to column index.
func (c *Columns) Write(index int, lines []string, shift int, post PostProcessFunc) error {
	if index < 0 || index >= len(c.cols) {
		return errors.InvalidColumn(index, len(c.cols))
	}
	width := c.cfg.Widths[index]
	if shift < 0 || width-shift <= 0 {
		return errors.InvalidShift(index, width, shift)
	}

	indent := strings.Repeat(" ", shift)
	for _, line := range lines {
		wrapped := Wrap(line, width-shift)
		for i := range wrapped {
			wrapped[i] = indent + wrapped[i]
		}
		if post != nil {
			wrapped = post(wrapped, c.Config())
		}
		c.cols[index] = append(c.cols[index], wrapped...)
	}
	return nil
}

// Even pads every column with blank lines up to the tallest column.
func (c *Columns) Even() {
	height := c.Height()
	for i := range c.cols {
		for len(c.cols[i]) < height {
			c.cols[i] = append(c.cols[i], c.blanks[i])
		}
	}
}

// Space appends one blank row across all columns.
func (c *Columns) Space() {
	if len(c.cols) == 0 {
		return
	}
	c.Even()
	c.cols[0] = append(c.cols[0], c.blanks[0])
	c.Even()
}

// Merge evens the columns and joins them into one line per row, using
// SpaceFirst on row 0 and Space on the others. With andClear, or when a
// sink is attached, the columns are cleared afterwards. The merged rows are
// forwarded to the sink, if any, and always returned.
func (c *Columns) Merge(andClear bool) []string {
	c.Even()

	height := c.Height()
	rows := make([]string, 0, height)
	cells := make([]string, len(c.cols))
	for i := 0; i < height; i++ {
		for j, col := range c.cols {
			cells[j] = col[i]
		}
		sep := c.cfg.Space
		if i == 0 {
			sep = c.cfg.SpaceFirst
		}
		rows = append(rows, strings.Join(cells, sep))
	}

	if andClear || c.sink != nil {
		c.Clear()
	}
	if c.sink != nil {
		c.sink.Append(rows...)
	}
	return rows
}

// Clear empties every column. The geometry is kept.
func (c *Columns) Clear() {
	for i := range c.cols {
		c.cols[i] = nil
	}
}

func runeLen(s string) int {
	return len([]rune(s))
}

package layout

import (
	"io"
	"strings"
)

// Sink receives merged rows from a Columns instance.
type Sink interface {
	Append(lines ...string)
}

// MergeHook transforms rows merged by a Columns created through a Writer
// before they are appended.
type MergeHook func(cfg ColumnsConfig, rows []string) []string

// WriterOption configures a Writer.
type WriterOption func(*Writer)

// WithMergeHook sets the hook applied to rows from the Writer's columns.
func WithMergeHook(hook MergeHook) WriterOption {
	return func(w *Writer) {
		w.hook = hook
	}
}

// Writer is an append-only buffer of finished display lines.
// Writer is not safe for concurrent use.
type Writer struct {
	lines []string
	hook  MergeHook
}

// NewWriter creates an empty Writer.
func NewWriter(opts ...WriterOption) *Writer {
	w := &Writer{}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write appends already rendered lines.
func (w *Writer) Write(lines ...string) {
	w.lines = append(w.lines, lines...)
}

// Append implements Sink. Rows appended directly bypass the merge hook.
func (w *Writer) Append(lines ...string) {
	w.Write(lines...)
}

// NewColumns creates a Columns bound to w. Every merge appends its rows to
// w in call order and clears the columns.
func (w *Writer) NewColumns(cfg ColumnsConfig) (*Columns, error) {
	sink := &columnSink{w: w}
	c, err := NewColumns(cfg, WithSink(sink))
	if err != nil {
		return nil, err
	}
	sink.cfg = c.Config()
	return c, nil
}

// Lines returns a snapshot of the buffered lines.
func (w *Writer) Lines() []string {
	lines := make([]string, len(w.lines))
	copy(lines, w.lines)
	return lines
}

// Len returns the number of buffered lines.
func (w *Writer) Len() int {
	return len(w.lines)
}

// WriteTo writes every buffered line followed by a newline to out.
func (w *Writer) WriteTo(out io.Writer) (int64, error) {
	var sb strings.Builder
	for _, line := range w.lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	n, err := io.WriteString(out, sb.String())
	return int64(n), err
}

// columnSink routes merged rows through the writer's hook.
type columnSink struct {
	w   *Writer
	cfg ColumnsConfig
}

func (s *columnSink) Append(rows ...string) {
	if s.w.hook != nil {
		rows = s.w.hook(s.cfg, rows)
	}
	s.w.Write(rows...)
}

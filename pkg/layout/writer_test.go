package layout

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/r3d91ll/clihelp/pkg/errors"
)

func TestWriter_CollectsLinesAndMergesInOrder(t *testing.T) {
	w := NewWriter()
	w.Write("TITLE")

	cols, err := w.NewColumns(ColumnsConfig{Widths: []int{4, 5}, Space: "  ", SpaceFirst: " • "})
	if err != nil {
		t.Fatalf("NewColumns failed: %v", err)
	}
	mustWrite(t, cols, 0, []string{"-a"}, 0)
	mustWrite(t, cols, 1, []string{"all of them"}, 0)
	cols.Merge(false)

	w.Write("")
	mustWrite(t, cols, 0, []string{"-d"}, 0)
	mustWrite(t, cols, 1, []string{"deps"}, 0)
	rows := cols.Merge(false)

	want := []string{
		"TITLE",
		"-a   • all  ",
		"      of   ",
		"      them ",
		"",
		"-d   • deps ",
	}
	if diff := cmp.Diff(want, w.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"-d   • deps "}, rows); diff != "" {
		t.Errorf("Merge() should still return its rows (-want +got):\n%s", diff)
	}
	if cols.Height() != 0 {
		t.Errorf("bound columns must be cleared after merge, Height() = %d", cols.Height())
	}
}

func TestWriter_MergeHook(t *testing.T) {
	var hookCfg ColumnsConfig
	w := NewWriter(WithMergeHook(func(cfg ColumnsConfig, rows []string) []string {
		hookCfg = cfg
		out := make([]string, len(rows))
		for i, r := range rows {
			out[i] = strings.ToUpper(r)
		}
		return out
	}))

	cols, err := w.NewColumns(ColumnsConfig{Widths: []int{3, 3}, Space: "|"})
	if err != nil {
		t.Fatalf("NewColumns failed: %v", err)
	}
	mustWrite(t, cols, 0, []string{"abc"}, 0)
	mustWrite(t, cols, 1, []string{"def"}, 0)
	cols.Merge(false)
	w.Append("raw")

	if diff := cmp.Diff([]string{"ABC|DEF", "raw"}, w.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
	if hookCfg.SpaceFirst != "|" {
		t.Errorf("hook saw SpaceFirst %q, want resolved %q", hookCfg.SpaceFirst, "|")
	}
}

func TestWriter_NewColumnsRejectsGeometry(t *testing.T) {
	w := NewWriter()
	if _, err := w.NewColumns(ColumnsConfig{Widths: []int{0}}); !errors.IsCode(err, errors.ErrLayoutInvalidWidth) {
		t.Errorf("expected %s, got %v", errors.ErrLayoutInvalidWidth, err)
	}
}

func TestWriter_LinesIsSnapshot(t *testing.T) {
	w := NewWriter()
	w.Write("a", "b")
	lines := w.Lines()
	lines[0] = "changed"

	if got := w.Lines()[0]; got != "a" {
		t.Errorf("Lines() must return a copy, buffer now holds %q", got)
	}
	if w.Len() != 2 {
		t.Errorf("Len() = %d, want 2", w.Len())
	}
}

func TestWriter_WriteTo(t *testing.T) {
	w := NewWriter()
	w.Write("first", "second")

	var buf bytes.Buffer
	n, err := w.WriteTo(&buf)
	if err != nil {
		t.Fatalf("WriteTo failed: %v", err)
	}
	if buf.String() != "first\nsecond\n" {
		t.Errorf("WriteTo wrote %q", buf.String())
	}
	if n != int64(buf.Len()) {
		t.Errorf("WriteTo returned %d, wrote %d bytes", n, buf.Len())
	}
}

func TestColumns_WithExternalSink(t *testing.T) {
	w := NewWriter()
	c := mustColumns(t, ColumnsConfig{Widths: []int{2}}, WithSink(w))
	mustWrite(t, c, 0, []string{"ab cd"}, 0)
	c.Merge(false)

	if diff := cmp.Diff([]string{"ab", "cd"}, w.Lines()); diff != "" {
		t.Errorf("sink mismatch (-want +got):\n%s", diff)
	}
	if c.Height() != 0 {
		t.Error("columns with a sink must clear after merge")
	}
}

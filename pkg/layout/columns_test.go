package layout

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/r3d91ll/clihelp/pkg/errors"
)

func mustColumns(t *testing.T, cfg ColumnsConfig, opts ...ColumnsOption) *Columns {
	t.Helper()
	c, err := NewColumns(cfg, opts...)
	if err != nil {
		t.Fatalf("NewColumns(%+v) failed: %v", cfg, err)
	}
	return c
}

func mustWrite(t *testing.T, c *Columns, index int, lines []string, shift int) {
	t.Helper()
	if err := c.Write(index, lines, shift, nil); err != nil {
		t.Fatalf("Write(%d) failed: %v", index, err)
	}
}

func TestColumns_AlignsText(t *testing.T) {
	c := mustColumns(t, ColumnsConfig{
		Widths:     []int{7, 10, 10},
		Space:      "   ",
		SpaceFirst: " - ",
	})
	mustWrite(t, c, 0, []string{"Line 1"}, 0)
	mustWrite(t, c, 1, []string{"The first line of the second column"}, 0)
	mustWrite(t, c, 2, []string{"The first line of the third column"}, 0)
	c.Space()
	mustWrite(t, c, 0, []string{"- sub item 1"}, 2)
	mustWrite(t, c, 1, []string{"The second line of the second column"}, 0)
	mustWrite(t, c, 2, []string{"The second line of the third column", "A new line for a column"}, 0)

	want := []string{
		"Line 1  - The first  - The first ",
		"          line of      line of   ",
		"          the second   the third ",
		"          column       column    ",
		"                                 ",
		"  - sub   The second   The second",
		"  item    line of      line of   ",
		"  1       the second   the third ",
		"          column       column    ",
		"                       A new line",
		"                       for a     ",
		"                       column    ",
	}
	if diff := cmp.Diff(want, c.Merge(false)); diff != "" {
		t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
	}
}

func TestColumns_MergeRowCountAndPadding(t *testing.T) {
	c := mustColumns(t, ColumnsConfig{Widths: []int{4, 6}, Space: "|"})
	mustWrite(t, c, 0, []string{"a b c d e f"}, 0)
	mustWrite(t, c, 1, []string{"x"}, 0)

	tallest := c.Height()
	rows := c.Merge(false)

	if len(rows) != tallest {
		t.Fatalf("expected %d rows, got %d", tallest, len(rows))
	}
	for i, row := range rows {
		if len(row) != c.Width() {
			t.Errorf("row %d has length %d, want %d", i, len(row), c.Width())
		}
		if !strings.Contains(row, "|") {
			t.Errorf("row %d is missing the column separator: %q", i, row)
		}
	}
	if rows[2] != "e f |      " {
		t.Errorf("expected padded right cell, got %q", rows[2])
	}
}

func TestColumns_SpaceFirstDefaultsToSpace(t *testing.T) {
	c := mustColumns(t, ColumnsConfig{Widths: []int{3, 3}, Space: "::"})
	mustWrite(t, c, 0, []string{"abc def"}, 0)
	mustWrite(t, c, 1, []string{"ghi"}, 0)

	want := []string{"abc::ghi", "def::   "}
	if diff := cmp.Diff(want, c.Merge(false)); diff != "" {
		t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
	}
	if got := c.Config().SpaceFirst; got != "::" {
		t.Errorf("Config().SpaceFirst = %q, want %q", got, "::")
	}
}

func TestColumns_MergeIsIdempotent(t *testing.T) {
	c := mustColumns(t, ColumnsConfig{Widths: []int{5, 5}, Space: " "})
	mustWrite(t, c, 0, []string{"one two three"}, 0)
	mustWrite(t, c, 1, []string{"four"}, 0)

	first := c.Merge(false)
	second := c.Merge(false)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated Merge(false) differs (-first +second):\n%s", diff)
	}
}

func TestColumns_MergeAndClear(t *testing.T) {
	c := mustColumns(t, ColumnsConfig{Widths: []int{5}})
	mustWrite(t, c, 0, []string{"hello"}, 0)

	if rows := c.Merge(true); len(rows) != 1 {
		t.Fatalf("expected 1 row, got %v", rows)
	}
	if rows := c.Merge(false); len(rows) != 0 {
		t.Errorf("expected no rows after Merge(true), got %v", rows)
	}
}

func TestColumns_ClearThenMergeIsEmpty(t *testing.T) {
	c := mustColumns(t, ColumnsConfig{Widths: []int{4, 4}, Space: " "})
	mustWrite(t, c, 0, []string{"some content here"}, 0)
	c.Space()
	c.Clear()

	if rows := c.Merge(false); len(rows) != 0 {
		t.Errorf("expected empty merge after Clear, got %v", rows)
	}
	if c.Count() != 2 {
		t.Errorf("Clear must keep geometry, Count() = %d", c.Count())
	}
	mustWrite(t, c, 1, []string{"ok"}, 0)
	if rows := c.Merge(false); len(rows) != 1 || rows[0] != "     ok  " {
		t.Errorf("expected reuse after Clear, got %q", rows)
	}
}

func TestColumns_SpaceProducesBlankRow(t *testing.T) {
	c := mustColumns(t, ColumnsConfig{Widths: []int{3, 4}, Space: "  "})
	c.Space()

	rows := c.Merge(false)
	if len(rows) != 1 {
		t.Fatalf("expected one row, got %v", rows)
	}
	if rows[0] != strings.Repeat(" ", c.Width()) {
		t.Errorf("expected a blank row of width %d, got %q", c.Width(), rows[0])
	}
}

func TestColumns_WriteShiftAndPostProcess(t *testing.T) {
	c := mustColumns(t, ColumnsConfig{Widths: []int{10}})
	var seen ColumnsConfig
	err := c.Write(0, []string{"Prints peer dependencies"}, 4, func(lines []string, cfg ColumnsConfig) []string {
		seen = cfg
		for i := range lines {
			lines[i] = "  # " + lines[i][4:]
		}
		return lines
	})
	if err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	want := []string{"  # Prints", "  # peer  ", "  # depend", "  # encies"}
	if diff := cmp.Diff(want, c.Merge(false)); diff != "" {
		t.Errorf("Merge() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{10}, seen.Widths); diff != "" {
		t.Errorf("post-process saw wrong geometry (-want +got):\n%s", diff)
	}
}

func TestColumns_WriteErrors(t *testing.T) {
	c := mustColumns(t, ColumnsConfig{Widths: []int{4, 4}})

	tests := []struct {
		name  string
		index int
		shift int
		code  string
	}{
		{name: "index equal to count", index: 2, shift: 0, code: errors.ErrLayoutInvalidColumn},
		{name: "negative index", index: -1, shift: 0, code: errors.ErrLayoutInvalidColumn},
		{name: "shift fills the column", index: 0, shift: 4, code: errors.ErrLayoutInvalidShift},
		{name: "negative shift", index: 1, shift: -1, code: errors.ErrLayoutInvalidShift},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := c.Write(tt.index, []string{"text"}, tt.shift, nil)
			if !errors.IsCode(err, tt.code) {
				t.Errorf("Write() error = %v, want code %s", err, tt.code)
			}
		})
	}

	if c.Height() != 0 {
		t.Errorf("failed writes must not touch buffers, Height() = %d", c.Height())
	}
}

func TestNewColumns_RejectsInvalidWidths(t *testing.T) {
	for _, widths := range [][]int{{0}, {5, -2}, {3, 0, 3}} {
		_, err := NewColumns(ColumnsConfig{Widths: widths})
		if !errors.IsCode(err, errors.ErrLayoutInvalidWidth) {
			t.Errorf("NewColumns(%v) error = %v, want %s", widths, err, errors.ErrLayoutInvalidWidth)
		}
	}
}

func TestNewColumns_EmptyGeometry(t *testing.T) {
	c := mustColumns(t, ColumnsConfig{})
	c.Space()
	c.Even()

	if rows := c.Merge(true); len(rows) != 0 {
		t.Errorf("expected no rows, got %v", rows)
	}
	if c.Width() != 0 {
		t.Errorf("Width() = %d, want 0", c.Width())
	}
	if err := c.Write(0, []string{"x"}, 0, nil); !errors.IsCode(err, errors.ErrLayoutInvalidColumn) {
		t.Errorf("Write on empty geometry error = %v", err)
	}
}

func TestNewColumns_CopiesWidths(t *testing.T) {
	widths := []int{3, 3}
	c := mustColumns(t, ColumnsConfig{Widths: widths})
	widths[0] = 100
	got := c.Widths()
	got[1] = 100

	if diff := cmp.Diff([]int{3, 3}, c.Widths()); diff != "" {
		t.Errorf("geometry leaked (-want +got):\n%s", diff)
	}
}

func TestColumns_EmptyInputsProduceNoRows(t *testing.T) {
	c := mustColumns(t, ColumnsConfig{Widths: []int{4, 4}})
	mustWrite(t, c, 0, nil, 0)
	mustWrite(t, c, 1, []string{"", "   "}, 0)

	if rows := c.Merge(false); len(rows) != 0 {
		t.Errorf("expected no rows, got %q", rows)
	}
}

// Package layout reflows plain text into fixed-width lines and assembles
// independently wrapped blocks into aligned side-by-side columns.
//
// # Components
//
//   - wrap.go: Wrap, the width-constrained word wrapper
//   - columns.go: Columns, a multi-column accumulator that wraps, pads, and
//     merges parallel columns row by row
//   - writer.go: Writer, an append-only line buffer that hands out Columns
//     bound to it through a Sink
//
// # Usage
//
//	w := layout.NewWriter()
//	w.Write("OPTIONS")
//	cols, err := w.NewColumns(layout.ColumnsConfig{
//		Widths:     []int{20, 40},
//		Space:      "   ",
//		SpaceFirst: " • ",
//	})
//	if err != nil {
//		return err
//	}
//	cols.Write(0, []string{"--all, -a"}, 2, nil)
//	cols.Write(1, []string{"Include every dependency kind"}, 0, nil)
//	cols.Merge(false) // rows are appended to w and cols is cleared
//	lines := w.Lines()
//
// Lengths are counted in runes. Every rune occupies exactly one column;
// East-Asian wide characters and ANSI escape sequences are not measured
// specially, so colorize after layout.
//
// Nothing in this package is safe for concurrent use.
package layout

package help

// box.go draws the title banner and measures strings that may carry ANSI codes.

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/r3d91ll/clihelp/pkg/layout"
)

var ansiPattern = regexp.MustCompile(`\033\[[0-9;]*m`)

// Box draws heavy-line frames of a fixed outer width.
type Box struct {
	// Width is the outer width including both border characters.
	Width int
}

// NewBox creates a Box width columns wide.
func NewBox(width int) *Box {
	return &Box{Width: width}
}

// Top returns the top border: ┍━━━┑
func (b *Box) Top() string {
	return BoxTopLeft + strings.Repeat(BoxHorizontal, b.inner()) + BoxTopRight
}

// Bottom returns the bottom border: ┕━━━┙
func (b *Box) Bottom() string {
	return BoxBottomLeft + strings.Repeat(BoxHorizontal, b.inner()) + BoxBottomRight
}

// Row returns "│ content │" with content left-aligned, padded, or truncated
// to fit.
func (b *Box) Row(content string) string {
	width := b.inner() - 2
	if width < 0 {
		width = 0
	}
	visible := VisibleLength(content)
	if visible >= width {
		return BoxVertical + " " + truncateVisible(content, width) + " " + BoxVertical
	}
	return BoxVertical + " " + PadRight(content, width) + " " + BoxVertical
}

// RowCenter returns a row with content placed slightly left of center.
// Content that does not fit is left to Row.
func (b *Box) RowCenter(content string) string {
	n := VisibleLength(content)
	if n >= b.Width-4 {
		return b.Row(content)
	}
	left := (b.Width-n)/2 - 4
	if left < 0 {
		left = 0
	}
	right := b.Width - n - 4 - left
	return BoxVertical + " " + strings.Repeat(" ", left) + content + strings.Repeat(" ", right) + " " + BoxVertical
}

func (b *Box) inner() int {
	if b.Width < 2 {
		return 0
	}
	return b.Width - 2
}

// Banner frames title in a box width columns wide and ends with a blank
// line. A title that does not fit on one centered row is wrapped.
func Banner(title string, width int) []string {
	b := NewBox(width)
	lines := []string{b.Top()}
	if utf8.RuneCountInString(title) >= width-4 {
		for _, l := range layout.Wrap(title, width-4) {
			lines = append(lines, b.Row(l))
		}
	} else {
		lines = append(lines, b.RowCenter(title))
	}
	return append(lines, b.Bottom(), strings.Repeat(" ", width))
}

// VisibleLength returns the rune count of s excluding ANSI escape codes.
func VisibleLength(s string) int {
	return utf8.RuneCountInString(StripANSI(s))
}

// StripANSI removes ANSI SGR escape codes from s.
func StripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

// PadRight pads s with spaces to the visible width.
func PadRight(s string, width int) string {
	visible := VisibleLength(s)
	if visible >= width {
		return s
	}
	return s + strings.Repeat(" ", width-visible)
}

// truncateVisible cuts s to width visible runes, keeping escape codes and
// appending a reset when styled text was cut.
func truncateVisible(s string, width int) string {
	var result strings.Builder
	visible := 0
	inEscape := false
	hasOpenEscape := false

	for _, r := range s {
		if r == '\033' {
			inEscape = true
			hasOpenEscape = true
			result.WriteRune(r)
			continue
		}
		if inEscape {
			result.WriteRune(r)
			if r == 'm' {
				inEscape = false
				if strings.HasSuffix(result.String(), ColorReset) {
					hasOpenEscape = false
				}
			}
			continue
		}

		if visible >= width {
			break
		}
		result.WriteRune(r)
		visible++
	}

	if hasOpenEscape {
		result.WriteString(ColorReset)
	}
	return result.String()
}

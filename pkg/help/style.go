package help

// style.go wraps text in ANSI escape codes.

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/r3d91ll/clihelp/pkg/entry"
)

// Header returns text in bold cyan.
func Header(text string) string {
	return ColorBold + ColorCyan + text + ColorReset
}

// Dim returns text in gray.
func Dim(text string) string {
	return ColorGray + text + ColorReset
}

// Bold returns text in bold.
func Bold(text string) string {
	return ColorBold + text + ColorReset
}

// Argument returns text in green. Only the foreground is reset.
func Argument(text string) string {
	return ColorGreen + text + ColorOff
}

// Flag returns text in blue. Only the foreground is reset.
func Flag(text string) string {
	return ColorBlue + text + ColorOff
}

// Underlined returns text underlined.
func Underlined(text string) string {
	return Underline + text + UnderlineOff
}

// Colorize styles the tokens of line that belong to e: <arg> placeholders,
// option flags preceded by whitespace and followed by a non-alphanumeric,
// and every occurrence of the CLI name. Escape codes already in line are
// kept and never matched against. Tokens are styled at most once, with
// arguments winning over flags and flags over the name, so the visible
// text of line is unchanged.
func Colorize(line, name string, e entry.Entry) string {
	codes := ansiPattern.FindAllStringIndex(line, -1)
	if len(codes) == 0 {
		return colorizeText(line, name, e)
	}

	var sb strings.Builder
	prev := 0
	for _, loc := range codes {
		sb.WriteString(colorizeText(line[prev:loc[0]], name, e))
		sb.WriteString(line[loc[0]:loc[1]])
		prev = loc[1]
	}
	sb.WriteString(colorizeText(line[prev:], name, e))
	return sb.String()
}

// span is a styled byte range of plain text.
type span struct {
	start, end int
	style      func(string) string
}

// colorizeText styles text that holds no escape codes. Matches are found on
// the unmodified text and codes are inserted in one pass.
func colorizeText(text, name string, e entry.Entry) string {
	var spans []span
	add := func(start, end int, style func(string) string) {
		for _, s := range spans {
			if start < s.end && s.start < end {
				return
			}
		}
		spans = append(spans, span{start, end, style})
	}

	for _, a := range e.Args {
		re := regexp.MustCompile(`<` + regexp.QuoteMeta(a.Name) + `>`)
		for _, m := range re.FindAllStringIndex(text, -1) {
			add(m[0], m[1], Argument)
		}
	}
	for _, o := range e.Options {
		for _, k := range o.Keys {
			dashes := "-"
			if utf8.RuneCountInString(k) > 1 {
				dashes = "--"
			}
			re := regexp.MustCompile(`\s(` + dashes + regexp.QuoteMeta(k) + `)[^a-zA-Z0-9]`)
			for _, m := range re.FindAllStringSubmatchIndex(text, -1) {
				add(m[2], m[3], Flag)
			}
		}
	}
	if name != "" {
		re := regexp.MustCompile(regexp.QuoteMeta(name))
		for _, m := range re.FindAllStringIndex(text, -1) {
			add(m[0], m[1], Underlined)
		}
	}
	if len(spans) == 0 {
		return text
	}

	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })
	var sb strings.Builder
	prev := 0
	for _, s := range spans {
		sb.WriteString(text[prev:s.start])
		sb.WriteString(s.style(text[s.start:s.end]))
		prev = s.end
	}
	sb.WriteString(text[prev:])
	return sb.String()
}

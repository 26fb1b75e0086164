package entry

import (
	"regexp"
	"strings"
)

var (
	whitespace   = regexp.MustCompile(`\s+`)
	segmentSep   = regexp.MustCompile(`\s+|:+`)
	lastSegment  = regexp.MustCompile(`(\s+|:+)[^\s:]+$`)
	trailingPart = regexp.MustCompile(`([\s:]+[^\s:]+)$`)
)

// Match is the lookup information derived from an entry.
type Match struct {
	// Match holds every path the entry answers to: its command, then aliases.
	Match []string

	// Parent is the command with its last segment removed.
	// Only meaningful when HasParent is set.
	Parent string

	// HasParent is false for the root command.
	HasParent bool

	// Last holds the separator and final segment of each match when the
	// command has more than one segment (e.g. ":add", " set").
	Last []string
}

// NormalizePath collapses whitespace runs into single spaces and trims the ends.
func NormalizePath(path string) string {
	return strings.TrimSpace(whitespace.ReplaceAllString(path, " "))
}

// SplitPath splits a command path into its non-empty segments.
func SplitPath(path string) []string {
	var parts []string
	for _, p := range segmentSep.Split(path, -1) {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// EvalMatch derives the match paths, parent path, and trailing segments of e.
func EvalMatch(e Entry) Match {
	m := Match{
		Match: e.Paths(),
		Last:  []string{},
	}

	segments := len(SplitPath(e.Command))
	if segments > 0 {
		m.HasParent = true
		if segments > 1 {
			m.Parent = lastSegment.ReplaceAllString(e.Command, "")
		}
	}
	if segments > 1 {
		for _, p := range m.Match {
			if v := trailingPart.FindStringSubmatch(p); v != nil {
				m.Last = append(m.Last, v[1])
			}
		}
	}
	return m
}

// Less orders entries by specificity: fewer segments first, then by command.
func Less(a, b Entry) bool {
	la, lb := len(SplitPath(a.Command)), len(SplitPath(b.Command))
	if la != lb {
		return la < lb
	}
	return a.Command < b.Command
}

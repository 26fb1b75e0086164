package shell

import (
	"sort"
	"strings"

	"github.com/chzyer/readline"

	"github.com/r3d91ll/clihelp/pkg/entry"
)

// PathCompleter provides tab completion for command paths and shell
// commands. It implements the readline.AutoCompleter interface.
type PathCompleter struct {
	reg *entry.Registry
}

// NewPathCompleter creates a completer over the paths of reg.
func NewPathCompleter(reg *entry.Registry) *PathCompleter {
	return &PathCompleter{reg: reg}
}

// Ensure PathCompleter implements readline.AutoCompleter at compile time.
var _ readline.AutoCompleter = (*PathCompleter)(nil)

// Do implements readline.AutoCompleter.
//
// Paths may contain spaces, so the whole line up to the cursor, with leading
// blanks dropped and inner whitespace collapsed, is the prefix. Input
// starting with ":" completes shell commands. Candidates are returned as
// the suffixes that complete the prefix, with the prefix length in runes.
func (c *PathCompleter) Do(line []rune, pos int) (newLine [][]rune, length int) {
	if len(line) == 0 || pos <= 0 {
		return nil, 0
	}
	if pos > len(line) {
		pos = len(line)
	}

	typed := strings.TrimLeft(string(line[:pos]), " \t")
	if typed == "" {
		return nil, 0
	}

	if strings.HasPrefix(typed, ":") {
		return c.complete(typed, commandNames())
	}
	if c.reg == nil {
		return nil, 0
	}
	return c.complete(typed, c.reg.Paths())
}

// complete matches typed against candidates. A trailing blank in typed is
// kept so "deps " still completes to paths with a following segment.
func (c *PathCompleter) complete(typed string, candidates []string) ([][]rune, int) {
	prefix := entry.NormalizePath(typed)
	if strings.HasSuffix(typed, " ") || strings.HasSuffix(typed, "\t") {
		prefix += " "
	}

	var matches [][]rune
	for _, cand := range candidates {
		if cand == "" || cand == prefix || !strings.HasPrefix(cand, prefix) {
			continue
		}
		matches = append(matches, []rune(cand[len(prefix):]))
	}
	return matches, len([]rune(typed))
}

// commandNames returns every shell command name, sorted.
func commandNames() []string {
	var names []string
	for _, b := range builtins {
		names = append(names, b.names...)
	}
	sort.Strings(names)
	return names
}

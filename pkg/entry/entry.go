// Package entry models the commands a help page describes and resolves
// command paths, aliases, and parent/child relations between them.
package entry

import (
	"strings"
	"unicode/utf8"
)

// Entry describes one command of the documented CLI.
type Entry struct {
	// Command is the command path, with segments separated by spaces or
	// colons (e.g. "dependencies:add"). The empty command is the CLI root.
	Command string `yaml:"command"`

	// Description is free text, possibly several newline-separated paragraphs.
	Description string `yaml:"description,omitempty"`

	// Aliases are alternative full paths for the same command.
	Aliases []string `yaml:"aliases,omitempty"`

	// Args are positional arguments in usage order.
	Args []Arg `yaml:"args,omitempty"`

	// Options are the flags the command accepts.
	Options []Option `yaml:"options,omitempty"`

	// Examples are sample invocations relative to the command.
	Examples []Example `yaml:"examples,omitempty"`
}

// Arg is a positional argument.
type Arg struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
}

// Option is a flag with one or more keys. Single-rune keys render as -k,
// longer keys as --key.
type Option struct {
	Keys        []string `yaml:"keys"`
	Description string   `yaml:"description,omitempty"`
	Value       string   `yaml:"value,omitempty"`
}

// Example is one sample invocation. Cmd is appended to the command path.
type Example struct {
	Cmd         string `yaml:"cmd"`
	Description string `yaml:"description,omitempty"`
}

// Paths returns the command followed by its aliases.
func (e Entry) Paths() []string {
	return append([]string{e.Command}, e.Aliases...)
}

// FlagKeys returns the option keys with their dash prefixes, joined by ", ".
func (o Option) FlagKeys() string {
	flags := make([]string, len(o.Keys))
	for i, k := range o.Keys {
		if utf8.RuneCountInString(k) > 1 {
			flags[i] = "--" + k
		} else {
			flags[i] = "-" + k
		}
	}
	return strings.Join(flags, ", ")
}

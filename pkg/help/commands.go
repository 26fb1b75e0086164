package help

// commands.go describes the clihelp CLI itself. These entries back the
// CLI's own --help output and seed the default configuration.

import "github.com/r3d91ll/clihelp/pkg/entry"

// CLIName is the executable name used in the built-in entries.
const CLIName = "clihelp"

// CLITitle is the banner shown on the built-in help pages.
const CLITitle = "clihelp: fixed-width help pages for command line tools"

var configOption = entry.Option{
	Keys:        []string{"config", "c"},
	Description: "Path to the configuration file",
	Value:       "path",
}

var verboseOption = entry.Option{
	Keys:        []string{"verbose", "v"},
	Description: "Log debug output to stderr",
}

// Builtin returns the entries describing the clihelp commands.
func Builtin() []entry.Entry {
	return []entry.Entry{
		{
			Command:     "",
			Description: "Renders help pages for the commands described in a YAML configuration file.",
			Options:     []entry.Option{configOption, verboseOption},
		},
		{
			Command: "render",
			Description: "Prints the help page for a command path. " +
				"Without a path the root page is printed.",
			Aliases: []string{"r"},
			Args: []entry.Arg{
				{Name: "path", Description: "Command path, e.g. \"dependencies add\" or \"dependencies:add\""},
			},
			Options: []entry.Option{
				{Keys: []string{"width", "w"}, Description: "Page width, defaults to the terminal width", Value: "n"},
				{Keys: []string{"color"}, Description: "Colorize output", Value: "auto|always|never"},
			},
			Examples: []entry.Example{
				{Cmd: "deps", Description: "Prints help for the deps command"},
				{Cmd: "--width 60 deps:add", Description: "Prints a 60 column page"},
			},
		},
		{
			Command:     "shell",
			Description: "Starts an interactive prompt that renders help for each path typed.",
			Aliases:     []string{"sh"},
			Examples: []entry.Example{
				{Cmd: "", Description: "Type :paths to list every command, :width 80 to change the page width, and :quit to leave"},
			},
		},
		{
			Command:     "init",
			Description: "Writes a default configuration file.",
			Options: []entry.Option{
				{Keys: []string{"force", "f"}, Description: "Overwrite an existing file without asking"},
			},
		},
		{
			Command:     "version",
			Description: "Prints the clihelp version.",
		},
	}
}

// BuiltinRegistry returns a registry holding Builtin.
func BuiltinRegistry() *entry.Registry {
	reg, err := entry.NewRegistry(Builtin()...)
	if err != nil {
		panic(err)
	}
	return reg
}

package errors

// suggestions.go maps error codes to remediation text shown under an error.

import (
	"runtime"
	"sort"
)

// ContextOS is the context key holding the operating system identifier.
const ContextOS = "os"

// Suggestion represents a remediation suggestion with optional conditions.
type Suggestion struct {
	// Text is the suggestion message displayed to the user.
	Text string

	// Conditions are key-value pairs that must all match the error context.
	// An empty map matches any context.
	Conditions map[string]string

	// Priority orders suggestions; higher values are shown first.
	Priority int
}

// Matches returns true if this suggestion's conditions match the given context.
func (s *Suggestion) Matches(ctx map[string]string) bool {
	for key, value := range s.Conditions {
		if ctx[key] != value {
			return false
		}
	}
	return true
}

// Registry maps error codes to their remediation suggestions.
type Registry struct {
	suggestions map[string][]Suggestion
}

// NewRegistry creates a new suggestion registry.
func NewRegistry() *Registry {
	return &Registry{
		suggestions: make(map[string][]Suggestion),
	}
}

// Register adds a suggestion for an error code.
func (r *Registry) Register(code, text string) *Registry {
	r.suggestions[code] = append(r.suggestions[code], Suggestion{Text: text})
	return r
}

// RegisterWithCondition adds a suggestion that only applies when ctx matches conditions.
func (r *Registry) RegisterWithCondition(code, text string, conditions map[string]string) *Registry {
	r.suggestions[code] = append(r.suggestions[code], Suggestion{
		Text:       text,
		Conditions: conditions,
	})
	return r
}

// RegisterWithPriority adds a suggestion with explicit priority.
func (r *Registry) RegisterWithPriority(code, text string, priority int) *Registry {
	r.suggestions[code] = append(r.suggestions[code], Suggestion{
		Text:     text,
		Priority: priority,
	})
	return r
}

// Get returns the suggestions for code that match ctx, highest priority first.
// Suggestions with equal priority keep registration order.
func (r *Registry) Get(code string, ctx map[string]string) []string {
	var matching []Suggestion
	for _, s := range r.suggestions[code] {
		if s.Matches(ctx) {
			matching = append(matching, s)
		}
	}
	sort.SliceStable(matching, func(i, j int) bool {
		return matching[i].Priority > matching[j].Priority
	})

	result := make([]string, len(matching))
	for i, s := range matching {
		result[i] = s.Text
	}
	return result
}

// HasSuggestions returns true if any suggestions exist for the error code.
func (r *Registry) HasSuggestions(code string) bool {
	return len(r.suggestions[code]) > 0
}

// DefaultContext returns a context map with current platform information.
func DefaultContext() map[string]string {
	return map[string]string{ContextOS: runtime.GOOS}
}

// MergeContext combines context maps; later maps win on duplicate keys.
func MergeContext(contexts ...map[string]string) map[string]string {
	result := make(map[string]string)
	for _, ctx := range contexts {
		for k, v := range ctx {
			result[k] = v
		}
	}
	return result
}

var defaultRegistry = NewRegistry()

func init() {
	defaultRegistry.
		Register(ErrConfigNotFound, "Run 'clihelp init' to create a default config file").
		Register(ErrConfigNotFound, "Pass an explicit file with --config <path>").
		Register(ErrConfigParseFailed, "Check the YAML syntax of the config file").
		Register(ErrConfigParseFailed, "Entries are listed under the top-level 'entries' key").
		Register(ErrConfigInvalid, "help.max_width must exceed 10 and help.max_left must be at least 3").
		Register(ErrConfigInvalid, "help.color must be one of: auto, always, never").
		Register(ErrConfigReadFailed, "Check that the config file is readable").
		RegisterWithCondition(ErrConfigReadFailed, "Try: chmod 644 <config file>", map[string]string{ContextOS: "linux"}).
		RegisterWithCondition(ErrConfigReadFailed, "Try: chmod 644 <config file>", map[string]string{ContextOS: "darwin"}).
		Register(ErrConfigWriteFailed, "Check that the target directory is writable").
		Register(ErrLayoutInvalidColumn, "Column indexes run from 0 to count-1").
		Register(ErrLayoutInvalidWidth, "Every column width must be greater than zero").
		Register(ErrLayoutInvalidShift, "The shift must be smaller than the column width").
		Register(ErrHelpNotFound, "Run 'clihelp render' without a path to list top-level commands").
		Register(ErrHelpInvalidWidth, "Pass a width of at least 10 columns with --width").
		Register(ErrEntryInvalid, "Aliases must be non-empty command paths").
		Register(ErrCommandNotFound, "Type ':help' to list browser commands").
		Register(ErrCommandInvalidArg, "Check the expected argument format").
		Register(ErrCommandEmptyInput, "Type a command path or ':quit' to exit").
		Register(ErrIOWriteFailed, "Check that the output stream is still open").
		Register(ErrIOReadFailed, "Pass --force to skip interactive confirmation").
		RegisterWithPriority(ErrInternal, "This is a bug; please report it with the command you ran", 10)
}

// AttachSuggestions adds registry suggestions to err using its context.
func AttachSuggestions(err *HelpError) *HelpError {
	if err == nil {
		return nil
	}
	ctx := MergeContext(DefaultContext(), err.Context)
	if suggestions := defaultRegistry.Get(err.Code, ctx); len(suggestions) > 0 {
		err.Suggestions = append(err.Suggestions, suggestions...)
	}
	return err
}

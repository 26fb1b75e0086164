package errors

import "fmt"

// -----------------------------------------------------------------------------
// Smart Constructors with Auto-Attached Suggestions
// -----------------------------------------------------------------------------

// Config creates a configuration error with auto-attached suggestions.
func Config(code, message string) *HelpError {
	return AttachSuggestions(New(code, CategoryConfig, message))
}

// Configf creates a configuration error with a formatted message.
func Configf(code, format string, args ...interface{}) *HelpError {
	return Config(code, fmt.Sprintf(format, args...))
}

// ConfigWrap wraps an error as a configuration error with auto-attached suggestions.
func ConfigWrap(cause error, code, message string) *HelpError {
	return AttachSuggestions(Wrap(cause, code, CategoryConfig, message))
}

// Layout creates a column engine error with auto-attached suggestions.
func Layout(code, message string) *HelpError {
	return AttachSuggestions(New(code, CategoryLayout, message))
}

// Layoutf creates a column engine error with a formatted message.
func Layoutf(code, format string, args ...interface{}) *HelpError {
	return Layout(code, fmt.Sprintf(format, args...))
}

// Command creates a command lookup error with auto-attached suggestions.
func Command(code, message string) *HelpError {
	return AttachSuggestions(New(code, CategoryCommand, message))
}

// Commandf creates a command error with a formatted message.
func Commandf(code, format string, args ...interface{}) *HelpError {
	return Command(code, fmt.Sprintf(format, args...))
}

// Validation creates a validation error with auto-attached suggestions.
func Validation(code, message string) *HelpError {
	return AttachSuggestions(New(code, CategoryValidation, message))
}

// Validationf creates a validation error with a formatted message.
func Validationf(code, format string, args ...interface{}) *HelpError {
	return Validation(code, fmt.Sprintf(format, args...))
}

// IOWrap wraps an error as an IO error with auto-attached suggestions.
func IOWrap(cause error, code, message string) *HelpError {
	return AttachSuggestions(Wrap(cause, code, CategoryIO, message))
}

// -----------------------------------------------------------------------------
// Domain-Specific Constructors
// -----------------------------------------------------------------------------

// ConfigNotFound creates an error for a missing config file.
func ConfigNotFound(path string) *HelpError {
	return Config(ErrConfigNotFound, "configuration file not found").
		WithContext("path", path)
}

// ConfigParseError creates an error for a config file that failed to parse.
func ConfigParseError(path string, cause error) *HelpError {
	return ConfigWrap(cause, ErrConfigParseFailed, "failed to parse configuration").
		WithContext("path", path)
}

// InvalidColumn creates an error for a write to a column outside 0..count-1.
func InvalidColumn(index, count int) *HelpError {
	return Layoutf(ErrLayoutInvalidColumn, "column index %d out of range", index).
		WithContext("index", fmt.Sprint(index)).
		WithContext("count", fmt.Sprint(count))
}

// InvalidWidth creates an error for a non-positive column width.
func InvalidWidth(index, width int) *HelpError {
	return Layoutf(ErrLayoutInvalidWidth, "column %d has non-positive width %d", index, width).
		WithContext("index", fmt.Sprint(index)).
		WithContext("width", fmt.Sprint(width))
}

// InvalidShift creates an error for a shift that leaves no room to wrap.
func InvalidShift(index, width, shift int) *HelpError {
	return Layoutf(ErrLayoutInvalidShift, "shift %d does not fit column %d of width %d", shift, index, width).
		WithContext("index", fmt.Sprint(index)).
		WithContext("width", fmt.Sprint(width)).
		WithContext("shift", fmt.Sprint(shift))
}

// HelpNotFound creates an error for a path with no registered entry.
// Each candidate becomes a "did you mean" suggestion.
func HelpNotFound(path string, candidates ...string) *HelpError {
	suggestions := make([]string, len(candidates))
	for i, c := range candidates {
		suggestions[i] = fmt.Sprintf("Did you mean '%s'?", c)
	}
	err := New(ErrHelpNotFound, CategoryCommand, "no help found for the given command").
		WithContext("path", path).
		WithSuggestions(suggestions...)
	return AttachSuggestions(err)
}

// EntryInvalid creates an error for an entry that cannot be registered.
func EntryInvalid(command, reason string) *HelpError {
	return Validationf(ErrEntryInvalid, "invalid entry: %s", reason).
		WithContext("command", command)
}

// HelpInvalidWidth creates an error for a render width below minWidth.
func HelpInvalidWidth(width, minWidth int) *HelpError {
	return Validationf(ErrHelpInvalidWidth, "width %d is too small to render help", width).
		WithContextMap(map[string]string{
			"width": fmt.Sprint(width),
			"min":   fmt.Sprint(minWidth),
		})
}

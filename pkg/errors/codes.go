package errors

// -----------------------------------------------------------------------------
// Configuration Error Codes
// -----------------------------------------------------------------------------

const (
	// ErrConfigNotFound indicates the configuration file does not exist.
	ErrConfigNotFound = "CONFIG_NOT_FOUND"

	// ErrConfigParseFailed indicates the configuration file could not be parsed.
	// Usually a YAML syntax error or invalid structure.
	ErrConfigParseFailed = "CONFIG_PARSE_FAILED"

	// ErrConfigInvalid indicates configuration values are invalid.
	ErrConfigInvalid = "CONFIG_INVALID"

	// ErrConfigReadFailed indicates the config file exists but could not be read.
	ErrConfigReadFailed = "CONFIG_READ_FAILED"

	// ErrConfigWriteFailed indicates the config file could not be written.
	ErrConfigWriteFailed = "CONFIG_WRITE_FAILED"
)

// -----------------------------------------------------------------------------
// Layout Error Codes
// -----------------------------------------------------------------------------
// Programmer errors raised by the column engine. They are never retried.

const (
	// ErrLayoutInvalidColumn indicates a write to a column index outside 0..count-1.
	ErrLayoutInvalidColumn = "LAYOUT_INVALID_COLUMN"

	// ErrLayoutInvalidWidth indicates a zero or negative column width.
	ErrLayoutInvalidWidth = "LAYOUT_INVALID_WIDTH"

	// ErrLayoutInvalidShift indicates a shift that is negative or leaves no room to wrap.
	ErrLayoutInvalidShift = "LAYOUT_INVALID_SHIFT"
)

// -----------------------------------------------------------------------------
// Help Error Codes
// -----------------------------------------------------------------------------

const (
	// ErrHelpNotFound indicates no entry is registered for the requested path.
	ErrHelpNotFound = "HELP_NOT_FOUND"

	// ErrHelpInvalidWidth indicates a render width too small to lay out help.
	ErrHelpInvalidWidth = "HELP_INVALID_WIDTH"
)

// -----------------------------------------------------------------------------
// Entry Error Codes
// -----------------------------------------------------------------------------

const (
	// ErrEntryInvalid indicates a command entry that cannot be registered.
	ErrEntryInvalid = "ENTRY_INVALID"
)

// -----------------------------------------------------------------------------
// Command Error Codes
// -----------------------------------------------------------------------------
// Used by the interactive help browser.

const (
	// ErrCommandNotFound indicates the shell command does not exist.
	ErrCommandNotFound = "COMMAND_NOT_FOUND"

	// ErrCommandInvalidArg indicates a shell command argument value is invalid.
	ErrCommandInvalidArg = "COMMAND_INVALID_ARG"

	// ErrCommandEmptyInput indicates no input was provided.
	ErrCommandEmptyInput = "COMMAND_EMPTY_INPUT"
)

// -----------------------------------------------------------------------------
// IO and Internal Error Codes
// -----------------------------------------------------------------------------

const (
	// ErrIOWriteFailed indicates rendered output could not be written.
	ErrIOWriteFailed = "IO_WRITE_FAILED"

	// ErrIOReadFailed indicates interactive input could not be read.
	ErrIOReadFailed = "IO_READ_FAILED"

	// ErrInternal indicates an unexpected internal failure.
	ErrInternal = "INTERNAL_ERROR"
)

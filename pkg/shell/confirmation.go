package shell

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/r3d91ll/clihelp/pkg/errors"
)

// Prompter asks the user to confirm an action before it runs.
type Prompter interface {
	// Confirm displays message and reports whether the user answered yes.
	Confirm(message string) (bool, error)
}

// InteractivePrompter implements Prompter by reading answers from a stream.
type InteractivePrompter struct {
	reader io.Reader
	writer io.Writer
}

// NewInteractivePrompterWithIO creates an InteractivePrompter with custom I/O.
func NewInteractivePrompterWithIO(reader io.Reader, writer io.Writer) *InteractivePrompter {
	return &InteractivePrompter{
		reader: reader,
		writer: writer,
	}
}

// Confirm prints message followed by " [y/N]: " and reads one line.
// Only "y" or "yes", in any case, confirms. End of input means no.
func (p *InteractivePrompter) Confirm(message string) (bool, error) {
	fmt.Fprintf(p.writer, "%s [y/N]: ", message)

	scanner := bufio.NewScanner(p.reader)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return false, errors.IOWrap(err, errors.ErrIOReadFailed, "failed to read confirmation")
		}
		return false, nil
	}

	response := strings.ToLower(strings.TrimSpace(scanner.Text()))
	return response == "yes" || response == "y", nil
}

var _ Prompter = (*InteractivePrompter)(nil)

// ConfirmOverwrite asks before replacing the file at path. A missing file
// needs no confirmation.
func ConfirmOverwrite(p Prompter, path string) (bool, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return true, nil
	}
	return p.Confirm(fmt.Sprintf("%s already exists. Overwrite it?", path))
}

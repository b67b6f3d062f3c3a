// Package readinput centralizes the "-" means stdin convention shared by
// every fcc subcommand that accepts a policy or configuration path.
package readinput

import (
	"fmt"
	"io"
	"os"
)

// stdinSentinel is the path value recognised as "read from stdin".
const stdinSentinel = "-"

// Read returns the contents named by path: stdin's contents if path is
// "-" (rejecting a TTY, since there would be nothing to read), or the
// named file's contents otherwise.
func Read(path string) ([]byte, error) {
	if path != stdinSentinel {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("readinput: %w", err)
		}
		return raw, nil
	}

	if isTerminal(os.Stdin) {
		return nil, fmt.Errorf("readinput: refusing to read %q from an interactive terminal", stdinSentinel)
	}

	raw, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("readinput: stdin: %w", err)
	}
	return raw, nil
}

// isTerminal reports whether f is attached to an interactive terminal.
func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

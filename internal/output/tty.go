package output

import (
	"os"

	"github.com/mattn/go-isatty"
)

// IsTTY reports whether stdout is attached to a terminal.
func IsTTY() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

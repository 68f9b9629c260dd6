package cli

import (
	"errors"

	"github.com/frontkit/nextkit/internal/runtime"
)

const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitGeneralError covers every failure that is not a child's exit status.
	ExitGeneralError = 1
)

// ExitCode maps an error to the process exit status. A failed generator or
// package manager run propagates the child's own status.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *runtime.ExitError
	if errors.As(err, &exitErr) && exitErr.Code > 0 {
		return exitErr.Code
	}
	return ExitGeneralError
}

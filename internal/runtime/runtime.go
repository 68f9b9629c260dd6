package runtime

import (
	"context"
	"fmt"
	"strings"
)

// Runner executes external commands.
type Runner interface {
	// Run executes the invocation, streaming its output to the runner's
	// writers. A non-zero exit is reported as *ExitError.
	Run(ctx context.Context, inv Invocation) error

	// Output executes the invocation and returns its trimmed stdout.
	Output(ctx context.Context, inv Invocation) (string, error)
}

// Invocation describes one external command.
type Invocation struct {
	Name string            // binary name, resolved via PATH
	Args []string          // arguments, not including Name
	Dir  string            // working directory; empty means the current one
	Env  map[string]string // overlay on top of the inherited environment
}

// String renders the invocation as a shell-like command line.
func (i Invocation) String() string {
	parts := make([]string, 0, len(i.Args)+1)
	parts = append(parts, i.Name)
	for _, a := range i.Args {
		if strings.ContainsAny(a, " *\"'") {
			a = "'" + a + "'"
		}
		parts = append(parts, a)
	}
	return strings.Join(parts, " ")
}

// ExitError reports an external command that ran but exited non-zero.
type ExitError struct {
	Invocation Invocation
	Code       int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("%s exited with status %d", e.Invocation.Name, e.Code)
}

// ExitCode returns the child's exit status.
func (e *ExitError) ExitCode() int {
	return e.Code
}

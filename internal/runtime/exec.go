package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sort"
	"strings"

	"github.com/frontkit/nextkit/internal/output"
)

// ExecRunner runs commands with os/exec.
type ExecRunner struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// NewExecRunner returns an ExecRunner bound to the process's standard streams.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr}
}

// Run executes the invocation with the child's stdout/stderr attached to the
// runner's writers. The child inherits stdin so interactive prompts from the
// generator still work.
func (r *ExecRunner) Run(ctx context.Context, inv Invocation) error {
	cmd, err := r.command(ctx, inv)
	if err != nil {
		return err
	}
	cmd.Stdin = os.Stdin
	cmd.Stdout = r.stdout()
	cmd.Stderr = r.stderr()

	output.Debug("exec", "cmd", inv.String(), "dir", inv.Dir)
	return wrapExit(inv, cmd.Run())
}

// Output executes the invocation and returns its stdout with surrounding
// whitespace removed. Stderr is still streamed to the runner's writer.
func (r *ExecRunner) Output(ctx context.Context, inv Invocation) (string, error) {
	cmd, err := r.command(ctx, inv)
	if err != nil {
		return "", err
	}
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = r.stderr()

	output.Debug("exec", "cmd", inv.String(), "dir", inv.Dir)
	if err := wrapExit(inv, cmd.Run()); err != nil {
		return "", err
	}
	return strings.TrimSpace(stdout.String()), nil
}

func (r *ExecRunner) command(ctx context.Context, inv Invocation) (*exec.Cmd, error) {
	bin, err := exec.LookPath(inv.Name)
	if err != nil {
		return nil, fmt.Errorf("%s not found on PATH: %w", inv.Name, err)
	}

	cmd := exec.CommandContext(ctx, bin, inv.Args...)
	cmd.Dir = inv.Dir
	if len(inv.Env) > 0 {
		env := os.Environ()
		keys := make([]string, 0, len(inv.Env))
		for k := range inv.Env {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			env = setEnv(env, k, inv.Env[k])
		}
		cmd.Env = env
	}
	return cmd, nil
}

func (r *ExecRunner) stdout() io.Writer {
	if r.Stdout == nil {
		return os.Stdout
	}
	return r.Stdout
}

func (r *ExecRunner) stderr() io.Writer {
	if r.Stderr == nil {
		return os.Stderr
	}
	return r.Stderr
}

func wrapExit(inv Invocation, err error) error {
	if err == nil {
		return nil
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExitError{Invocation: inv, Code: exitErr.ExitCode()}
	}
	return fmt.Errorf("running %s: %w", inv.Name, err)
}

// setEnv sets or replaces an environment variable in the env slice.
func setEnv(env []string, key, value string) []string {
	prefix := key + "="
	for i, e := range env {
		if strings.HasPrefix(e, prefix) {
			env[i] = prefix + value
			return env
		}
	}
	return append(env, prefix+value)
}

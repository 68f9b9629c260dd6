// Package runtimetest provides a scripted runtime.Runner for tests.
package runtimetest

import (
	"context"
	"sync"

	"github.com/frontkit/nextkit/internal/runtime"
)

// Recorder is a runtime.Runner that records every invocation instead of
// spawning processes. Exit codes and stdout are scripted per binary name.
type Recorder struct {
	mu    sync.Mutex
	Calls []runtime.Invocation

	// ExitCodes maps a binary name to the exit status it should report.
	ExitCodes map[string]int

	// Stdout maps a binary name to the text Output returns.
	Stdout map[string]string

	// OnRun, when set, is called for every invocation before the scripted
	// result is returned. Tests use it to simulate side effects such as the
	// generator creating the project directory.
	OnRun func(inv runtime.Invocation) error
}

// Run records inv and returns the scripted result.
func (r *Recorder) Run(_ context.Context, inv runtime.Invocation) error {
	return r.record(inv)
}

// Output records inv and returns the scripted stdout.
func (r *Recorder) Output(_ context.Context, inv runtime.Invocation) (string, error) {
	if err := r.record(inv); err != nil {
		return "", err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.Stdout[inv.Name], nil
}

// Names returns the binary names invoked so far, in order.
func (r *Recorder) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, len(r.Calls))
	for i, c := range r.Calls {
		names[i] = c.Name
	}
	return names
}

func (r *Recorder) record(inv runtime.Invocation) error {
	r.mu.Lock()
	r.Calls = append(r.Calls, inv)
	code := r.ExitCodes[inv.Name]
	hook := r.OnRun
	r.mu.Unlock()

	if hook != nil {
		if err := hook(inv); err != nil {
			return err
		}
	}
	if code != 0 {
		return &runtime.ExitError{Invocation: inv, Code: code}
	}
	return nil
}

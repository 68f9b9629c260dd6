// Package doctor checks that the external tools nextkit drives are installed
// and recent enough.
package doctor

import (
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/frontkit/nextkit/internal/runtime"
)

// MinNodeVersion is the oldest Node.js release create-next-app supports.
const MinNodeVersion = ">=18.18.0"

// Status is the outcome of a single check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusMiss Status = "MISS"
	StatusFail Status = "FAIL"
)

// Check is one diagnostic line.
type Check struct {
	Name   string
	Status Status
	Detail string
}

// Report collects the checks of one doctor run.
type Report struct {
	Checks []Check
}

// OK reports whether every check passed.
func (r *Report) OK() bool {
	for _, c := range r.Checks {
		if c.Status != StatusOK {
			return false
		}
	}
	return true
}

// Print writes the report in "[ OK ] name detail" form.
func (r *Report) Print(w io.Writer) {
	fmt.Fprintln(w, "Runtime check:")
	for _, c := range r.Checks {
		fmt.Fprintf(w, "  [%s] %s %s\n", centre(string(c.Status)), c.Name, c.Detail)
	}
}

func centre(s string) string {
	if len(s) == 2 {
		return " " + s + " "
	}
	return s
}

// Doctor runs the checks.
type Doctor struct {
	Runner runtime.Runner

	// LookPath resolves binaries; defaults to exec.LookPath.
	LookPath func(string) (string, error)
}

// Run checks that node and each of the given tools are on PATH, then that
// node satisfies MinNodeVersion. Duplicate tool names are checked once.
func (d *Doctor) Run(ctx context.Context, tools ...string) *Report {
	lookPath := d.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}

	report := &Report{}
	seen := map[string]bool{}
	for _, name := range append([]string{"node"}, tools...) {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true

		path, err := lookPath(name)
		if err != nil {
			report.Checks = append(report.Checks, Check{Name: name, Status: StatusMiss, Detail: "not found"})
			continue
		}
		report.Checks = append(report.Checks, Check{Name: name, Status: StatusOK, Detail: "found at " + path})
	}

	if report.Checks[0].Status == StatusOK {
		report.Checks = append(report.Checks, d.nodeVersion(ctx))
	}
	return report
}

func (d *Doctor) nodeVersion(ctx context.Context) Check {
	out, err := d.Runner.Output(ctx, runtime.Invocation{Name: "node", Args: []string{"--version"}})
	if err != nil {
		return Check{Name: "node version", Status: StatusFail, Detail: err.Error()}
	}

	ok, err := SatisfiesNode(out)
	if err != nil {
		return Check{Name: "node version", Status: StatusFail, Detail: err.Error()}
	}
	if !ok {
		return Check{Name: "node version", Status: StatusFail, Detail: fmt.Sprintf("%s does not satisfy %s", out, MinNodeVersion)}
	}
	return Check{Name: "node version", Status: StatusOK, Detail: fmt.Sprintf("%s satisfies %s", out, MinNodeVersion)}
}

// SatisfiesNode reports whether a `node --version` string meets MinNodeVersion.
func SatisfiesNode(version string) (bool, error) {
	v, err := parseSemver(version)
	if err != nil {
		return false, fmt.Errorf("parsing node version %q: %w", version, err)
	}
	c, err := semver.NewConstraint(MinNodeVersion)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", MinNodeVersion, err)
	}
	return c.Check(v), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(strings.TrimSpace(version), "v")
	return semver.NewVersion(version)
}

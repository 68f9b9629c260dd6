// Package generator invokes create-next-app to produce the base project that
// the rest of the pipeline customizes.
package generator

import (
	"context"

	"github.com/frontkit/nextkit/internal/installer"
	"github.com/frontkit/nextkit/internal/runtime"
)

const (
	// DefaultCommand runs the generator package without a global install.
	DefaultCommand = "npx"
	// DefaultPackage is the generator package handed to DefaultCommand.
	DefaultPackage = "create-next-app@latest"
)

// ImportAlias is the module alias configured in tsconfig.json.
const ImportAlias = "@/*"

// Generator describes how to launch the external project generator.
type Generator struct {
	Command string // e.g. "npx"
	Package string // e.g. "create-next-app@latest"
}

// New returns a Generator, falling back to the defaults for empty fields.
func New(command, pkg string) Generator {
	if command == "" {
		command = DefaultCommand
	}
	if pkg == "" {
		pkg = DefaultPackage
	}
	return Generator{Command: command, Package: pkg}
}

// Args returns the generator arguments for a project called name: TypeScript,
// Tailwind, ESLint, the App Router, a src/ directory, the @/* import alias,
// and Turbopack disabled. A package manager other than npm is passed through
// as --use-<pm>.
func (g Generator) Args(name string, pm installer.PackageManager) []string {
	args := []string{
		g.Package, name,
		"--typescript",
		"--tailwind",
		"--eslint",
		"--app",
		"--src-dir",
		"--import-alias", ImportAlias,
		"--no-turbopack",
	}
	if pm != "" && pm != installer.NPM {
		args = append(args, "--use-"+string(pm))
	}
	return args
}

// Invocation builds the command that creates name inside outputDir.
func (g Generator) Invocation(outputDir, name string, pm installer.PackageManager) runtime.Invocation {
	return runtime.Invocation{
		Name: g.Command,
		Args: g.Args(name, pm),
		Dir:  outputDir,
	}
}

// Run launches the generator. A non-zero exit surfaces as *runtime.ExitError;
// there is no retry.
func (g Generator) Run(ctx context.Context, r runtime.Runner, outputDir, name string, pm installer.PackageManager) error {
	return r.Run(ctx, g.Invocation(outputDir, name, pm))
}

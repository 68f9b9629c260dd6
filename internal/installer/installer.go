// Package installer adds the runtime and development packages the scaffolded
// templates import. It shells out to the project's package manager.
package installer

import (
	"context"
	"fmt"
	"strings"

	"github.com/frontkit/nextkit/internal/runtime"
)

// Dependencies are the runtime packages the templates import.
var Dependencies = []string{
	"clsx",
	"tailwind-merge",
	"class-variance-authority",
	"lucide-react",
	"zod",
	"@radix-ui/react-slot",
}

// DevDependencies are installed as development-only packages.
var DevDependencies = []string{
	"tailwindcss-animate",
}

// PackageManager identifies a supported Node.js package manager.
type PackageManager string

const (
	NPM  PackageManager = "npm"
	PNPM PackageManager = "pnpm"
	Yarn PackageManager = "yarn"
	Bun  PackageManager = "bun"
)

// DefaultPackageManager is used when nothing is configured.
const DefaultPackageManager = NPM

// Supported returns every supported package manager name.
func Supported() []string {
	return []string{string(NPM), string(PNPM), string(Yarn), string(Bun)}
}

// Parse validates a package manager name. An empty name yields the default.
func Parse(name string) (PackageManager, error) {
	switch pm := PackageManager(strings.ToLower(strings.TrimSpace(name))); pm {
	case "":
		return DefaultPackageManager, nil
	case NPM, PNPM, Yarn, Bun:
		return pm, nil
	default:
		return "", fmt.Errorf("unsupported package manager %q: supported are %s", name, strings.Join(Supported(), ", "))
	}
}

// addArgs returns the subcommand used to add packages.
func (pm PackageManager) addArgs(dev bool) []string {
	switch pm {
	case NPM:
		if dev {
			return []string{"install", "-D"}
		}
		return []string{"install"}
	case Bun:
		if dev {
			return []string{"add", "-d"}
		}
		return []string{"add"}
	default:
		if dev {
			return []string{"add", "-D"}
		}
		return []string{"add"}
	}
}

// Plan returns the two invocations that install Dependencies and then
// DevDependencies inside root.
func Plan(root string, pm PackageManager) []runtime.Invocation {
	runtimeArgs := append(pm.addArgs(false), Dependencies...)
	devArgs := append(pm.addArgs(true), DevDependencies...)
	return []runtime.Invocation{
		{Name: string(pm), Args: runtimeArgs, Dir: root},
		{Name: string(pm), Args: devArgs, Dir: root},
	}
}

// Install runs Plan in order. The first failing invocation aborts the
// install and its error is returned unchanged.
func Install(ctx context.Context, r runtime.Runner, root string, pm PackageManager) error {
	for _, inv := range Plan(root, pm) {
		if err := r.Run(ctx, inv); err != nil {
			return err
		}
	}
	return nil
}

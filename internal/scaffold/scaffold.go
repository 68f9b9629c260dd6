package scaffold

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
)

//go:embed templates/nextjs
var scaffoldFS embed.FS

const templateRoot = "templates/nextjs"

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Policy decides whether a template is written.
type Policy int

const (
	// WriteAlways overwrites whatever is at the path.
	WriteAlways Policy = iota
	// WriteIfExists replaces the file only when the generator already
	// produced one at that path; otherwise nothing is written.
	WriteIfExists
)

func (p Policy) String() string {
	switch p {
	case WriteAlways:
		return "always"
	case WriteIfExists:
		return "if-exists"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// Action is what happened to a path during a scaffold step.
type Action string

const (
	ActionCreate    Action = "create"
	ActionOverwrite Action = "overwrite"
	ActionSkip      Action = "skip"
	ActionExists    Action = "exists"
)

// Template is a fixed-content file written into the project root.
type Template struct {
	Path        string // slash-separated, relative to the project root
	Description string
	Policy      Policy
}

// Data returns the template's embedded content.
func (t Template) Data() ([]byte, error) {
	b, err := fs.ReadFile(scaffoldFS, path.Join(templateRoot, t.Path))
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", t.Path, err)
	}
	return b, nil
}

// Entry records the action taken for one path.
type Entry struct {
	Path   string
	Action Action
}

// Result holds the outcome of a scaffold step.
type Result struct {
	Root    string
	Entries []Entry
}

func (r *Result) add(p string, a Action) {
	r.Entries = append(r.Entries, Entry{Path: p, Action: a})
}

// Layout is the directory tree created under the project root.
var Layout = []string{
	"src/app/(routes)",
	"src/app/api",
	"src/components/ui",
	"src/components/features",
	"src/lib",
	"src/hooks",
	"src/types",
	"src/actions",
	"src/services",
}

var templates = []Template{
	{Path: "src/lib/utils.ts", Description: "cn() class-name merge helper"},
	{Path: "src/types/index.ts", Description: "API response and action result types"},
	{Path: "src/lib/env.ts", Description: "Environment variable validation"},
	{Path: "src/components/ui/button.tsx", Description: "Button component with variants"},
	{Path: "src/app/globals.css", Description: "Color tokens and reduced-motion overrides", Policy: WriteIfExists},
	{Path: "tailwind.config.ts", Description: "Tailwind theme tokens and animations"},
}

// List returns the template set in write order.
func List() []Template {
	out := make([]Template, len(templates))
	copy(out, templates)
	return out
}

// WriteLayout creates every Layout directory under root. Existing
// directories are reported as ActionExists and are not an error.
func WriteLayout(root string, dryRun bool) (*Result, error) {
	result := &Result{Root: root}

	for _, rel := range Layout {
		dir := filepath.Join(root, filepath.FromSlash(rel))

		info, err := os.Stat(dir)
		switch {
		case err == nil && info.IsDir():
			result.add(rel, ActionExists)
			continue
		case err == nil:
			return nil, fmt.Errorf("creating directory %s: %s exists and is not a directory", rel, dir)
		case !errors.Is(err, fs.ErrNotExist):
			return nil, fmt.Errorf("checking directory %s: %w", rel, err)
		}

		if !dryRun {
			if err := os.MkdirAll(dir, dirPerm); err != nil {
				return nil, fmt.Errorf("creating directory %s: %w", rel, err)
			}
		}
		result.add(rel, ActionCreate)
	}

	return result, nil
}

// EmitTemplates writes the template set under root according to each
// template's Policy. A dry run against a root that does not exist yet plans
// for the generator's output: WriteIfExists templates report ActionOverwrite.
func EmitTemplates(root string, dryRun bool) (*Result, error) {
	result := &Result{Root: root}

	planned := false
	if dryRun {
		_, err := os.Stat(root)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("checking project root %s: %w", root, err)
		}
		planned = err != nil
	}

	for _, t := range templates {
		act, err := emit(root, t, dryRun, planned)
		if err != nil {
			return nil, err
		}
		result.add(t.Path, act)
	}

	return result, nil
}

func emit(root string, t Template, dryRun, planned bool) (Action, error) {
	target := filepath.Join(root, filepath.FromSlash(t.Path))

	info, err := os.Stat(target)
	exists := err == nil
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("checking %s: %w", t.Path, err)
	}
	if exists && info.IsDir() {
		return "", fmt.Errorf("writing %s: path is a directory", t.Path)
	}

	if t.Policy == WriteIfExists && !exists {
		if planned {
			return ActionOverwrite, nil
		}
		return ActionSkip, nil
	}

	act := ActionCreate
	if exists {
		act = ActionOverwrite
	}
	if dryRun {
		return act, nil
	}

	data, err := t.Data()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(target), dirPerm); err != nil {
		return "", fmt.Errorf("creating directory for %s: %w", t.Path, err)
	}
	if err := os.WriteFile(target, data, filePerm); err != nil {
		return "", fmt.Errorf("writing %s: %w", target, err)
	}
	return act, nil
}

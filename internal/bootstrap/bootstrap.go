// Package bootstrap runs the project creation pipeline: resolve arguments,
// run the generator, lay out directories, emit templates, install packages.
// Steps execute in a fixed order and the first failure stops the run.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/frontkit/nextkit/internal/generator"
	"github.com/frontkit/nextkit/internal/installer"
	"github.com/frontkit/nextkit/internal/output"
	"github.com/frontkit/nextkit/internal/runtime"
	"github.com/frontkit/nextkit/internal/scaffold"
)

// Options are the inputs of one run.
type Options struct {
	Name           string
	Path           string // output directory; empty means the working directory
	SkipInstall    bool
	DryRun         bool
	PackageManager installer.PackageManager
	Generator      generator.Generator
}

// Project locates the generated application on disk.
type Project struct {
	Name      string
	OutputDir string // absolute
	Root      string // OutputDir/Name
}

// Resolve turns a project name and output path into absolute locations.
// The name itself is left for the generator to validate.
func Resolve(name, path string) (*Project, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("project name is required")
	}
	if path == "" {
		path = "."
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving output directory %s: %w", path, err)
	}
	return &Project{
		Name:      name,
		OutputDir: abs,
		Root:      filepath.Join(abs, name),
	}, nil
}

// Summary describes a completed run.
type Summary struct {
	Project   *Project
	Layout    *scaffold.Result
	Templates *scaffold.Result
	Commands  []runtime.Invocation // external commands run, or planned in a dry run
	DryRun    bool
}

// Bootstrapper executes the pipeline.
type Bootstrapper struct {
	Runner runtime.Runner
	Out    io.Writer
}

// New returns a Bootstrapper writing progress to stdout and running real
// processes.
func New() *Bootstrapper {
	return &Bootstrapper{Runner: runtime.NewExecRunner(), Out: os.Stdout}
}

type state struct {
	opts    Options
	summary *Summary
}

type step struct {
	name string
	run  func(ctx context.Context, st *state) error
}

// Run executes every step in order and returns the summary. Errors from
// external commands are returned unwrapped so their exit status survives.
func (b *Bootstrapper) Run(ctx context.Context, opts Options) (*Summary, error) {
	project, err := Resolve(opts.Name, opts.Path)
	if err != nil {
		return nil, err
	}
	if opts.PackageManager == "" {
		opts.PackageManager = installer.DefaultPackageManager
	}
	if opts.Generator.Command == "" || opts.Generator.Package == "" {
		opts.Generator = generator.New(opts.Generator.Command, opts.Generator.Package)
	}

	st := &state{
		opts:    opts,
		summary: &Summary{Project: project, DryRun: opts.DryRun},
	}

	steps := []step{
		{"generate", b.generate},
		{"layout", b.layout},
		{"templates", b.templates},
	}
	if !opts.SkipInstall {
		steps = append(steps, step{"install", b.install})
	}

	for _, s := range steps {
		output.Debug("pipeline step", "step", s.name, "root", project.Root)
		if err := s.run(ctx, st); err != nil {
			output.Debug("pipeline step failed", "step", s.name, "error", err)
			return st.summary, err
		}
	}
	return st.summary, nil
}

func (b *Bootstrapper) generate(ctx context.Context, st *state) error {
	p := st.summary.Project
	output.Step(b.Out, "🚀", "Creating Next.js project: "+output.StyleNoun.Render(p.Name))

	gen, pm := st.opts.Generator, st.opts.PackageManager
	inv := gen.Invocation(p.OutputDir, p.Name, pm)
	st.summary.Commands = append(st.summary.Commands, inv)
	if st.opts.DryRun {
		output.Action(b.Out, b.prefix(st), "run", inv.String())
		return nil
	}
	return gen.Run(ctx, b.Runner, p.OutputDir, p.Name, pm)
}

func (b *Bootstrapper) layout(_ context.Context, st *state) error {
	fmt.Fprintln(b.Out)
	output.Step(b.Out, "📁", "Creating project structure...")

	result, err := scaffold.WriteLayout(st.summary.Project.Root, st.opts.DryRun)
	if err != nil {
		return err
	}
	st.summary.Layout = result
	b.report(st, result)
	return nil
}

func (b *Bootstrapper) templates(_ context.Context, st *state) error {
	output.Step(b.Out, "📝", "Creating utility files...")

	result, err := scaffold.EmitTemplates(st.summary.Project.Root, st.opts.DryRun)
	if err != nil {
		return err
	}
	st.summary.Templates = result
	b.report(st, result)
	for _, e := range result.Entries {
		if e.Action == scaffold.ActionSkip {
			output.Warn("generator did not create file, left it out", "path", e.Path)
		}
	}
	return nil
}

func (b *Bootstrapper) install(ctx context.Context, st *state) error {
	fmt.Fprintln(b.Out)
	output.Step(b.Out, "📦", "Installing additional dependencies...")

	root := st.summary.Project.Root
	pm := st.opts.PackageManager
	if st.opts.DryRun {
		for _, inv := range installer.Plan(root, pm) {
			st.summary.Commands = append(st.summary.Commands, inv)
			output.Action(b.Out, b.prefix(st), "run", inv.String())
		}
		return nil
	}

	st.summary.Commands = append(st.summary.Commands, installer.Plan(root, pm)...)
	return installer.Install(ctx, b.Runner, root, pm)
}

func (b *Bootstrapper) report(st *state, result *scaffold.Result) {
	for _, e := range result.Entries {
		output.Action(b.Out, b.prefix(st), string(e.Action), e.Path)
	}
}

func (b *Bootstrapper) prefix(st *state) string {
	if st.opts.DryRun {
		return "dry-run: "
	}
	return ""
}

package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/frontkit/nextkit/internal/bootstrap"
	"github.com/frontkit/nextkit/internal/branding"
	"github.com/frontkit/nextkit/internal/config"
	"github.com/frontkit/nextkit/internal/generator"
	"github.com/frontkit/nextkit/internal/installer"
	"github.com/frontkit/nextkit/internal/output"
	"github.com/frontkit/nextkit/internal/runtime"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	outputPath     string
	skipInstall    bool
	dryRun         bool
	packageManager string
	verbose        bool
)

// newRunner is swapped out by tests.
var newRunner = func() runtime.Runner { return runtime.NewExecRunner() }

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <project-name>",
	Short: branding.Description(),
	Long: `Create a new Next.js project with TypeScript, Tailwind CSS and ESLint,
then add a conventional src/ layout, shared utilities, a sample Button
component, themed global styles and an extended Tailwind config.

Examples:
  nextkit demo-app
  nextkit demo-app --path ~/code --skip-install
  nextkit demo-app --package-manager pnpm --dry-run`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		output.SetupLoggingTo(cmd.ErrOrStderr(), verbose)
		if err := config.Load(); err != nil {
			return err
		}
		output.Debug("config loaded", "file", config.FilePath())
		return nil
	},
	RunE: runCreate,
}

func init() {
	rootCmd.Flags().StringVar(&outputPath, "path", ".", "Output directory (default: current directory)")
	rootCmd.Flags().BoolVar(&skipInstall, "skip-install", false, "Skip installing additional dependencies")
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print what would be done without running anything")
	rootCmd.Flags().StringVar(&packageManager, "package-manager", "",
		fmt.Sprintf("Package manager to use (%s; default from config)", strings.Join(installer.Supported(), ", ")))
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func runCreate(cmd *cobra.Command, args []string) error {
	settings := config.Current()

	pmName := settings.PackageManager
	if cmd.Flags().Changed("package-manager") {
		pmName = packageManager
	}
	pm, err := installer.Parse(pmName)
	if err != nil {
		return err
	}
	if configured, err := installer.Parse(settings.PackageManager); err == nil && configured != pm {
		output.Info("package manager overridden by flag", "flag", pm, "config", configured)
	}

	skip := settings.SkipInstall
	if cmd.Flags().Changed("skip-install") {
		skip = skipInstall
	}

	opts := bootstrap.Options{
		Name:           args[0],
		Path:           outputPath,
		SkipInstall:    skip,
		DryRun:         dryRun,
		PackageManager: pm,
		Generator:      generator.New(settings.GeneratorCommand, settings.GeneratorPackage),
	}
	output.Debug("create", "name", opts.Name, "path", opts.Path, "pm", pm, "skip_install", skip, "dry_run", dryRun)

	b := &bootstrap.Bootstrapper{Runner: newRunner(), Out: cmd.OutOrStdout()}
	summary, err := b.Run(cmd.Context(), opts)
	if err != nil {
		return err
	}

	bootstrap.PrintSummary(cmd.OutOrStdout(), summary, pm)
	return nil
}

// Execute runs the root command with build info injected via ldflags.
// The returned error has already been logged.
func Execute(ctx context.Context, version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		output.Error(err.Error())
	}
	return err
}

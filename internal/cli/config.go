package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/frontkit/nextkit/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configValidateCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long: `Read and write settings stored at ~/.nextkit/config.yaml.

Keys:
  generator.command   command that launches the generator (default: npx)
  generator.package   generator package (default: create-next-app@latest)
  package_manager     npm, pnpm, yarn or bun (default: npm)
  install.skip        skip dependency installation (default: false)

Every key can also be set through the environment, e.g. NEXTKIT_PACKAGE_MANAGER.`,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}

var configValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a config file against the schema",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := config.FilePath()
		if len(args) == 1 {
			path = args[0]
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Config validation: %s\n", path)

		result, err := config.ValidateFile(path)
		if err != nil && len(args) == 0 && errors.Is(err, os.ErrNotExist) {
			fmt.Fprintln(out, "  [ OK ] No config file, defaults apply")
			return nil
		}
		if err != nil {
			fmt.Fprintf(out, "  [FAIL] %v\n", err)
			return fmt.Errorf("config validation failed: %w", err)
		}
		if result.Valid {
			fmt.Fprintln(out, "  [ OK ] Valid config")
			return nil
		}

		fmt.Fprintf(out, "  [FAIL] %d validation issue(s):\n", len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "    - %s\n", issue)
		}
		return fmt.Errorf("config %s has %d validation issue(s)", path, len(result.Issues))
	},
}

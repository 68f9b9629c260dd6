package cli

import (
	"errors"
	"fmt"

	"github.com/frontkit/nextkit/internal/config"
	"github.com/frontkit/nextkit/internal/doctor"
	"github.com/frontkit/nextkit/internal/installer"
	"github.com/spf13/cobra"
)

// lookPath is swapped out by tests.
var lookPath func(string) (string, error)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check that node, the generator and the package manager are available",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings := config.Current()
		pm, err := installer.Parse(settings.PackageManager)
		if err != nil {
			return err
		}
		d := &doctor.Doctor{Runner: newRunner(), LookPath: lookPath}

		report := d.Run(cmd.Context(), settings.GeneratorCommand, string(pm))
		report.Print(cmd.OutOrStdout())

		if !report.OK() {
			return errors.New("one or more runtime checks failed")
		}
		fmt.Fprintln(cmd.OutOrStdout(), "\nAll checks passed.")
		return nil
	},
}

package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/frontkit/nextkit/internal/output"
	"github.com/frontkit/nextkit/internal/scaffold"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(templatesCmd)
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the files written into every new project",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		fmt.Fprintln(out, output.StyleHeading.Render("Directories"))
		for _, dir := range scaffold.Layout {
			fmt.Fprintf(out, "  %s/\n", dir)
		}

		fmt.Fprintln(out)
		fmt.Fprintln(out, output.StyleHeading.Render("Templates"))
		tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "  PATH\tWRITE\tDESCRIPTION")
		for _, t := range scaffold.List() {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", t.Path, t.Policy, t.Description)
		}
		return tw.Flush()
	},
}

package output

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals outside this block.
var (
	ColorCyan    = lipgloss.Color("14")
	ColorGreen   = lipgloss.Color("82")
	ColorYellow  = lipgloss.Color("220")
	ColorRed     = lipgloss.Color("196")
	ColorDimGray = lipgloss.Color("240")
)

var (
	// StyleNoun styles identifiable nouns: project names, paths, commands.
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleHeading styles a pipeline step title.
	StyleHeading = lipgloss.NewStyle().Bold(true)

	// StyleDim styles secondary text such as tree comments.
	StyleDim = lipgloss.NewStyle().Foreground(ColorDimGray)

	// StyleSuccess styles the final success line.
	StyleSuccess = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
)

var actionStyles = map[string]lipgloss.Style{
	"create":    lipgloss.NewStyle().Foreground(ColorGreen),
	"overwrite": lipgloss.NewStyle().Foreground(ColorYellow),
	"skip":      lipgloss.NewStyle().Foreground(ColorDimGray),
	"exists":    lipgloss.NewStyle().Foreground(ColorDimGray),
	"run":       lipgloss.NewStyle().Foreground(ColorCyan),
	"fail":      lipgloss.NewStyle().Foreground(ColorRed),
}

// actionWidth is the column width of the widest action label.
const actionWidth = 9

// Step prints a step heading.
func Step(w io.Writer, glyph, title string) {
	if !IsTTY() || glyph == "" {
		fmt.Fprintln(w, StyleHeading.Render(title))
		return
	}
	fmt.Fprintf(w, "%s %s\n", glyph, StyleHeading.Render(title))
}

// Action prints one aligned "<action> <path>" progress line. A prefix such
// as "dry-run: " is printed verbatim before the action.
func Action(w io.Writer, prefix, action, path string) {
	label := fmt.Sprintf("%-*s", actionWidth, action)
	if st, ok := actionStyles[action]; ok {
		label = st.Render(label)
	}
	fmt.Fprintf(w, "  %s%s %s\n", prefix, label, path)
}

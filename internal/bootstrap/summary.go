package bootstrap

import (
	"fmt"
	"io"
	"strings"

	"github.com/frontkit/nextkit/internal/installer"
	"github.com/frontkit/nextkit/internal/output"
)

type treeLine struct {
	path    string
	comment string
}

var structureTree = []treeLine{
	{"src/", ""},
	{"├── app/", "App Router"},
	{"├── components/", ""},
	{"│   ├── ui/", "Reusable UI components"},
	{"│   └── features/", "Feature-specific components"},
	{"├── lib/", "Utilities"},
	{"├── hooks/", "Custom hooks"},
	{"├── types/", "TypeScript types"},
	{"├── actions/", "Server Actions"},
	{"└── services/", "API services"},
}

// treeColumn is where tree comments start.
const treeColumn = 17

// PrintSummary writes the closing message: next steps and the project layout.
func PrintSummary(w io.Writer, s *Summary, pm installer.PackageManager) {
	if pm == "" {
		pm = installer.DefaultPackageManager
	}

	fmt.Fprintln(w)
	if s.DryRun {
		fmt.Fprintln(w, output.StyleSuccess.Render("Dry run complete; nothing was written."))
	} else {
		fmt.Fprintln(w, output.StyleSuccess.Render("✅ Project created successfully!"))
	}

	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintf(w, "  cd %s\n", s.Project.Name)
	fmt.Fprintf(w, "  %s run dev\n", pm)

	fmt.Fprintln(w, "\nProject structure:")
	for _, l := range structureTree {
		if l.comment == "" {
			fmt.Fprintf(w, "  %s\n", l.path)
			continue
		}
		pad := treeColumn - len([]rune(l.path))
		if pad < 1 {
			pad = 1
		}
		fmt.Fprintf(w, "  %s%s%s\n", l.path, strings.Repeat(" ", pad), output.StyleDim.Render("# "+l.comment))
	}
}

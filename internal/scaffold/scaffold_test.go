package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteLayout(t *testing.T) {
	root := t.TempDir()

	result, err := WriteLayout(root, false)
	require.NoError(t, err)
	require.Len(t, result.Entries, 9)

	for _, rel := range Layout {
		info, err := os.Stat(filepath.Join(root, filepath.FromSlash(rel)))
		require.NoError(t, err, "missing %s", rel)
		assert.True(t, info.IsDir(), "%s should be a directory", rel)
	}
	for _, e := range result.Entries {
		assert.Equal(t, ActionCreate, e.Action, e.Path)
	}
}

func TestWriteLayoutIdempotent(t *testing.T) {
	root := t.TempDir()

	_, err := WriteLayout(root, false)
	require.NoError(t, err)

	result, err := WriteLayout(root, false)
	require.NoError(t, err, "re-running layout creation must not fail")
	for _, e := range result.Entries {
		assert.Equal(t, ActionExists, e.Action, e.Path)
	}
}

func TestWriteLayoutKeepsGeneratorDirs(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "app"), 0o755))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "public"), 0o755))

	_, err := WriteLayout(root, false)
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(root, "public"))
	assert.NoError(t, err)
}

func TestWriteLayoutFileInTheWay(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "src", "lib"), "not a dir")

	_, err := WriteLayout(root, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "src/lib")
}

func TestWriteLayoutDryRun(t *testing.T) {
	root := t.TempDir()

	result, err := WriteLayout(root, true)
	require.NoError(t, err)
	assert.Len(t, result.Entries, 9)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries, "dry run must not create directories")
}

func TestEmitTemplatesWithoutStylesheet(t *testing.T) {
	root := t.TempDir()

	result, err := EmitTemplates(root, false)
	require.NoError(t, err)

	want := []Entry{
		{"src/lib/utils.ts", ActionCreate},
		{"src/types/index.ts", ActionCreate},
		{"src/lib/env.ts", ActionCreate},
		{"src/components/ui/button.tsx", ActionCreate},
		{"src/app/globals.css", ActionSkip},
		{"tailwind.config.ts", ActionCreate},
	}
	assert.Equal(t, want, result.Entries)

	_, err = os.Stat(filepath.Join(root, "src", "app", "globals.css"))
	assert.True(t, os.IsNotExist(err), "globals.css must not be created when absent")

	for _, tpl := range List() {
		if tpl.Policy == WriteIfExists {
			continue
		}
		assertVerbatim(t, root, tpl)
	}
}

func TestEmitTemplatesOverwritesStylesheet(t *testing.T) {
	root := t.TempDir()
	css := filepath.Join(root, "src", "app", "globals.css")
	writeFile(t, css, "body { color: red; }\n")

	result, err := EmitTemplates(root, false)
	require.NoError(t, err)
	assert.Contains(t, result.Entries, Entry{"src/app/globals.css", ActionOverwrite})

	got := readGenerated(t, root, "src/app/globals.css")
	assert.Contains(t, got, "@tailwind base;")
	assert.Contains(t, got, "prefers-reduced-motion: reduce")
	assert.Contains(t, got, ".dark {")
	assert.NotContains(t, got, "color: red")
}

func TestEmitTemplatesOverwritesExisting(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "tailwind.config.ts"), "export default {};\n")
	writeFile(t, filepath.Join(root, "src", "lib", "utils.ts"), "// stale\n")

	result, err := EmitTemplates(root, false)
	require.NoError(t, err)
	assert.Contains(t, result.Entries, Entry{"tailwind.config.ts", ActionOverwrite})
	assert.Contains(t, result.Entries, Entry{"src/lib/utils.ts", ActionOverwrite})

	for _, tpl := range List() {
		if tpl.Policy == WriteIfExists {
			continue
		}
		assertVerbatim(t, root, tpl)
	}
}

func TestEmitTemplatesDryRun(t *testing.T) {
	root := t.TempDir()

	result, err := EmitTemplates(root, true)
	require.NoError(t, err)
	assert.Len(t, result.Entries, 6)

	entries, err := os.ReadDir(root)
	require.NoError(t, err)
	assert.Empty(t, entries, "dry run must not write files")
}

func TestEmitTemplatesDryRunExistingRootWithoutStylesheet(t *testing.T) {
	root := t.TempDir()

	result, err := EmitTemplates(root, true)
	require.NoError(t, err)
	assert.Equal(t, ActionSkip, actionFor(t, result, "src/app/globals.css"))
}

func TestEmitTemplatesDryRunBeforeGenerator(t *testing.T) {
	root := filepath.Join(t.TempDir(), "demo-app")

	result, err := EmitTemplates(root, true)
	require.NoError(t, err)
	assert.Equal(t, ActionOverwrite, actionFor(t, result, "src/app/globals.css"),
		"the generator always creates the stylesheet, so a planned run overwrites it")
	assert.Equal(t, ActionCreate, actionFor(t, result, "src/lib/utils.ts"))

	_, err = os.Stat(root)
	assert.True(t, os.IsNotExist(err))
}

func actionFor(t *testing.T, result *Result, path string) Action {
	t.Helper()
	for _, e := range result.Entries {
		if e.Path == path {
			return e.Action
		}
	}
	t.Fatalf("no entry for %s", path)
	return ""
}

func TestEmitTemplatesDirectoryInTheWay(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "tailwind.config.ts"), 0o755))

	_, err := EmitTemplates(root, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "is a directory")
}

func TestUtilsContent(t *testing.T) {
	root := t.TempDir()
	_, err := EmitTemplates(root, false)
	require.NoError(t, err)

	want := `import { type ClassValue, clsx } from 'clsx';
import { twMerge } from 'tailwind-merge';

export function cn(...inputs: ClassValue[]) {
  return twMerge(clsx(inputs));
}
`
	assert.Equal(t, want, readGenerated(t, root, "src/lib/utils.ts"))
}

func TestTemplateContents(t *testing.T) {
	tests := []struct {
		path string
		want []string
	}{
		{"src/types/index.ts", []string{
			"export type ApiResponse<T> =",
			"export interface ApiError {",
			"export type ActionResult<T> =",
			"fieldErrors?: Record<string, string[]>",
			"export interface User {",
		}},
		{"src/lib/env.ts", []string{
			"import { z } from 'zod';",
			"envSchema.safeParse(process.env)",
			"throw new Error('Invalid environment variables');",
		}},
		{"src/components/ui/button.tsx", []string{
			"import { cva, type VariantProps } from 'class-variance-authority';",
			"import { Loader2 } from 'lucide-react';",
			"destructive:",
			"ghost:",
			"icon: 'h-10 w-10'",
			"isLoading = false",
			"disabled={disabled || isLoading}",
			"export { buttonVariants };",
		}},
		{"tailwind.config.ts", []string{
			`darkMode: ["class"]`,
			`lg: "var(--radius)"`,
			`"fade-in": "fadeIn 0.5s ease-out forwards"`,
			`"fade-up": "fadeUp 0.5s ease-out forwards"`,
			`"scale-in": "scaleIn 0.3s ease-out forwards"`,
			`plugins: [require("tailwindcss-animate")]`,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			tpl := findTemplate(t, tt.path)
			data, err := tpl.Data()
			require.NoError(t, err)
			for _, s := range tt.want {
				assert.Contains(t, string(data), s)
			}
		})
	}
}

func TestList(t *testing.T) {
	tpls := List()
	require.Len(t, tpls, 6)

	var conditional []string
	for _, tpl := range tpls {
		if tpl.Policy == WriteIfExists {
			conditional = append(conditional, tpl.Path)
		}
		_, err := tpl.Data()
		assert.NoError(t, err, "template %s must be embedded", tpl.Path)
	}
	assert.Equal(t, []string{"src/app/globals.css"}, conditional)

	// List returns a copy.
	tpls[0].Path = "mutated"
	assert.Equal(t, "src/lib/utils.ts", List()[0].Path)
}

func TestPolicyString(t *testing.T) {
	assert.Equal(t, "always", WriteAlways.String())
	assert.Equal(t, "if-exists", WriteIfExists.String())
	assert.Equal(t, "Policy(7)", Policy(7).String())
}

// ─── Test Helpers ──────────────────────────────────────────────────

func findTemplate(t *testing.T, p string) Template {
	t.Helper()
	for _, tpl := range List() {
		if tpl.Path == p {
			return tpl
		}
	}
	t.Fatalf("no template %s", p)
	return Template{}
}

func assertVerbatim(t *testing.T, root string, tpl Template) {
	t.Helper()
	want, err := tpl.Data()
	require.NoError(t, err)
	assert.Equal(t, string(want), readGenerated(t, root, tpl.Path), "%s must be written verbatim", tpl.Path)
}

func readGenerated(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err, "reading %s", rel)
	return string(data)
}

func writeFile(t *testing.T, p, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
}

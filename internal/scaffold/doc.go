// Package scaffold lays out a generated Next.js project. WriteLayout creates
// the conventional src/ directory tree and EmitTemplates writes the embedded
// boilerplate files (utility helpers, shared types, env validation, a sample
// button, the global stylesheet and the Tailwind config) verbatim.
//
// Every template is overwritten unconditionally except src/app/globals.css,
// which is only replaced when the generator has already produced one.
package scaffold

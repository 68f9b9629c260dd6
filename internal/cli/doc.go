// Package cli defines the Cobra command tree for the nextkit CLI. The root
// command creates a project; version, doctor, templates and config are
// registered as subcommands, one per file. Commands only parse flags and
// format output; the work is delegated to the bootstrap, doctor, scaffold
// and config packages.
package cli

// Package runtime runs the external tools nextkit drives (the project
// generator and the package manager). The Runner interface keeps process
// execution swappable so the pipeline can be exercised without spawning
// real processes; ExecRunner is the os/exec implementation.
package runtime

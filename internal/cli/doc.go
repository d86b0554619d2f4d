// Package cli defines the Cobra command tree for the iconport CLI. The root
// command runs the full import pipeline so the tool works as a zero-argument
// script; check and version are the only subcommands. Command implementations
// delegate to internal packages for business logic and only handle flag
// parsing, I/O formatting, and exit status.
package cli

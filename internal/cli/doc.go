// Package cli wires the fasam command tree. The root command runs the
// dashboard; subcommands print version information, manage the config file
// and generate shell completions.
package cli

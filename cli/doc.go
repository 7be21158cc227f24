// Package cli wires the lamdef command-line interface.
//
// It assembles the kong parser, binds the logging and profiling flag
// groups, loads the YAML configuration file through a [kong.Resolver],
// and dispatches to the subcommands in [cli/cmd]. Engine settings
// shared by every subcommand (keyword, indent step, naming rule) are
// parsed here and handed down through the context.
package cli

// Package cmd implements the lamdef subcommands.
//
// Each command is a kong-dispatched struct whose Run method receives
// the context assembled by [cli.Run]. Shared engine settings travel in
// the context as an [Engine] value; the kong context itself is also
// stashed there for commands that inspect parsed flag metadata.
package cmd

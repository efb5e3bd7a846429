// Package cmd implements the CLI application to generate, inspect and
// replay transaction files.
package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Commands lists the subcommands in registration order.
// A main package will call Register on each, and Execute the user-selected one.
var Commands = []subcommands.Command{
	subcommands.HelpCommand(),
	subcommands.FlagsCommand(),
	subcommands.CommandsCommand(),
	&replayCmd{},
	&genCmd{},
	&checkCmd{},
	&summaryCmd{},
	&topicCmd{},
}

// printMarkdown renders markdown to the terminal, falling back to the
// raw text when rendering is not possible.
func printMarkdown(md string) {
	out, err := glamour.RenderWithEnvironmentConfig(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}

// Command pcetool is the companion CLI to pce: it can replay, check
// and summarize transaction files, generate random workloads, and show
// documentation topics.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/clearing/cmd"
	"github.com/google/subcommands"
)

func main() {
	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

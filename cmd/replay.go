package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/clearing"
	"github.com/google/subcommands"
)

type replayCmd struct {
	output string
}

func (*replayCmd) Name() string { return "replay" }
func (*replayCmd) Synopsis() string {
	return "replay a transaction file and print the final account snapshot"
}
func (*replayCmd) Usage() string {
	return `replay [-o <file>] <input.csv>

  Replays the transaction file in order and prints the final state of
  every client account as CSV. Malformed rows and transactions that
  cannot be applied are silently skipped.
`
}

func (c *replayCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.output, "o", "", "Write the snapshot to this file instead of stdout")
}

func (c *replayCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one input file")
		return subcommands.ExitUsageError
	}

	engine, err := clearing.ReplayFile(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	w := os.Stdout
	if c.output != "" {
		out, err := os.Create(c.output)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating output file %q: %v\n", c.output, err)
			return subcommands.ExitFailure
		}
		defer out.Close()
		w = out
	}

	if err := clearing.EncodeSnapshot(w, engine); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/etnz/clearing"
	"github.com/google/subcommands"
)

type genCmd struct {
	clients int
	count   int
	seed    uint64
	output  string
}

func (*genCmd) Name() string { return "gen" }
func (*genCmd) Synopsis() string {
	return "generate a random deposit/withdrawal transaction file"
}
func (*genCmd) Usage() string {
	return `gen [-clients <n>] [-n <count>] [-seed <seed>] [-o <file>]

  Generates a random but reproducible transaction file of deposits and
  withdrawals, useful as replay input for testing and benchmarks.
`
}

func (c *genCmd) SetFlags(f *flag.FlagSet) {
	f.IntVar(&c.clients, "clients", 10, "Number of distinct clients")
	f.IntVar(&c.count, "n", 100, "Number of transactions to generate")
	f.Uint64Var(&c.seed, "seed", 0, "Seed for the random generator")
	f.StringVar(&c.output, "o", "", "Write to this file instead of stdout")
}

func (c *genCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 0 {
		fmt.Fprintln(os.Stderr, "no arguments expected")
		return subcommands.ExitUsageError
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

	if err := clearing.Generate(w, c.clients, c.count, c.seed); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if c.output != "" {
		log.Printf("generated %d transactions for %d clients in %s", c.count, c.clients, c.output)
	}
	return subcommands.ExitSuccess
}

package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/clearing"
	"github.com/google/subcommands"
)

type checkCmd struct{}

func (*checkCmd) Name() string { return "check" }
func (*checkCmd) Synopsis() string {
	return "decode a transaction file and report what a replay would see"
}
func (*checkCmd) Usage() string {
	return `check <input.csv>

  Decodes the transaction file without replaying it and reports the
  number of records per kind and the number of malformed rows, which a
  replay drops without a trace.
`
}

func (*checkCmd) SetFlags(f *flag.FlagSet) {}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one input file")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening transaction file %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	kinds := make(map[clearing.Kind]int)
	clients := make(map[clearing.ClientID]struct{})
	var malformed int

	d := clearing.NewDecoder(in)
loop:
	for {
		tx, err := d.Next()
		switch {
		case err == nil:
			kinds[tx.Kind]++
			clients[tx.Client] = struct{}{}
		case errors.Is(err, io.EOF):
			break loop
		case errors.Is(err, clearing.ErrMalformedRow):
			malformed++
		default:
			fmt.Fprintf(os.Stderr, "Error reading transaction file %q: %v\n", f.Arg(0), err)
			return subcommands.ExitFailure
		}
	}

	for _, kind := range []clearing.Kind{
		clearing.Deposit,
		clearing.Withdrawal,
		clearing.Dispute,
		clearing.Resolve,
		clearing.Chargeback,
	} {
		fmt.Printf("%-12s %d\n", kind, kinds[kind])
	}
	fmt.Printf("%-12s %d\n", "malformed", malformed)
	fmt.Printf("%-12s %d\n", "clients", len(clients))

	return subcommands.ExitSuccess
}

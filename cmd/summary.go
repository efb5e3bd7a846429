package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/etnz/clearing"
	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string { return "summary" }
func (*summaryCmd) Synopsis() string {
	return "replay a transaction file and render a readable snapshot"
}
func (*summaryCmd) Usage() string {
	return `summary <input.csv>

  Replays the transaction file and renders the final account state as a
  table sorted by client id. For the machine-readable snapshot use the
  replay command.
`
}

func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "expected exactly one input file")
		return subcommands.ExitUsageError
	}

	engine, err := clearing.ReplayFile(f.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	accounts := slices.SortedFunc(engine.Accounts(), func(a, b clearing.Account) int {
		return int(a.Client) - int(b.Client)
	})

	var b strings.Builder
	fmt.Fprintf(&b, "# Snapshot of %s\n\n", f.Arg(0))
	fmt.Fprintln(&b, "| Client | Available | Held | Total | Locked |")
	fmt.Fprintln(&b, "|-------:|----------:|-----:|------:|:-------|")

	var locked int
	for _, account := range accounts {
		if account.Locked {
			locked++
		}
		fmt.Fprintf(&b, "| %d | %s | %s | %s | %v |\n",
			account.Client,
			clearing.FormatAmount(account.Available),
			clearing.FormatAmount(account.Held),
			clearing.FormatAmount(account.Total),
			account.Locked,
		)
	}
	fmt.Fprintf(&b, "\n%d clients, %d locked.\n", len(accounts), locked)

	printMarkdown(b.String())
	return subcommands.ExitSuccess
}

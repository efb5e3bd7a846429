// Command pce replays a transaction file and prints the final account
// snapshot as CSV on stdout.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/etnz/clearing"
)

func main() {
	if len(os.Args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <input_file>\n", os.Args[0])
		os.Exit(1)
	}

	if err := run(os.Args[1], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, w io.Writer) error {
	engine, err := clearing.ReplayFile(path)
	if err != nil {
		return err
	}
	return clearing.EncodeSnapshot(w, engine)
}

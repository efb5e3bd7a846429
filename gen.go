package clearing

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"math/rand/v2"
	"strconv"

	"github.com/shopspring/decimal"
)

// Generate writes n random deposit and withdrawal rows for the given
// number of clients to w, in the input CSV format.
//
// Transaction ids are sequential starting at 1, clients are drawn
// uniformly from 1..clients, and amounts are drawn uniformly from
// [0.01, 1000.00] and rounded to cents. The same seed always produces
// the same file.
func Generate(w io.Writer, clients, n int, seed uint64) error {
	if clients < 1 || clients > math.MaxUint16 {
		return fmt.Errorf("clients must be in 1..%d, got %d", math.MaxUint16, clients)
	}
	if n < 0 {
		return fmt.Errorf("transaction count must not be negative, got %d", n)
	}

	rng := rand.New(rand.NewPCG(seed, 0))

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"type", "client", "tx", "amount"}); err != nil {
		return fmt.Errorf("cannot write header: %w", err)
	}

	for tx := 1; tx <= n; tx++ {
		kind := Deposit
		if rng.IntN(2) == 1 {
			kind = Withdrawal
		}
		client := 1 + rng.IntN(clients)
		amount := decimal.NewFromFloat(0.01 + rng.Float64()*(1000.00-0.01)).Round(2)

		row := []string{
			string(kind),
			strconv.Itoa(client),
			strconv.Itoa(tx),
			amount.String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write row %d: %w", tx, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("cannot write workload: %w", err)
	}
	return nil
}

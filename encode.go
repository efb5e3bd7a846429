package clearing

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/shopspring/decimal"
)

// EncodeSnapshot writes the final state of every account known to the
// engine as CSV: a "client,available,held,total,locked" header followed
// by one row per client, in unspecified order.
func EncodeSnapshot(w io.Writer, e *Engine) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{"client", "available", "held", "total", "locked"}); err != nil {
		return fmt.Errorf("cannot write snapshot header: %w", err)
	}

	for account := range e.Accounts() {
		row := []string{
			strconv.FormatUint(uint64(account.Client), 10),
			FormatAmount(account.Available),
			FormatAmount(account.Held),
			FormatAmount(account.Total),
			strconv.FormatBool(account.Locked),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write snapshot row for client %d: %w", account.Client, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("cannot write snapshot: %w", err)
	}
	return nil
}

// FormatAmount renders a balance as a plain decimal string, never in
// exponent notation. The decoder guarantees amounts are finite, which
// NewFromFloat requires.
func FormatAmount(v float64) string {
	return decimal.NewFromFloat(v).String()
}

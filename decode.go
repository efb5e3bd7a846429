package clearing

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrMalformedRow is wrapped by every row-level decoding failure. A row
// failing with it is safe to skip; any other error from Decoder.Next is
// a failure of the stream itself.
var ErrMalformedRow = errors.New("malformed row")

// A Decoder reads transaction records from a CSV stream.
//
// The expected stream starts with a "type,client,tx,amount" header;
// fields are trimmed of surrounding whitespace, and the amount column
// may be empty (or absent) for dispute, resolve and chargeback rows.
type Decoder struct {
	r    *csv.Reader
	cols map[string]int
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	cr := csv.NewReader(r)
	// Rows legitimately vary in width: the amount field is optional.
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true
	return &Decoder{r: cr}
}

// Next returns the next transaction record from the stream.
//
// It returns io.EOF when the stream is exhausted, an error wrapping
// ErrMalformedRow for a row that does not match the schema, and the
// underlying error if the stream itself cannot be read.
func (d *Decoder) Next() (Transaction, error) {
	if d.cols == nil {
		if err := d.readHeader(); err != nil {
			return Transaction{}, err
		}
	}

	row, err := d.r.Read()
	if err != nil {
		var parseErr *csv.ParseError
		if errors.As(err, &parseErr) {
			return Transaction{}, fmt.Errorf("%w: %v", ErrMalformedRow, err)
		}
		return Transaction{}, err
	}
	return d.decode(row)
}

// readHeader maps column names to their position.
func (d *Decoder) readHeader() error {
	header, err := d.r.Read()
	if err != nil {
		return err
	}
	d.cols = make(map[string]int, len(header))
	for i, name := range header {
		d.cols[strings.TrimSpace(name)] = i
	}
	return nil
}

// field returns the trimmed value of the named column, or "" when the
// column is missing from the header or from this particular row.
func (d *Decoder) field(row []string, name string) string {
	i, ok := d.cols[name]
	if !ok || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

func (d *Decoder) decode(row []string) (Transaction, error) {
	kind, err := ParseKind(d.field(row, "type"))
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: %v", ErrMalformedRow, err)
	}

	client, err := strconv.ParseUint(d.field(row, "client"), 10, 16)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: bad client id: %v", ErrMalformedRow, err)
	}

	tx, err := strconv.ParseUint(d.field(row, "tx"), 10, 32)
	if err != nil {
		return Transaction{}, fmt.Errorf("%w: bad tx id: %v", ErrMalformedRow, err)
	}

	var amount float64
	if s := d.field(row, "amount"); s == "" {
		// An empty amount is only valid for the kinds that reference a
		// prior transaction; for them it reads as zero.
		if kind == Deposit || kind == Withdrawal {
			return Transaction{}, fmt.Errorf("%w: missing amount for %s", ErrMalformedRow, kind)
		}
	} else {
		amount, err = strconv.ParseFloat(s, 64)
		if err != nil {
			return Transaction{}, fmt.Errorf("%w: bad amount: %v", ErrMalformedRow, err)
		}
		if math.IsNaN(amount) || math.IsInf(amount, 0) {
			return Transaction{}, fmt.Errorf("%w: amount %q is not a decimal number", ErrMalformedRow, s)
		}
	}

	return Transaction{
		Kind:   kind,
		Client: ClientID(client),
		Tx:     TxID(tx),
		Amount: amount,
	}, nil
}

package clearing

import (
	"errors"
	"io"
	"strings"
	"testing"
)

// decodeAll drains the decoder, returning the decoded records and the
// number of rows dropped as malformed.
func decodeAll(t *testing.T, input string) (records []Transaction, dropped int) {
	t.Helper()
	d := NewDecoder(strings.NewReader(input))
	for {
		tx, err := d.Next()
		switch {
		case err == nil:
			records = append(records, tx)
		case errors.Is(err, io.EOF):
			return records, dropped
		case errors.Is(err, ErrMalformedRow):
			dropped++
		default:
			t.Fatalf("unexpected stream error: %v", err)
		}
	}
}

func TestDecoder(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    []Transaction
		dropped int
	}{
		{
			name:  "deposit and withdrawal",
			input: "type,client,tx,amount\ndeposit,1,1,5.0\nwithdrawal,1,2,2.5\n",
			want: []Transaction{
				deposit(1, 1, 5.0),
				withdrawal(1, 2, 2.5),
			},
		},
		{
			name:  "fields are trimmed",
			input: "type, client, tx, amount\n  deposit , 1 , 1 , 5.0 \n",
			want:  []Transaction{deposit(1, 1, 5.0)},
		},
		{
			name:  "empty amount is zero for a dispute",
			input: "type,client,tx,amount\ndeposit,1,1,5.0\ndispute,1,1,\n",
			want:  []Transaction{deposit(1, 1, 5.0), dispute(1, 1)},
		},
		{
			name:  "absent amount field is zero for a resolve",
			input: "type,client,tx,amount\nresolve,1,1\n",
			want:  []Transaction{resolve(1, 1)},
		},
		{
			name:    "missing amount for a deposit is dropped",
			input:   "type,client,tx,amount\ndeposit,1,1,\ndeposit,1,2,5.0\n",
			want:    []Transaction{deposit(1, 2, 5.0)},
			dropped: 1,
		},
		{
			name:    "unknown kind is dropped",
			input:   "type,client,tx,amount\ntransfer,1,1,5.0\nDeposit,1,2,5.0\n",
			dropped: 2,
		},
		{
			name:    "client id out of range is dropped",
			input:   "type,client,tx,amount\ndeposit,70000,1,5.0\ndeposit,-1,2,5.0\n",
			dropped: 2,
		},
		{
			name:    "tx id out of range is dropped",
			input:   "type,client,tx,amount\ndeposit,1,5000000000,5.0\n",
			dropped: 1,
		},
		{
			name:    "bad amount is dropped",
			input:   "type,client,tx,amount\ndeposit,1,1,five\ndeposit,1,2,NaN\ndeposit,1,3,+Inf\n",
			dropped: 3,
		},
		{
			name:    "short row is dropped",
			input:   "type,client,tx,amount\ndeposit,1\n",
			dropped: 1,
		},
		{
			name:  "negative amount still decodes",
			input: "type,client,tx,amount\ndeposit,1,1,-5.0\n",
			want:  []Transaction{deposit(1, 1, -5.0)},
		},
		{
			name:  "empty file",
			input: "",
		},
		{
			name:  "header only",
			input: "type,client,tx,amount\n",
		},
		{
			name:    "reordered header columns",
			input:   "client,type,amount,tx\n1,deposit,5.0,1\n",
			want:    []Transaction{deposit(1, 1, 5.0)},
			dropped: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			records, dropped := decodeAll(t, tc.input)

			if dropped != tc.dropped {
				t.Errorf("dropped %d rows, want %d", dropped, tc.dropped)
			}
			if len(records) != len(tc.want) {
				t.Fatalf("decoded %d records, want %d", len(records), len(tc.want))
			}
			for i, tx := range records {
				if tx != tc.want[i] {
					t.Errorf("record %d = %+v, want %+v", i, tx, tc.want[i])
				}
			}
		})
	}
}

func TestDecoder_StreamError(t *testing.T) {
	d := NewDecoder(io.MultiReader(
		strings.NewReader("type,client,tx,amount\ndeposit,1,1,5.0\n"),
		errReader{},
	))

	if _, err := d.Next(); err != nil {
		t.Fatalf("first record: %v", err)
	}
	_, err := d.Next()
	if err == nil || errors.Is(err, io.EOF) || errors.Is(err, ErrMalformedRow) {
		t.Fatalf("want a stream error, got %v", err)
	}
}

// errReader is a reader that always fails.
type errReader struct{}

func (errReader) Read([]byte) (int, error) { return 0, errors.New("broken pipe") }

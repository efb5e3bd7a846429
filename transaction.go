package clearing

import "fmt"

// ClientID identifies a client account.
type ClientID uint16

// TxID identifies a deposit or withdrawal. Dispute, resolve and
// chargeback records carry the id of the transaction they reference,
// never an id of their own.
type TxID uint32

// Kind is a typed string for identifying transaction records.
type Kind string

// Kinds of transaction records accepted in an input file.
const (
	Deposit    Kind = "deposit"
	Withdrawal Kind = "withdrawal"
	Dispute    Kind = "dispute"
	Resolve    Kind = "resolve"
	Chargeback Kind = "chargeback"
)

// ParseKind parses a string into a Kind.
func ParseKind(s string) (Kind, error) {
	switch Kind(s) {
	case Deposit, Withdrawal, Dispute, Resolve, Chargeback:
		return Kind(s), nil
	default:
		return "", fmt.Errorf("unknown transaction kind: %q", s)
	}
}

// DisputeState tracks the dispute lifecycle of an accepted transaction.
//
// The lifecycle only ever moves forward:
// Undisputed → Disputed → Resolved or ChargedBack. Resolved and
// ChargedBack are terminal, and Undisputed is never re-entered.
type DisputeState int

const (
	// Undisputed is the state of every transaction when it is accepted.
	Undisputed DisputeState = iota
	// Disputed means the transaction amount is currently held.
	Disputed
	// Resolved means a dispute was settled in favour of the transaction.
	Resolved
	// ChargedBack means a dispute was settled against the transaction
	// and the client account has been locked.
	ChargedBack
)

func (s DisputeState) String() string {
	switch s {
	case Undisputed:
		return "undisputed"
	case Disputed:
		return "disputed"
	case Resolved:
		return "resolved"
	case ChargedBack:
		return "chargedback"
	default:
		return "unknown"
	}
}

// Transaction is one record from an input stream.
//
// Amount is meaningful for deposits and withdrawals only; the other
// kinds reference a prior transaction by Tx and carry no amount.
type Transaction struct {
	Kind   Kind
	Client ClientID
	Tx     TxID
	Amount float64

	// state is attached by the engine once the transaction is accepted.
	state DisputeState
}

// State returns the dispute state of the transaction as last recorded
// by the engine.
func (t Transaction) State() DisputeState { return t.state }

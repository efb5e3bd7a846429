package clearing

import "iter"

// Engine replays transaction records against client accounts.
//
// The engine owns two maps: the accounts of every client it has ever
// seen, and the history of deposits and withdrawals it has accepted.
// Accounts are created lazily on first reference by any record kind and
// are never deleted. Only Apply mutates either map, and Apply is meant
// to be called from a single goroutine, strictly in input order: the
// dispute lifecycle is order dependent.
type Engine struct {
	accounts map[ClientID]*Account
	accepted map[TxID]*Transaction
}

// NewEngine creates an engine with no accounts and no history.
func NewEngine() *Engine {
	return &Engine{
		accounts: make(map[ClientID]*Account),
		accepted: make(map[TxID]*Transaction),
	}
}

// Apply replays one record against the accounts.
//
// A record that cannot be applied is a silent no-op: there is no error,
// no retry, and no deferred queue. The observable contract of a
// rejected record is literally "nothing changed". Rejections are:
// any record for a locked account, a negative amount, a withdrawal
// beyond available funds, and a dispute, resolve or chargeback whose
// referenced transaction is missing, belongs to another client (dispute
// only), or is not in the required lifecycle state.
func (e *Engine) Apply(t Transaction) {
	account, ok := e.accounts[t.Client]
	if !ok {
		account = &Account{Client: t.Client}
		e.accounts[t.Client] = account
	}

	if account.Locked || t.Amount < 0 {
		return
	}

	switch t.Kind {
	case Deposit:
		account.Available += t.Amount
		account.Total += t.Amount
		t.state = Undisputed
		e.accepted[t.Tx] = &t

	case Withdrawal:
		if account.Available < t.Amount {
			return
		}
		account.Available -= t.Amount
		account.Total -= t.Amount
		t.state = Undisputed
		e.accepted[t.Tx] = &t

	case Dispute:
		ref, ok := e.accepted[t.Tx]
		if !ok || ref.Client != t.Client || ref.state != Undisputed {
			return
		}
		// Move the disputed amount on hold. Total is unchanged, and
		// Available may go negative if the funds were already withdrawn.
		account.Held += ref.Amount
		account.Available -= ref.Amount
		ref.state = Disputed

	case Resolve:
		ref, ok := e.accepted[t.Tx]
		if !ok || ref.state != Disputed {
			return
		}
		account.Held -= ref.Amount
		account.Available += ref.Amount
		ref.state = Resolved

	case Chargeback:
		ref, ok := e.accepted[t.Tx]
		if !ok || ref.state != Disputed {
			return
		}
		account.Held -= ref.Amount
		account.Total -= ref.Amount
		account.Locked = true
		ref.state = ChargedBack
	}
}

// Account returns a copy of the account for the given client id.
func (e *Engine) Account(id ClientID) (Account, bool) {
	account, ok := e.accounts[id]
	if !ok {
		return Account{}, false
	}
	return *account, true
}

// Accounts returns an iterator over copies of all known accounts, in
// unspecified order.
func (e *Engine) Accounts() iter.Seq[Account] {
	return func(yield func(Account) bool) {
		for _, account := range e.accounts {
			if !yield(*account) {
				return
			}
		}
	}
}

// State returns the dispute state of an accepted transaction.
func (e *Engine) State(tx TxID) (DisputeState, bool) {
	ref, ok := e.accepted[tx]
	if !ok {
		return Undisputed, false
	}
	return ref.state, true
}

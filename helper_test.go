package clearing

import "testing"

// helpers to build transaction records from consts in tests.

func deposit(client ClientID, tx TxID, amount float64) Transaction {
	return Transaction{Kind: Deposit, Client: client, Tx: tx, Amount: amount}
}

func withdrawal(client ClientID, tx TxID, amount float64) Transaction {
	return Transaction{Kind: Withdrawal, Client: client, Tx: tx, Amount: amount}
}

func dispute(client ClientID, tx TxID) Transaction {
	return Transaction{Kind: Dispute, Client: client, Tx: tx}
}

func resolve(client ClientID, tx TxID) Transaction {
	return Transaction{Kind: Resolve, Client: client, Tx: tx}
}

func chargeback(client ClientID, tx TxID) Transaction {
	return Transaction{Kind: Chargeback, Client: client, Tx: tx}
}

// checkAccount fails the test unless the engine holds exactly the
// wanted account.
func checkAccount(t *testing.T, e *Engine, want Account) {
	t.Helper()
	got, ok := e.Account(want.Client)
	if !ok {
		t.Fatalf("client %d not found", want.Client)
	}
	if got != want {
		t.Errorf("account = %+v, want %+v", got, want)
	}
}

// checkState fails the test unless the accepted transaction is in the
// wanted dispute state.
func checkState(t *testing.T, e *Engine, tx TxID, want DisputeState) {
	t.Helper()
	got, ok := e.State(tx)
	if !ok {
		t.Fatalf("tx %d was never accepted", tx)
	}
	if got != want {
		t.Errorf("tx %d state = %s, want %s", tx, got, want)
	}
}

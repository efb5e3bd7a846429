package clearing

// Account is the balance snapshot of a single client.
//
// Total is always Available plus Held. Available and Held are not
// floored at zero: disputing a withdrawal legitimately drives Available
// negative, and a chargeback on it drives Total negative.
type Account struct {
	Client    ClientID
	Available float64
	Held      float64
	Total     float64
	// Locked is set by a chargeback and is permanent: a locked account
	// rejects every subsequent record, including resolves of disputes
	// opened before the lock.
	Locked bool
}

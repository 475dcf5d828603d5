package mmodel

// Balances maps a currency code to an integer balance in minor units
// (hundredths). A missing key reads as zero.
type Balances map[string]int64

// Clone returns a deep copy so callers can mutate the result without racing
// the store's own copy.
func (b Balances) Clone() Balances {
	out := make(Balances, len(b))
	for k, v := range b {
		out[k] = v
	}

	return out
}

// User is the store's record for one account holder. Created once by
// create_user, never deleted, and read back with a zero balance for any
// currency it has never touched.
type User struct {
	ID       string
	Balances Balances
}

// Package bus is the one-to-few dispatch channel from every Transaction
// Worker to the single Gateway (C5). Delivery is at-least-once only in a
// crash-free process, since it is a plain in-memory channel; ordering per
// worker is preserved, across workers messages interleave arbitrarily.
package bus

import "github.com/gabrielBlankenburg/exbanking-go/internal/mmodel"

// Outcome is the single terminal message every worker publishes exactly
// once.
type Outcome struct {
	Worker string
	Type   mmodel.TxType

	// Finished is true for a successful completion, false for a failure.
	Finished bool
	Reason   mmodel.ErrorKind // set only when !Finished

	// Balances maps each user touched by the operation to its resulting
	// balance. For deposit/withdraw it has one entry; for send, two.
	Balances map[string]int64

	// Users lists everyone the operation touched, in admission order, so
	// the Gateway knows whose slot to advance even on failure (when
	// Balances may be empty).
	Users []string
}

// Bus is a buffered channel of Outcomes. The Gateway is its sole subscriber.
type Bus chan Outcome

// New returns a Bus with room for size in-flight outcomes before a worker's
// Publish would block.
func New(size int) Bus {
	return make(Bus, size)
}

// Publish sends outcome on the bus.
func (b Bus) Publish(outcome Outcome) {
	b <- outcome
}

// Package worker implements the Transaction Worker (C4): a per-transaction
// unit of execution, spawned by the Gateway, that applies one or two balance
// mutations and publishes exactly one terminal outcome on the completion bus.
package worker

import (
	"github.com/google/uuid"

	"github.com/gabrielBlankenburg/exbanking-go/internal/bus"
	"github.com/gabrielBlankenburg/exbanking-go/internal/mmodel"
	"github.com/gabrielBlankenburg/exbanking-go/internal/store/txlog"
	"github.com/gabrielBlankenburg/exbanking-go/internal/store/userstore"
	"github.com/gabrielBlankenburg/exbanking-go/pkg/mlog"
)

// Request is the single message the Gateway hands a worker.
type Request struct {
	Type     mmodel.TxType
	Sender   string
	Receiver string // only for TxSend
	Amount   int64
	Currency string
	TxID     uuid.UUID
}

// Deps are the stores a worker reads and writes; shared across every
// worker, safe for concurrent use by construction (see C2/C3).
type Deps struct {
	Users *userstore.Store
	Log   *txlog.Log
}

// Run executes req to completion and publishes exactly one Outcome on b. It
// is meant to be called as `go Run(...)` by the Gateway; handle is the
// worker's own identifier, used by the Gateway to find the waiter again.
func Run(handle string, req Request, deps Deps, b bus.Bus, logger mlog.Logger) {
	switch req.Type {
	case mmodel.TxDeposit:
		runDeposit(handle, req, deps, b, logger)
	case mmodel.TxWithdraw:
		runWithdraw(handle, req, deps, b, logger)
	case mmodel.TxSend:
		runSend(handle, req, deps, b, logger)
	default:
		logger.Errorf("worker %s: unknown transaction type %q", handle, req.Type)
		b.Publish(bus.Outcome{Worker: handle, Type: req.Type, Finished: false, Reason: mmodel.ErrUnexpected, Users: []string{req.Sender}})
	}
}

func runDeposit(handle string, req Request, deps Deps, b bus.Bus, logger mlog.Logger) {
	tx := &mmodel.Transaction{ID: req.TxID, Type: mmodel.TxDeposit, Status: mmodel.TxStatus{Kind: mmodel.TxInProgress}, Worker: handle}
	deps.Log.Create(tx)

	newBalance, err := applyOperation(deps, tx.ID, req.Sender, req.Currency, req.Amount, mmodel.DirectionCredit)
	if err != nil {
		revertAndFail(deps, b, logger, handle, mmodel.TxDeposit, tx.ID, []string{req.Sender}, mmodel.ErrUnexpected)
		return
	}

	finish(deps, b, handle, mmodel.TxDeposit, tx.ID, map[string]int64{req.Sender: newBalance}, []string{req.Sender})
}

func runWithdraw(handle string, req Request, deps Deps, b bus.Bus, logger mlog.Logger) {
	balance, ok := deps.Users.Balance(req.Sender, req.Currency)
	if !ok {
		logger.Warnf("worker %s: sender %s vanished before withdraw ran", handle, req.Sender)
		b.Publish(bus.Outcome{Worker: handle, Type: mmodel.TxWithdraw, Finished: false, Reason: mmodel.ErrUnexpected, Users: []string{req.Sender}})

		return
	}

	if balance < req.Amount {
		b.Publish(bus.Outcome{Worker: handle, Type: mmodel.TxWithdraw, Finished: false, Reason: mmodel.ErrNotEnoughFunds, Users: []string{req.Sender}})
		return
	}

	tx := &mmodel.Transaction{ID: req.TxID, Type: mmodel.TxWithdraw, Status: mmodel.TxStatus{Kind: mmodel.TxInProgress}, Worker: handle}
	deps.Log.Create(tx)

	newBalance, err := applyOperation(deps, tx.ID, req.Sender, req.Currency, -req.Amount, mmodel.DirectionDebit)
	if err != nil {
		revertAndFail(deps, b, logger, handle, mmodel.TxWithdraw, tx.ID, []string{req.Sender}, mmodel.ErrUnexpected)
		return
	}

	finish(deps, b, handle, mmodel.TxWithdraw, tx.ID, map[string]int64{req.Sender: newBalance}, []string{req.Sender})
}

func runSend(handle string, req Request, deps Deps, b bus.Bus, logger mlog.Logger) {
	users := []string{req.Sender, req.Receiver}

	senderBalance, senderOK := deps.Users.Balance(req.Sender, req.Currency)
	_, receiverOK := deps.Users.Balance(req.Receiver, req.Currency)

	if !senderOK || !receiverOK {
		// Defensive: the Gateway already verified both exist at admission.
		logger.Warnf("worker %s: sender or receiver vanished before send ran", handle)
		b.Publish(bus.Outcome{Worker: handle, Type: mmodel.TxSend, Finished: false, Reason: mmodel.ErrUserDoesNotExist, Users: users})

		return
	}

	if senderBalance < req.Amount {
		b.Publish(bus.Outcome{Worker: handle, Type: mmodel.TxSend, Finished: false, Reason: mmodel.ErrNotEnoughFunds, Users: users})
		return
	}

	tx := &mmodel.Transaction{ID: req.TxID, Type: mmodel.TxSend, Status: mmodel.TxStatus{Kind: mmodel.TxInProgress}, Worker: handle}
	deps.Log.Create(tx)

	senderNew, err := applyOperation(deps, tx.ID, req.Sender, req.Currency, -req.Amount, mmodel.DirectionDebit)
	if err != nil {
		revertAndFail(deps, b, logger, handle, mmodel.TxSend, tx.ID, users, mmodel.ErrUnexpected)
		return
	}

	receiverNew, err := applyOperation(deps, tx.ID, req.Receiver, req.Currency, req.Amount, mmodel.DirectionCredit)
	if err != nil {
		revertAndFail(deps, b, logger, handle, mmodel.TxSend, tx.ID, users, mmodel.ErrUnexpected)
		return
	}

	finish(deps, b, handle, mmodel.TxSend, tx.ID, map[string]int64{req.Sender: senderNew, req.Receiver: receiverNew}, users)
}

// applyOperation computes the new balance for username in currency after
// signedAmount (positive for credit, negative for debit), writes it through
// the user store, and appends the resulting Operation to the transaction's
// log only once the store write has actually succeeded.
func applyOperation(deps Deps, txID uuid.UUID, username, currency string, signedAmount int64, direction mmodel.OperationDirection) (int64, error) {
	balances, ok := deps.Users.Get(username)
	if !ok {
		return 0, errUserVanished(username)
	}

	newBalances := balances.Clone()
	newBalances[currency] += signedAmount

	if !deps.Users.Update(username, newBalances) {
		return 0, errUserVanished(username)
	}

	amount := signedAmount
	if amount < 0 {
		amount = -amount
	}

	deps.Log.Update(txID, txlog.Patch{AppendOp: &mmodel.Operation{
		Direction:   direction,
		Username:    username,
		Currency:    currency,
		Amount:      amount,
		PostBalance: newBalances[currency],
		Status:      mmodel.OperationFinished,
	}})

	return newBalances[currency], nil
}

// revertAndFail undoes every already-finished operation of tx (inverse
// signed amount applied to the live balances, marked reverted), sets the
// transaction to failed_reverted, and publishes the failure.
func revertAndFail(deps Deps, b bus.Bus, logger mlog.Logger, handle string, txType mmodel.TxType, txID uuid.UUID, users []string, reason mmodel.ErrorKind) {
	tx, ok := deps.Log.Get(txID)
	if ok {
		for i, op := range tx.Operations {
			if op.Status != mmodel.OperationFinished {
				continue
			}

			inverse := op.Amount
			if op.Direction == mmodel.DirectionCredit {
				inverse = -inverse
			}

			if balances, ok := deps.Users.Get(op.Username); ok {
				reverted := balances.Clone()
				reverted[op.Currency] += inverse
				deps.Users.Update(op.Username, reverted)
			}

			deps.Log.MarkOperationReverted(txID, i)
		}
	}

	logger.Errorf("worker %s: %s failed mid-flight, reverted %d operation(s)", handle, txType, len(tx.Operations))

	status := mmodel.TxStatus{Kind: mmodel.TxFailedReverted, Reason: reason}
	deps.Log.Update(txID, txlog.Patch{Status: &status})

	b.Publish(bus.Outcome{Worker: handle, Type: txType, Finished: false, Reason: reason, Users: users})
}

func finish(deps Deps, b bus.Bus, handle string, txType mmodel.TxType, txID uuid.UUID, balances map[string]int64, users []string) {
	status := mmodel.TxStatus{Kind: mmodel.TxFinished}
	deps.Log.Update(txID, txlog.Patch{Status: &status})

	b.Publish(bus.Outcome{Worker: handle, Type: txType, Finished: true, Balances: balances, Users: users})
}

type vanishedError struct{ username string }

func (e *vanishedError) Error() string { return "user " + e.username + " vanished mid-transaction" }

func errUserVanished(username string) error { return &vanishedError{username: username} }

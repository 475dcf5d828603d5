package worker

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gabrielBlankenburg/exbanking-go/internal/bus"
	"github.com/gabrielBlankenburg/exbanking-go/internal/mmodel"
	"github.com/gabrielBlankenburg/exbanking-go/internal/store/txlog"
	"github.com/gabrielBlankenburg/exbanking-go/internal/store/userstore"
	"github.com/gabrielBlankenburg/exbanking-go/pkg/mlog"
)

func newDeps() Deps {
	return Deps{Users: userstore.New(), Log: txlog.New()}
}

func TestRunDepositCreditsAndPublishes(t *testing.T) {
	t.Parallel()

	deps := newDeps()
	deps.Users.Create("alice")

	b := bus.New(1)
	req := Request{Type: mmodel.TxDeposit, Sender: "alice", Amount: 1000, Currency: "usd", TxID: uuid.New()}

	Run("h1", req, deps, b, mlog.NoneLogger{})

	outcome := <-b
	assert.True(t, outcome.Finished)
	assert.Equal(t, int64(1000), outcome.Balances["alice"])

	balance, _ := deps.Users.Balance("alice", "usd")
	assert.Equal(t, int64(1000), balance)

	tx, ok := deps.Log.Get(req.TxID)
	require.True(t, ok)
	assert.Equal(t, mmodel.TxFinished, tx.Status.Kind)
	assert.Len(t, tx.Operations, 1)
	assert.Equal(t, mmodel.DirectionCredit, tx.Operations[0].Direction)
}

func TestRunWithdrawInsufficientFundsDoesNotCreateTx(t *testing.T) {
	t.Parallel()

	deps := newDeps()
	deps.Users.Create("alice")

	b := bus.New(1)
	txID := uuid.New()
	req := Request{Type: mmodel.TxWithdraw, Sender: "alice", Amount: 500, Currency: "usd", TxID: txID}

	Run("h1", req, deps, b, mlog.NoneLogger{})

	outcome := <-b
	assert.False(t, outcome.Finished)
	assert.Equal(t, mmodel.ErrNotEnoughFunds, outcome.Reason)

	_, ok := deps.Log.Get(txID)
	assert.False(t, ok)

	balance, _ := deps.Users.Balance("alice", "usd")
	assert.Equal(t, int64(0), balance)
}

func TestRunWithdrawDebits(t *testing.T) {
	t.Parallel()

	deps := newDeps()
	deps.Users.Create("alice")
	deps.Users.Update("alice", map[string]int64{"usd": 1000})

	b := bus.New(1)
	req := Request{Type: mmodel.TxWithdraw, Sender: "alice", Amount: 400, Currency: "usd", TxID: uuid.New()}

	Run("h1", req, deps, b, mlog.NoneLogger{})

	outcome := <-b
	assert.True(t, outcome.Finished)
	assert.Equal(t, int64(600), outcome.Balances["alice"])
}

func TestRunSendMovesFundsBetweenUsers(t *testing.T) {
	t.Parallel()

	deps := newDeps()
	deps.Users.Create("bob")
	deps.Users.Create("carol")
	deps.Users.Update("bob", map[string]int64{"usd": 1000})

	b := bus.New(1)
	req := Request{Type: mmodel.TxSend, Sender: "bob", Receiver: "carol", Amount: 1000, Currency: "usd", TxID: uuid.New()}

	Run("h1", req, deps, b, mlog.NoneLogger{})

	outcome := <-b
	assert.True(t, outcome.Finished)
	assert.Equal(t, int64(0), outcome.Balances["bob"])
	assert.Equal(t, int64(1000), outcome.Balances["carol"])

	tx, ok := deps.Log.Get(req.TxID)
	require.True(t, ok)
	assert.Len(t, tx.Operations, 2)
	assert.Equal(t, mmodel.DirectionDebit, tx.Operations[0].Direction)
	assert.Equal(t, mmodel.DirectionCredit, tx.Operations[1].Direction)
}

func TestRunSendInsufficientFundsDoesNotMutate(t *testing.T) {
	t.Parallel()

	deps := newDeps()
	deps.Users.Create("bob")
	deps.Users.Create("carol")

	b := bus.New(1)
	req := Request{Type: mmodel.TxSend, Sender: "bob", Receiver: "carol", Amount: 100, Currency: "usd", TxID: uuid.New()}

	Run("h1", req, deps, b, mlog.NoneLogger{})

	outcome := <-b
	assert.False(t, outcome.Finished)
	assert.Equal(t, mmodel.ErrNotEnoughFunds, outcome.Reason)

	bobBalance, _ := deps.Users.Balance("bob", "usd")
	carolBalance, _ := deps.Users.Balance("carol", "usd")
	assert.Equal(t, int64(0), bobBalance)
	assert.Equal(t, int64(0), carolBalance)
}

func TestRevertAndFailUndoesFinishedOperations(t *testing.T) {
	t.Parallel()

	deps := newDeps()
	deps.Users.Create("bob")
	deps.Users.Update("bob", map[string]int64{"usd": 900})

	txID := uuid.New()
	deps.Log.Create(&mmodel.Transaction{ID: txID, Type: mmodel.TxSend, Status: mmodel.TxStatus{Kind: mmodel.TxInProgress}})
	deps.Log.Update(txID, txlog.Patch{AppendOp: &mmodel.Operation{
		Direction: mmodel.DirectionDebit, Username: "bob", Currency: "usd", Amount: 100, PostBalance: 900, Status: mmodel.OperationFinished,
	}})

	b := bus.New(1)
	revertAndFail(deps, b, mlog.NoneLogger{}, "h1", mmodel.TxSend, txID, []string{"bob", "carol"}, mmodel.ErrUnexpected)

	outcome := <-b
	assert.False(t, outcome.Finished)
	assert.Equal(t, mmodel.ErrUnexpected, outcome.Reason)

	balance, _ := deps.Users.Balance("bob", "usd")
	assert.Equal(t, int64(1000), balance, "the debit of 100 should have been reverted back onto bob's balance")

	tx, _ := deps.Log.Get(txID)
	assert.Equal(t, mmodel.TxFailedReverted, tx.Status.Kind)
	assert.Equal(t, mmodel.OperationReverted, tx.Operations[0].Status)
}

package mmodel

import "github.com/google/uuid"

// TxType is the kind of transaction a worker executes.
type TxType string

const (
	TxDeposit  TxType = "deposit"
	TxWithdraw TxType = "withdraw"
	TxSend     TxType = "send"
)

// TxStatusKind is the terminal or in-progress state of a Transaction.
type TxStatusKind string

const (
	TxInProgress     TxStatusKind = "in_progress"
	TxFinished       TxStatusKind = "finished"
	TxFailed         TxStatusKind = "failed"
	TxFailedReverted TxStatusKind = "failed_reverted"
)

// TxStatus carries the status kind plus, for the two failure kinds, the
// reason it failed.
type TxStatus struct {
	Kind   TxStatusKind
	Reason ErrorKind
}

// OperationDirection is which way an Operation moves money.
type OperationDirection string

const (
	DirectionCredit OperationDirection = "credit"
	DirectionDebit  OperationDirection = "debit"
)

// OperationStatus marks whether an applied Operation is still in effect or
// was undone by a revert.
type OperationStatus string

const (
	OperationFinished OperationStatus = "finished"
	OperationReverted OperationStatus = "reverted"
)

// Operation is one balance mutation leg. A deposit or withdraw has exactly
// one; a send has two (debit sender, credit receiver), appended only after
// each mutation succeeds.
type Operation struct {
	Direction   OperationDirection
	Username    string
	Currency    string
	Amount      int64
	PostBalance int64
	Status      OperationStatus
}

// Transaction is the atomic unit of work behind a single client request.
type Transaction struct {
	ID         uuid.UUID
	Type       TxType
	Operations []Operation
	Status     TxStatus
	Worker     string
}

// Package txlog is the keyed transaction-id -> Transaction container (C3).
// It is independent of the user store; inconsistency between the two on a
// crash is possible and tolerated, per spec.
package txlog

import (
	"sync"

	"github.com/google/uuid"

	"github.com/gabrielBlankenburg/exbanking-go/internal/mmodel"
)

// Log is the in-memory transaction table.
type Log struct {
	mu  sync.Mutex
	txs map[uuid.UUID]*mmodel.Transaction
}

// New returns an empty Log.
func New() *Log {
	return &Log{txs: make(map[uuid.UUID]*mmodel.Transaction)}
}

// Create inserts tx. It returns false if tx.ID is already present.
func (l *Log) Create(tx *mmodel.Transaction) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.txs[tx.ID]; ok {
		return false
	}

	cp := *tx
	cp.Operations = append([]mmodel.Operation(nil), tx.Operations...)
	l.txs[tx.ID] = &cp

	return true
}

// Get returns a copy of the transaction for id.
func (l *Log) Get(id uuid.UUID) (mmodel.Transaction, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx, ok := l.txs[id]
	if !ok {
		return mmodel.Transaction{}, false
	}

	cp := *tx
	cp.Operations = append([]mmodel.Operation(nil), tx.Operations...)

	return cp, true
}

// Patch carries the only fields Update may change. A nil field is left
// untouched.
type Patch struct {
	Status   *mmodel.TxStatus
	AppendOp *mmodel.Operation
}

// Update applies patch to the transaction id. It returns false if the
// transaction does not exist.
func (l *Log) Update(id uuid.UUID, patch Patch) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx, ok := l.txs[id]
	if !ok {
		return false
	}

	if patch.AppendOp != nil {
		tx.Operations = append(tx.Operations, *patch.AppendOp)
	}

	if patch.Status != nil {
		tx.Status = *patch.Status
	}

	return true
}

// MarkOperationReverted flips the operation at index idx to reverted status.
// It returns false if the transaction or index does not exist.
func (l *Log) MarkOperationReverted(id uuid.UUID, idx int) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	tx, ok := l.txs[id]
	if !ok || idx < 0 || idx >= len(tx.Operations) {
		return false
	}

	tx.Operations[idx].Status = mmodel.OperationReverted

	return true
}

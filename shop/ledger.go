package shop

import (
	"context"
	"sync"

	"ecofinds/model"
)

// TransactionAPI is the slice of the REST client the ledger needs.
type TransactionAPI interface {
	Transactions(ctx context.Context) ([]model.Transaction, error)
}

// TransactionLedger is a read-only projection of the user's completed
// purchases and sales. Refresh replaces the held contents wholesale; the
// server is the sole source of truth and there is no incremental merge.
type TransactionLedger struct {
	api TransactionAPI

	mu  sync.RWMutex
	txs []model.Transaction
}

func NewTransactionLedger(api TransactionAPI) *TransactionLedger {
	return &TransactionLedger{api: api}
}

func (l *TransactionLedger) Refresh(ctx context.Context) ([]model.Transaction, error) {
	txs, err := l.api.Transactions(ctx)
	if err != nil {
		return nil, err
	}
	l.mu.Lock()
	l.txs = txs
	l.mu.Unlock()
	return l.Transactions(), nil
}

// Transactions returns the last refreshed snapshot.
func (l *TransactionLedger) Transactions() []model.Transaction {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]model.Transaction, len(l.txs))
	copy(out, l.txs)
	return out
}

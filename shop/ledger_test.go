package shop

import (
	"context"
	"errors"
	"testing"

	"ecofinds/model"
)

type fakeTransactionAPI struct {
	txs []model.Transaction
	err error
}

func (f *fakeTransactionAPI) Transactions(ctx context.Context) ([]model.Transaction, error) {
	return f.txs, f.err
}

func TestTransactionLedger_Refresh_replacesWholesale(t *testing.T) {
	t.Parallel()

	api := &fakeTransactionAPI{txs: []model.Transaction{{ID: "t1"}, {ID: "t2"}}}
	ledger := NewTransactionLedger(api)

	if _, err := ledger.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := ledger.Transactions(); len(got) != 2 {
		t.Fatalf("got %d transactions, want 2", len(got))
	}

	// The server dropped t2; the ledger must not keep it around.
	api.txs = []model.Transaction{{ID: "t1"}}
	if _, err := ledger.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := ledger.Transactions()
	if len(got) != 1 || got[0].ID != "t1" {
		t.Errorf("Transactions = %v, want only t1", got)
	}
}

func TestTransactionLedger_Refresh_errorKeepsSnapshot(t *testing.T) {
	t.Parallel()

	api := &fakeTransactionAPI{txs: []model.Transaction{{ID: "t1"}}}
	ledger := NewTransactionLedger(api)
	if _, err := ledger.Refresh(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	api.err = errors.New("boom")
	if _, err := ledger.Refresh(context.Background()); err == nil {
		t.Fatal("expected error")
	}
	if got := ledger.Transactions(); len(got) != 1 {
		t.Errorf("got %d transactions after failed refresh, want 1", len(got))
	}
}

package usecase

import (
	"testing"

	"ecofinds/dao"
	"ecofinds/model"
)

type fakeTransactionLister struct {
	records []dao.TransactionRecord
}

func (r *fakeTransactionLister) ListByUser(userID string) ([]dao.TransactionRecord, error) {
	return r.records, nil
}

func TestTransactionUsecase_List_annotatesDirection(t *testing.T) {
	t.Parallel()

	lister := &fakeTransactionLister{records: []dao.TransactionRecord{
		{
			Transaction: model.Transaction{ID: "t1", BuyerID: "me", SellerID: "u2"},
			BuyerName:   "me-name",
			SellerName:  "carol",
		},
		{
			Transaction: model.Transaction{ID: "t2", BuyerID: "u3", SellerID: "me"},
			BuyerName:   "dave",
			SellerName:  "me-name",
		},
	}}
	u := NewTransactionUsecase(lister)

	txs, err := u.List("me")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("got %d transactions, want 2", len(txs))
	}

	if txs[0].Type != model.TransactionPurchase || txs[0].OtherUser != "carol" {
		t.Errorf("txs[0] = %+v, want purchase from carol", txs[0])
	}
	if txs[1].Type != model.TransactionSale || txs[1].OtherUser != "dave" {
		t.Errorf("txs[1] = %+v, want sale to dave", txs[1])
	}
}

package usecase

import (
	"ecofinds/dao"
	"ecofinds/model"
)

type TransactionLister interface {
	ListByUser(userID string) ([]dao.TransactionRecord, error)
}

type TransactionUsecase struct {
	repo TransactionLister
}

func NewTransactionUsecase(repo TransactionLister) *TransactionUsecase {
	return &TransactionUsecase{repo: repo}
}

// List returns the user's transaction history, newest first, with the
// direction and counterparty annotated relative to the requester.
func (u *TransactionUsecase) List(userID string) ([]model.Transaction, error) {
	records, err := u.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	txs := make([]model.Transaction, 0, len(records))
	for _, rec := range records {
		t := rec.Transaction
		if rec.BuyerID == userID {
			t.Type = model.TransactionPurchase
			t.OtherUser = rec.SellerName
		} else {
			t.Type = model.TransactionSale
			t.OtherUser = rec.BuyerName
		}
		txs = append(txs, t)
	}
	return txs, nil
}

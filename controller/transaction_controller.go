package controller

import (
	"net/http"

	"ecofinds/model"
	"ecofinds/usecase"
)

type TransactionController struct {
	transactions *usecase.TransactionUsecase
	auth         *Authenticator
}

func NewTransactionController(transactions *usecase.TransactionUsecase, auth *Authenticator) *TransactionController {
	return &TransactionController{transactions: transactions, auth: auth}
}

// HandleTransactions serves GET /transactions.
func (c *TransactionController) HandleTransactions(w http.ResponseWriter, r *http.Request) {
	setCORS(w)
	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	userID := c.auth.UserID(r)
	if userID == "" {
		writeError(w, http.StatusUnauthorized, "Invalid token")
		return
	}

	txs, err := c.transactions.List(userID)
	if err != nil {
		writeUsecaseError(w, err)
		return
	}
	if txs == nil {
		txs = []model.Transaction{}
	}
	writeJSON(w, http.StatusOK, txs)
}

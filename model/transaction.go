package model

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TransactionPurchase = "purchase"
	TransactionSale     = "sale"
)

// Transaction is a durable purchase/sale record, read-only on the client.
// Type and OtherUser are relative to the requesting user.
type Transaction struct {
	ID              string          `json:"id"`
	ItemID          string          `json:"item_id"`
	ItemTitle       string          `json:"item_title,omitempty"`
	BuyerID         string          `json:"buyer_id"`
	SellerID        string          `json:"seller_id"`
	Amount          decimal.Decimal `json:"amount"`
	EcoPointsEarned int             `json:"eco_points_earned"`
	Status          string          `json:"status"`
	Type            string          `json:"type,omitempty"`
	OtherUser       string          `json:"other_user,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
}

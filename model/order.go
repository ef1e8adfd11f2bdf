package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the client-side confirmation artifact of one checkout. It is
// immutable once built; the durable record is the server's transaction set.
type Order struct {
	Items           []Item          `json:"items"`
	Total           decimal.Decimal `json:"total"`
	EcoPointsEarned int             `json:"eco_points_earned"`
	CreatedAt       time.Time       `json:"created_at"`
}

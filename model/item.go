package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item statuses are a two-state machine: an item is listed as available
// and flips to sold exactly once, on the server, when a purchase succeeds.
const (
	CategoryElectronics = "Electronics"
	CategoryClothing    = "Clothing"
	CategoryBooks       = "Books"
	CategoryHomeGarden  = "Home & Garden"
	CategorySports      = "Sports"
	CategoryToys        = "Toys"
	CategoryOther       = "Other"
)

const (
	ConditionExcellent = "Excellent"
	ConditionGood      = "Good"
	ConditionFair      = "Fair"
	ConditionPoor      = "Poor"
)

// Categories lists the fixed category set, in display order.
var Categories = []string{
	CategoryElectronics,
	CategoryClothing,
	CategoryBooks,
	CategoryHomeGarden,
	CategorySports,
	CategoryToys,
	CategoryOther,
}

// Conditions lists the fixed condition set, best first.
var Conditions = []string{
	ConditionExcellent,
	ConditionGood,
	ConditionFair,
	ConditionPoor,
}

type Item struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	Category        string          `json:"category"`
	Condition       string          `json:"condition"`
	Images          []string        `json:"images,omitempty"`
	SellerID        string          `json:"seller_id"`
	SellerName      string          `json:"seller_name,omitempty"`
	EcoPointsReward int             `json:"eco_points_reward"`
	IsAvailable     bool            `json:"is_available"`
	CreatedAt       time.Time       `json:"created_at"`
}

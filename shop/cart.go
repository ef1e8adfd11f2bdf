package shop

import (
	"sync"

	"github.com/shopspring/decimal"

	"ecofinds/model"
)

// Cart is the in-memory set of items the user intends to buy. At most one
// entry per item id; insertion order is kept for display only. Lifetime is
// the session, nothing is persisted.
type Cart struct {
	mu      sync.Mutex
	entries []model.Item
}

func NewCart() *Cart {
	return &Cart{}
}

// Add appends the item unless an entry with the same id already exists.
// Returns whether the item was added.
func (c *Cart) Add(item model.Item) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.entries {
		if e.ID == item.ID {
			return false
		}
	}
	c.entries = append(c.entries, item)
	return true
}

// Remove deletes the entry with the given id; removing an absent id is a
// no-op.
func (c *Cart) Remove(itemID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, e := range c.entries {
		if e.ID == itemID {
			c.entries = append(c.entries[:i], c.entries[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
}

// Items returns a snapshot in insertion order.
func (c *Cart) Items() []model.Item {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.Item, len(c.entries))
	copy(out, c.entries)
	return out
}

// Total sums the entry prices, computed fresh on every call. Rounding is
// left to the presentation layer.
func (c *Cart) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := decimal.Zero
	for _, e := range c.entries {
		total = total.Add(e.Price)
	}
	return total
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

package model

import "time"

// Message belongs to exactly one (item, buyer, seller) thread and is
// append-only. Thread order is (Timestamp asc, ID asc); the ID tie-break
// keeps the order total even when two messages share a timestamp.
type Message struct {
	ID         string    `json:"id"`
	ItemID     string    `json:"item_id"`
	SenderID   string    `json:"sender_id"`
	ReceiverID string    `json:"receiver_id"`
	Content    string    `json:"content"`
	SenderName string    `json:"sender_name,omitempty"`
	Timestamp  time.Time `json:"timestamp"`
}

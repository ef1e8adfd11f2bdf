package shop

import (
	"context"
	"sort"
	"strings"

	"ecofinds/client"
	"ecofinds/model"
)

// MessageAPI is the slice of the REST client the thread needs.
type MessageAPI interface {
	Messages(ctx context.Context, itemID string) ([]model.Message, error)
	SendMessage(ctx context.Context, itemID, receiverID, content string) (*model.Message, error)
}

// MessageThread is the per-item conversation between buyer and seller.
// Thread state is always re-fetched with Load, never derived from a cache;
// after a successful Send the caller re-loads.
type MessageThread struct {
	api MessageAPI
}

func NewMessageThread(api MessageAPI) *MessageThread {
	return &MessageThread{api: api}
}

// Load returns all messages for the item visible to the current user,
// ordered by timestamp ascending with ties broken by id, so the order is
// total even when two messages share a timestamp.
func (t *MessageThread) Load(ctx context.Context, itemID string) ([]model.Message, error) {
	msgs, err := t.api.Messages(ctx, itemID)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].Timestamp.Equal(msgs[j].Timestamp) {
			return msgs[i].ID < msgs[j].ID
		}
		return msgs[i].Timestamp.Before(msgs[j].Timestamp)
	})
	return msgs, nil
}

// Send appends a message to the item's thread. Blank content (after
// trimming) fails with ErrEmptyContent before any network call.
func (t *MessageThread) Send(ctx context.Context, itemID, receiverID, content string) (*model.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, client.ErrEmptyContent
	}
	return t.api.SendMessage(ctx, itemID, receiverID, content)
}

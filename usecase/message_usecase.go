package usecase

import (
	"strings"
	"time"

	"ecofinds/model"
)

type MessageRepository interface {
	Insert(msg *model.Message) error
	ListByItemForUser(itemID, userID string) ([]model.Message, error)
}

type MessageUsecase struct {
	repo MessageRepository
}

func NewMessageUsecase(repo MessageRepository) *MessageUsecase {
	return &MessageUsecase{repo: repo}
}

// Send appends a message to the item's thread. Content must be non-blank
// after trimming.
func (u *MessageUsecase) Send(itemID, senderID, receiverID, content string) (*model.Message, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyContent
	}

	msg := &model.Message{
		ID:         newID(),
		ItemID:     itemID,
		SenderID:   senderID,
		ReceiverID: receiverID,
		Content:    content,
		Timestamp:  time.Now(),
	}
	if err := u.repo.Insert(msg); err != nil {
		return nil, err
	}
	return msg, nil
}

// List returns the item's messages visible to the requester, both
// directions of the conversation, in thread order.
func (u *MessageUsecase) List(itemID, requesterID string) ([]model.Message, error) {
	return u.repo.ListByItemForUser(itemID, requesterID)
}

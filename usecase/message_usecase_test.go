package usecase

import (
	"errors"
	"testing"

	"ecofinds/model"
)

type fakeMessageRepo struct {
	inserted []*model.Message
	msgs     []model.Message
}

func (r *fakeMessageRepo) Insert(msg *model.Message) error {
	r.inserted = append(r.inserted, msg)
	return nil
}

func (r *fakeMessageRepo) ListByItemForUser(itemID, userID string) ([]model.Message, error) {
	return r.msgs, nil
}

func TestMessageUsecase_Send(t *testing.T) {
	t.Parallel()

	repo := &fakeMessageRepo{}
	u := NewMessageUsecase(repo)

	msg, err := u.Send("item1", "buyer", "seller", "still available?")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.ID == "" {
		t.Error("id not assigned")
	}
	if msg.Timestamp.IsZero() {
		t.Error("timestamp not assigned")
	}
	if len(repo.inserted) != 1 {
		t.Errorf("inserted %d messages, want 1", len(repo.inserted))
	}
}

func TestMessageUsecase_Send_blankContentRejected(t *testing.T) {
	t.Parallel()

	repo := &fakeMessageRepo{}
	u := NewMessageUsecase(repo)

	for _, content := range []string{"", "   ", "\t\n"} {
		if _, err := u.Send("item1", "buyer", "seller", content); !errors.Is(err, ErrEmptyContent) {
			t.Errorf("content %q: error = %v, want ErrEmptyContent", content, err)
		}
	}
	if len(repo.inserted) != 0 {
		t.Errorf("inserted %d messages, want 0", len(repo.inserted))
	}
}

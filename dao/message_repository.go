package dao

import (
	"database/sql"

	"ecofinds/model"
)

type MessageRepository struct {
	db *sql.DB
}

func NewMessageRepository(db *sql.DB) *MessageRepository {
	return &MessageRepository{db: db}
}

func (r *MessageRepository) Insert(msg *model.Message) error {
	query := `
		INSERT INTO messages (id, item_id, sender_id, receiver_id, content, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query, msg.ID, msg.ItemID, msg.SenderID, msg.ReceiverID,
		msg.Content, msg.Timestamp)
	return err
}

// ListByItemForUser returns the item's messages visible to the given user
// (either direction of the conversation), ordered by (created_at, id) so
// the order stays total when timestamps collide.
func (r *MessageRepository) ListByItemForUser(itemID, userID string) ([]model.Message, error) {
	query := `
		SELECT m.id, m.item_id, m.sender_id, m.receiver_id, m.content, u.username, m.created_at
		FROM messages m
		LEFT JOIN users u ON m.sender_id = u.id
		WHERE m.item_id = ? AND (m.sender_id = ? OR m.receiver_id = ?)
		ORDER BY m.created_at ASC, m.id ASC
	`
	rows, err := r.db.Query(query, itemID, userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var msgs []model.Message
	for rows.Next() {
		var msg model.Message
		var senderName sql.NullString
		if err := rows.Scan(&msg.ID, &msg.ItemID, &msg.SenderID, &msg.ReceiverID,
			&msg.Content, &senderName, &msg.Timestamp); err != nil {
			return nil, err
		}
		if senderName.Valid {
			msg.SenderName = senderName.String
		}
		msgs = append(msgs, msg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return msgs, nil
}

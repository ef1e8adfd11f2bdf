package dao

import (
	"database/sql"

	"ecofinds/model"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// TransactionRecord carries a transaction plus the joined display names
// the usecase needs to annotate direction and counterparty.
type TransactionRecord struct {
	model.Transaction
	BuyerName  string
	SellerName string
}

func (r *TransactionRepository) Insert(t *model.Transaction) error {
	query := `
		INSERT INTO transactions (id, item_id, buyer_id, seller_id, amount, eco_points_earned, status, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query, t.ID, t.ItemID, t.BuyerID, t.SellerID, t.Amount,
		t.EcoPointsEarned, t.Status, t.CreatedAt)
	return err
}

// ListByUser returns the user's purchases and sales, newest first.
func (r *TransactionRepository) ListByUser(userID string) ([]TransactionRecord, error) {
	query := `
		SELECT t.id, t.item_id, i.title, t.buyer_id, t.seller_id, t.amount,
		       t.eco_points_earned, t.status, b.username, s.username, t.created_at
		FROM transactions t
		LEFT JOIN items i ON t.item_id = i.id
		LEFT JOIN users b ON t.buyer_id = b.id
		LEFT JOIN users s ON t.seller_id = s.id
		WHERE t.buyer_id = ? OR t.seller_id = ?
		ORDER BY t.created_at DESC
	`
	rows, err := r.db.Query(query, userID, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []TransactionRecord
	for rows.Next() {
		var rec TransactionRecord
		var itemTitle, buyerName, sellerName sql.NullString
		if err := rows.Scan(&rec.ID, &rec.ItemID, &itemTitle, &rec.BuyerID,
			&rec.SellerID, &rec.Amount, &rec.EcoPointsEarned, &rec.Status,
			&buyerName, &sellerName, &rec.CreatedAt); err != nil {
			return nil, err
		}
		if itemTitle.Valid {
			rec.ItemTitle = itemTitle.String
		}
		if buyerName.Valid {
			rec.BuyerName = buyerName.String
		}
		if sellerName.Valid {
			rec.SellerName = sellerName.String
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}

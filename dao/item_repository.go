package dao

import (
	"database/sql"
	"encoding/json"
	"strings"

	"ecofinds/model"
)

type ItemRepository struct {
	db *sql.DB
}

func NewItemRepository(db *sql.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

const itemColumns = `
	i.id, i.title, i.description, i.price, i.category, i.item_condition,
	i.images, i.seller_id, u.username, i.eco_points_reward, i.is_available, i.created_at
`

// Search returns items matching the optional category and text filters.
// An empty category or search means no filter. Sold items are included;
// the buy-flow view filters them out.
func (r *ItemRepository) Search(category, search string) ([]model.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items i
		LEFT JOIN users u ON i.seller_id = u.id
	`
	var conds []string
	var args []any
	if category != "" {
		conds = append(conds, "LOWER(i.category) = LOWER(?)")
		args = append(args, category)
	}
	if search != "" {
		conds = append(conds, "(LOWER(i.title) LIKE ? OR LOWER(i.description) LIKE ?)")
		pattern := "%" + strings.ToLower(search) + "%"
		args = append(args, pattern, pattern)
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY i.created_at DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []model.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *ItemRepository) GetByID(id string) (*model.Item, error) {
	query := `
		SELECT ` + itemColumns + `
		FROM items i
		LEFT JOIN users u ON i.seller_id = u.id
		WHERE i.id = ?
	`
	item, err := scanItem(r.db.QueryRow(query, id))
	if err == sql.ErrNoRows {
		return nil, nil // Not found
	}
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (r *ItemRepository) Insert(item *model.Item) error {
	images, err := json.Marshal(item.Images)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO items (id, title, description, price, category, item_condition, images, seller_id, eco_points_reward, is_available, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.db.Exec(query, item.ID, item.Title, item.Description, item.Price,
		item.Category, item.Condition, string(images), item.SellerID,
		item.EcoPointsReward, item.IsAvailable, item.CreatedAt)
	return err
}

// MarkSold flips is_available to false and reports whether this call won
// the flip. The conditional UPDATE is what guarantees exactly one buyer
// wins a purchase race.
func (r *ItemRepository) MarkSold(id string) (bool, error) {
	res, err := r.db.Exec(`UPDATE items SET is_available = FALSE WHERE id = ? AND is_available = TRUE`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (*model.Item, error) {
	var item model.Item
	var images sql.NullString
	var sellerName sql.NullString

	if err := row.Scan(&item.ID, &item.Title, &item.Description, &item.Price,
		&item.Category, &item.Condition, &images, &item.SellerID, &sellerName,
		&item.EcoPointsReward, &item.IsAvailable, &item.CreatedAt); err != nil {
		return nil, err
	}
	if sellerName.Valid {
		item.SellerName = sellerName.String
	}
	if images.Valid && images.String != "" {
		if err := json.Unmarshal([]byte(images.String), &item.Images); err != nil {
			return nil, err
		}
	}
	return &item, nil
}

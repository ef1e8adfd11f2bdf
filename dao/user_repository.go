package dao

import (
	"database/sql"

	"ecofinds/model"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Insert(user *model.User, passwordHash string) error {
	query := `
		INSERT INTO users (id, email, username, full_name, password_hash, eco_points, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.Exec(query, user.ID, user.Email, user.Username, user.FullName,
		passwordHash, user.EcoPoints, user.CreatedAt)
	return err
}

func (r *UserRepository) GetByID(id string) (*model.User, error) {
	query := `SELECT id, email, username, full_name, eco_points, created_at FROM users WHERE id = ?`
	var user model.User
	err := r.db.QueryRow(query, id).Scan(&user.ID, &user.Email, &user.Username,
		&user.FullName, &user.EcoPoints, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil // Not found
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail returns the user and its stored password hash.
func (r *UserRepository) GetByEmail(email string) (*model.User, string, error) {
	query := `SELECT id, email, username, full_name, password_hash, eco_points, created_at FROM users WHERE email = ?`
	var user model.User
	var hash string
	err := r.db.QueryRow(query, email).Scan(&user.ID, &user.Email, &user.Username,
		&user.FullName, &hash, &user.EcoPoints, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, "", nil // Not found
	}
	if err != nil {
		return nil, "", err
	}
	return &user, hash, nil
}

// AddEcoPoints adds points to a user's balance. The balance lives only on
// the server; clients re-fetch it instead of mutating a cached copy.
func (r *UserRepository) AddEcoPoints(id string, points int) error {
	_, err := r.db.Exec(`UPDATE users SET eco_points = eco_points + ? WHERE id = ?`, points, id)
	return err
}

package model

import "time"

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	EcoPoints int       `json:"eco_points"`
	CreatedAt time.Time `json:"created_at"`
}

package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/go-sql-driver/mysql"

	"ecofinds/config"
)

// Creates the EcoFINDS schema and seeds the demo accounts and listings.
// Safe to rerun: tables use IF NOT EXISTS and seeds use INSERT IGNORE.
func main() {
	cfg := config.Load()

	db, err := sql.Open("mysql", cfg.DSN())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to connect to DB:", err)
	}
	fmt.Println("Connected to Database for Migration!")

	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id CHAR(26) PRIMARY KEY COMMENT 'ULID',
			email VARCHAR(255) NOT NULL UNIQUE,
			username VARCHAR(100) NOT NULL,
			full_name VARCHAR(255) NOT NULL,
			password_hash VARCHAR(100) NOT NULL,
			eco_points INT NOT NULL DEFAULT 100,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS items (
			id CHAR(26) PRIMARY KEY COMMENT 'ULID',
			title VARCHAR(255) NOT NULL,
			description TEXT NOT NULL,
			price DECIMAL(10,2) NOT NULL,
			category VARCHAR(50) NOT NULL,
			item_condition VARCHAR(50) NOT NULL,
			images TEXT,
			seller_id CHAR(26) NOT NULL,
			eco_points_reward INT NOT NULL DEFAULT 10,
			is_available BOOLEAN NOT NULL DEFAULT TRUE,
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (seller_id) REFERENCES users(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS messages (
			id CHAR(26) PRIMARY KEY COMMENT 'ULID',
			item_id CHAR(26) NOT NULL,
			sender_id CHAR(26) NOT NULL,
			receiver_id CHAR(26) NOT NULL,
			content TEXT NOT NULL,
			created_at TIMESTAMP(6) DEFAULT CURRENT_TIMESTAMP(6),
			FOREIGN KEY (item_id) REFERENCES items(id) ON DELETE CASCADE,
			FOREIGN KEY (sender_id) REFERENCES users(id) ON DELETE CASCADE,
			FOREIGN KEY (receiver_id) REFERENCES users(id) ON DELETE CASCADE
		)`,
		`CREATE TABLE IF NOT EXISTS transactions (
			id CHAR(26) PRIMARY KEY COMMENT 'ULID',
			item_id CHAR(26) NOT NULL,
			buyer_id CHAR(26) NOT NULL,
			seller_id CHAR(26) NOT NULL,
			amount DECIMAL(10,2) NOT NULL,
			eco_points_earned INT NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'completed',
			created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
			FOREIGN KEY (item_id) REFERENCES items(id) ON DELETE CASCADE,
			FOREIGN KEY (buyer_id) REFERENCES users(id) ON DELETE CASCADE,
			FOREIGN KEY (seller_id) REFERENCES users(id) ON DELETE CASCADE
		)`,
	}

	for _, q := range queries {
		if _, err := db.Exec(q); err != nil {
			log.Printf("Error executing query: %v", err)
		} else {
			fmt.Println("Executed successfully:", q[:40], "...")
		}
	}

	seed(db)
	fmt.Println("Migration completed.")
}

// bcrypt hash of "secret", shared by all demo accounts.
const demoPasswordHash = "$2b$12$EixZaYVK1fsbw1ZfbX3OXePaWxn96p36WQoeG6Lruj3vjPGga31lW"

func seed(db *sql.DB) {
	users := [][]any{
		{"01SEEDUSER0000000000000001", "john@example.com", "john_eco", "John Doe", demoPasswordHash, 150, "2024-01-15 10:00:00"},
		{"01SEEDUSER0000000000000002", "alice@example.com", "alice_green", "Alice Smith", demoPasswordHash, 200, "2024-01-10 09:00:00"},
		{"01SEEDUSER0000000000000003", "bob@example.com", "bob_sustainable", "Bob Johnson", demoPasswordHash, 75, "2024-01-20 11:00:00"},
	}
	for _, u := range users {
		_, err := db.Exec(`INSERT IGNORE INTO users (id, email, username, full_name, password_hash, eco_points, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`, u...)
		if err != nil {
			log.Printf("Error seeding user: %v", err)
		}
	}

	items := [][]any{
		{"01SEEDITEM0000000000000001", "iPhone 12 Pro - Excellent Condition", "Barely used iPhone 12 Pro in perfect condition. Comes with original charger and box. No scratches or dents.", "599.99", "Electronics", "Excellent", `["https://images.unsplash.com/photo-1592286948467-b6d18a6a3930?w=500"]`, "01SEEDUSER0000000000000001", 15, "2024-01-16 10:30:00"},
		{"01SEEDITEM0000000000000002", "Vintage Leather Jacket", "Classic brown leather jacket from the 80s. Real leather, still in great shape. Size Medium.", "89.99", "Clothing", "Good", `["https://images.unsplash.com/photo-1551028719-00167b16eac5?w=500"]`, "01SEEDUSER0000000000000002", 10, "2024-01-12 14:20:00"},
		{"01SEEDITEM0000000000000003", "JavaScript Programming Books Set", "Collection of 5 JavaScript programming books including ES6, React, and Node.js guides. Perfect for beginners and intermediate developers.", "45.00", "Books", "Good", `["https://images.unsplash.com/photo-1544716278-ca5e3f4abd8c?w=500"]`, "01SEEDUSER0000000000000001", 8, "2024-01-18 16:00:00"},
		{"01SEEDITEM0000000000000004", "Gaming Mechanical Keyboard", "RGB mechanical keyboard with blue switches. Perfect for gaming and typing. Barely used, like new condition.", "120.00", "Electronics", "Excellent", `["https://images.unsplash.com/photo-1541140532154-b024d705b90a?w=500"]`, "01SEEDUSER0000000000000003", 12, "2024-01-21 12:15:00"},
		{"01SEEDITEM0000000000000005", "Ceramic Plant Pots Set", "Beautiful set of 3 ceramic plant pots in different sizes. Perfect for indoor plants. White with gold accents.", "35.00", "Home & Garden", "Excellent", `["https://images.unsplash.com/photo-1485955900006-10f4d324d411?w=500"]`, "01SEEDUSER0000000000000002", 8, "2024-01-14 09:45:00"},
		{"01SEEDITEM0000000000000006", "Nike Running Shoes Size 9", "Nike Air Max running shoes, size 9. Used but still in good condition. Great for jogging and casual wear.", "65.00", "Sports", "Good", `["https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=500"]`, "01SEEDUSER0000000000000003", 10, "2024-01-19 13:30:00"},
		{"01SEEDITEM0000000000000007", "Wooden Coffee Table", "Solid wood coffee table with storage drawers. Perfect for living room. Some minor wear but very sturdy.", "180.00", "Home & Garden", "Good", `["https://images.unsplash.com/photo-1586023492125-27b2c045efd7?w=500"]`, "01SEEDUSER0000000000000001", 18, "2024-01-17 11:00:00"},
		{"01SEEDITEM0000000000000008", "Designer Sunglasses", "Ray-Ban Aviator sunglasses in excellent condition. Comes with original case and cleaning cloth.", "95.00", "Clothing", "Excellent", `["https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=500"]`, "01SEEDUSER0000000000000002", 10, "2024-01-13 15:20:00"},
	}
	for _, it := range items {
		_, err := db.Exec(`INSERT IGNORE INTO items (id, title, description, price, category, item_condition, images, seller_id, eco_points_reward, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, it...)
		if err != nil {
			log.Printf("Error seeding item: %v", err)
		}
	}
	fmt.Println("Seed data loaded.")
}

package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	Port string

	MySQLUser     string
	MySQLPassword string
	MySQLHost     string
	MySQLDatabase string

	JWTSecret string
	TokenTTL  time.Duration

	// APIBaseURL is where the CLI client reaches the server.
	APIBaseURL string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

// Load reads all env vars and builds the config.
func Load() *Config {
	return &Config{
		Port: getEnv("PORT", "8000"),

		MySQLUser:     getEnv("MYSQL_USER", "user"),
		MySQLPassword: getEnv("MYSQL_PWD", "password"),
		MySQLHost:     getEnv("MYSQL_HOST", "tcp(127.0.0.1:3306)"),
		MySQLDatabase: getEnv("MYSQL_DATABASE", "ecofinds_db"),

		JWTSecret: getEnv("ECOFINDS_JWT_SECRET", "your-secret-key-here-change-in-production"),
		TokenTTL:  getDurationEnv("ECOFINDS_TOKEN_TTL", 30*time.Minute),

		APIBaseURL: getEnv("ECOFINDS_API_BASE", "http://localhost:8000"),
	}
}

// DSN builds the MySQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("%s:%s@%s/%s?parseTime=true&loc=Local", c.MySQLUser, c.MySQLPassword, c.MySQLHost, c.MySQLDatabase)
}

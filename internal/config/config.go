package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort  string
	MongoURI    string
	AdminAPIKey string
}

// Load builds Config from environment, reading a .env file first when present.
// MONGO_CONNECTION_STRING and ADMIN_API_KEY have no defaults: the process must
// not start with a guessable admin secret or without a store to talk to.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:  getEnv("SERVER_PORT", "8080"),
		MongoURI:    os.Getenv("MONGO_CONNECTION_STRING"),
		AdminAPIKey: os.Getenv("ADMIN_API_KEY"),
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGO_CONNECTION_STRING is required")
	}
	if cfg.AdminAPIKey == "" {
		return nil, fmt.Errorf("ADMIN_API_KEY is required")
	}
	return cfg, nil
}

// DatabaseName extracts the database name from the tail path segment of a
// Mongo connection string, ignoring any query-string suffix.
func DatabaseName(uri string) string {
	tail := uri[strings.LastIndex(uri, "/")+1:]
	if i := strings.Index(tail, "?"); i >= 0 {
		tail = tail[:i]
	}
	return tail
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// ABOUTME: Environment-based configuration for contactsync commands
// ABOUTME: Loads .env via godotenv and validates required settings
package cli

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config holds the settings every command needs. Google OAuth app
// credentials are read separately by the sync package.
type Config struct {
	NotionToken        string
	DatabaseID         string
	GoogleRefreshToken string
}

// LoadConfig reads configuration from the environment, loading a .env file
// from the working directory first if one exists.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		NotionToken:        os.Getenv("NOTION_TOKEN"),
		DatabaseID:         os.Getenv("NOTION_DATABASE_ID"),
		GoogleRefreshToken: os.Getenv("GOOGLE_REFRESH_TOKEN"),
	}

	if cfg.NotionToken == "" {
		return nil, fmt.Errorf("NOTION_TOKEN is not set")
	}
	if cfg.DatabaseID == "" {
		return nil, fmt.Errorf("NOTION_DATABASE_ID is not set")
	}

	return cfg, nil
}

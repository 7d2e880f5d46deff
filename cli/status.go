// ABOUTME: Database statistics command
// ABOUTME: Reports contact counts and sync coverage from the Notion side
package cli

import (
	"context"
	"fmt"

	"github.com/harperreed/contactsync/models"
	"github.com/harperreed/contactsync/notion"
)

// StatusCommand reports database statistics.
func StatusCommand(cfg *Config, args []string) error {
	ctx := context.Background()
	client := notion.NewClient(cfg.NotionToken)

	fmt.Printf("Database: %s\n\n", cfg.DatabaseID)

	pages, err := client.QueryDatabaseAll(ctx, cfg.DatabaseID)
	if err != nil {
		return fmt.Errorf("failed to query database: %w", err)
	}

	withGoogleID := 0
	withBirthday := 0
	hideBirthday := 0
	for i := range pages {
		contact := models.FromNotionPage(&pages[i])
		if contact.GoogleID != "" {
			withGoogleID++
		}
		if contact.Birthday != nil {
			withBirthday++
		}
		if contact.HideBirthday {
			hideBirthday++
		}
	}

	fmt.Printf("Total contacts: %d\n", len(pages))
	fmt.Printf("  With Google ID: %d\n", withGoogleID)
	fmt.Printf("  Manual entries: %d\n", len(pages)-withGoogleID)
	fmt.Printf("  With birthday: %d\n", withBirthday)
	fmt.Printf("  Hide birthday enabled: %d\n", hideBirthday)

	return nil
}

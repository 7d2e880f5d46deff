// ABOUTME: Notion database schema initialization command
// ABOUTME: Adds missing contact properties, safe to run repeatedly
package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/harperreed/contactsync/notion"
)

// InitSchemaCommand brings the Notion database's properties up to the
// contacts schema. Only missing properties are added; existing ones are
// never modified.
func InitSchemaCommand(cfg *Config, args []string) error {
	ctx := context.Background()
	client := notion.NewClient(cfg.NotionToken)

	fmt.Printf("Fetching database schema: %s\n", cfg.DatabaseID)
	db, err := client.GetDatabase(ctx, cfg.DatabaseID)
	if err != nil {
		return fmt.Errorf("failed to fetch database: %w", err)
	}

	fmt.Printf("Found %d existing properties\n", len(db.Properties))

	missing := make(map[string]notion.PropertySchema)
	for name, schema := range notion.ContactSchema {
		if _, ok := db.Properties[name]; !ok {
			missing[name] = schema
		}
	}

	if len(missing) == 0 {
		fmt.Println("All properties already exist! Schema is up to date.")
		return nil
	}

	names := make([]string, 0, len(missing))
	for name := range missing {
		names = append(names, name)
	}
	sort.Strings(names)

	fmt.Printf("\nAdding %d missing properties:\n", len(missing))
	for _, name := range names {
		fmt.Printf("  - %s\n", name)
	}

	if err := client.UpdateDatabase(ctx, cfg.DatabaseID, missing); err != nil {
		return fmt.Errorf("failed to update database: %w", err)
	}

	fmt.Println("\n✓ Schema initialized successfully")
	return nil
}

// ABOUTME: Contact sync command wiring clients into the orchestrator
// ABOUTME: Supports full bidirectional and single-direction passes
package cli

import (
	"context"
	"flag"
	"fmt"

	"github.com/harperreed/contactsync/models"
	"github.com/harperreed/contactsync/notion"
	"github.com/harperreed/contactsync/sync"
)

const errorDisplayLimit = 5

// SyncCommand runs a sync pass between Google Contacts and the Notion
// database. Default is a full bidirectional pass.
func SyncCommand(cfg *Config, args []string) error {
	fs := flag.NewFlagSet("sync", flag.ExitOnError)
	googleOnly := fs.Bool("google-only", false, "Only sync Google → Notion")
	notionOnly := fs.Bool("notion-only", false, "Only sync Notion → Google")
	_ = fs.Parse(args)

	if *googleOnly && *notionOnly {
		return fmt.Errorf("cannot use both -google-only and -notion-only")
	}

	ctx := context.Background()

	token, err := sync.ResolveToken(cfg.GoogleRefreshToken)
	if err != nil {
		return err
	}
	googleClient, err := sync.NewPeopleClient(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to create Google client: %w", err)
	}
	notionClient := notion.NewClient(cfg.NotionToken)

	syncer := sync.NewSyncer(notionClient, googleClient, cfg.DatabaseID)
	syncer.Progress = func(format string, args ...any) {
		fmt.Printf(format+"\n", args...)
	}

	switch {
	case *googleOnly:
		if err := syncer.BuildIndex(ctx); err != nil {
			return err
		}
		stats, err := syncer.SyncFromGoogle(ctx)
		if err != nil {
			return err
		}
		printGoogleToNotion(stats)

	case *notionOnly:
		if err := syncer.BuildIndex(ctx); err != nil {
			return err
		}
		stats, err := syncer.SyncToGoogle(ctx)
		if err != nil {
			return err
		}
		printNotionToGoogle(stats)

	default:
		googleStats, notionStats, err := syncer.FullSync(ctx)
		if err != nil {
			return err
		}
		fmt.Println("\n==================================================")
		fmt.Println("SYNC COMPLETE")
		fmt.Println("==================================================")
		printGoogleToNotion(googleStats)
		printNotionToGoogle(notionStats)
	}

	return nil
}

func printGoogleToNotion(stats *models.SyncStats) {
	fmt.Println("\nGoogle → Notion:")
	fmt.Printf("  Created: %d\n", stats.Created)
	fmt.Printf("  Updated: %d\n", stats.Updated)
	fmt.Printf("  Errors: %d\n", len(stats.Errors))
	printErrors(stats)
}

func printNotionToGoogle(stats *models.SyncStats) {
	fmt.Println("\nNotion → Google:")
	fmt.Printf("  Updated: %d\n", stats.Updated)
	fmt.Printf("  Skipped (no Google ID): %d\n", stats.Skipped)
	fmt.Printf("  Errors: %d\n", len(stats.Errors))
	printErrors(stats)
}

func printErrors(stats *models.SyncStats) {
	if len(stats.Errors) == 0 {
		return
	}
	fmt.Println("\n  Error details:")
	for _, msg := range stats.ErrorSummary(errorDisplayLimit) {
		fmt.Printf("    - %s\n", msg)
	}
}

// ABOUTME: Entry point for the contactsync CLI
// ABOUTME: Routes to auth, schema, sync, and status commands
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/harperreed/contactsync/cli"
)

const version = "0.1.0"

func main() {
	showVersion := flag.Bool("version", false, "Show version and exit")
	_ = flag.CommandLine.Parse(os.Args[1:])

	if *showVersion {
		fmt.Printf("contactsync version %s\n", version)
		os.Exit(0)
	}

	args := flag.Args()
	if len(args) == 0 {
		printUsage()
		os.Exit(0)
	}

	command := args[0]
	commandArgs := args[1:]

	// auth only needs OAuth app credentials, not the Notion config.
	if command == "auth" {
		if err := cli.AuthCommand(commandArgs); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	cfg, err := cli.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading settings: %v\n", err)
		os.Exit(1)
	}

	var cmdErr error
	switch command {
	case "init-schema":
		cmdErr = cli.InitSchemaCommand(cfg, commandArgs)
	case "sync":
		cmdErr = cli.SyncCommand(cfg, commandArgs)
	case "status":
		cmdErr = cli.StatusCommand(cfg, commandArgs)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if cmdErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", cmdErr)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("contactsync - Sync Google Contacts with a Notion database")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  contactsync <command> [flags]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  auth         Authorize with Google and store OAuth tokens")
	fmt.Println("  init-schema  Create missing properties in the Notion database")
	fmt.Println("  sync         Sync contacts (default: full bidirectional pass)")
	fmt.Println("               Flags: -google-only, -notion-only")
	fmt.Println("  status       Show database statistics")
	fmt.Println()
	fmt.Println("Flags:")
	fmt.Println("  -version     Show version and exit")
}

// Package main is the entry point for the printer portal index tool.
// MongoDB needs no schema migrations, but the unique indexes that back the
// API's conflict rules must exist before the server takes traffic.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/prn-tf/printer-portal/internal/config"
	mongorepo "github.com/prn-tf/printer-portal/internal/repository/mongo"
)

// Version information (set at build time)
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version":
		fmt.Printf("Printer Portal Index Tool\n")
		fmt.Printf("Version: %s\n", Version)
		fmt.Printf("Build Time: %s\n", BuildTime)
		fmt.Printf("Git Commit: %s\n", GitCommit)

	case "up":
		if err := runUp(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("Indexes created")

	case "help", "-h", "--help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// runUp connects and creates all indexes. CreateMany is idempotent for
// matching definitions, so running it repeatedly is safe.
func runUp(args []string) error {
	fs := flag.NewFlagSet("up", flag.ExitOnError)
	configPath := fs.String("config", "", "path to config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.MustLoad(*configPath)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongorepo.Connect(ctx, cfg.Database.URI, cfg.Database.Database, zerolog.Nop())
	if err != nil {
		return err
	}
	defer client.Disconnect(context.Background())

	return mongorepo.EnsureIndexes(ctx, db)
}

func printUsage() {
	fmt.Println(`Printer Portal Index Tool

Usage:
  portal-migrate <command> [arguments]

Commands:
  up          Create all required database indexes
  version     Print version information
  help        Show this help message

Examples:
  portal-migrate up
  portal-migrate up --config ./configs/config.yaml`)
}

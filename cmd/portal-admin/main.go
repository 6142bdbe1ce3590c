// Package main is the entry point for the printer portal admin CLI.
// This tool provides administrative commands for managing user accounts.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/prn-tf/printer-portal/internal/config"
	"github.com/prn-tf/printer-portal/internal/domain"
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
		fmt.Printf("Printer Portal Admin CLI\n")
		fmt.Printf("Version: %s\n", Version)
		fmt.Printf("Build Time: %s\n", BuildTime)
		fmt.Printf("Git Commit: %s\n", GitCommit)

	case "user":
		if err := runUser(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

	case "help", "-h", "--help":
		printUsage()

	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}
}

// runUser dispatches the user subcommands.
func runUser(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("user subcommand required (create)")
	}

	switch args[0] {
	case "create":
		return runUserCreate(args[1:])
	default:
		return fmt.Errorf("unknown user subcommand: %s", args[0])
	}
}

// runUserCreate creates an account directly in the database, bypassing the
// HTTP registration flow. Useful for bootstrapping the first account.
func runUserCreate(args []string) error {
	fs := flag.NewFlagSet("user create", flag.ExitOnError)
	email := fs.String("email", "", "account email (required)")
	password := fs.String("password", "", "account password, min 8 characters (required)")
	configPath := fs.String("config", "", "path to config file")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" || *password == "" {
		return fmt.Errorf("--email and --password are required")
	}
	if len(*password) < 8 {
		return fmt.Errorf("password must be at least 8 characters")
	}

	cfg := config.MustLoad(*configPath)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := mongorepo.Connect(ctx, cfg.Database.URI, cfg.Database.Database, zerolog.Nop())
	if err != nil {
		return err
	}
	defer client.Disconnect(context.Background())

	if err := mongorepo.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), cfg.Auth.BcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	userRepo := mongorepo.NewUserRepo(db)
	if err := userRepo.Create(ctx, domain.NewUser(*email, string(hash))); err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}

	fmt.Printf("User %s created\n", *email)
	return nil
}

func printUsage() {
	fmt.Println(`Printer Portal Admin CLI

Usage:
  portal-admin <command> [arguments]

Commands:
  user        Manage user accounts (create)
  version     Print version information
  help        Show this help message

Examples:
  portal-admin user create --email admin@example.com --password changeme123

Use "portal-admin <command> --help" for more information about a command.`)
}

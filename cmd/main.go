package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/farellandr/bookcatalog/config"
	"github.com/farellandr/bookcatalog/internal/auth"
	"github.com/farellandr/bookcatalog/internal/logging"
	"github.com/farellandr/bookcatalog/internal/seed"
	"github.com/farellandr/bookcatalog/internal/server"
)

func main() {
	command := "serve"
	var args []string
	if len(os.Args) > 1 {
		command = os.Args[1]
		args = os.Args[2:]
	}

	var err error
	switch command {
	case "serve":
		err = runServe()
	case "seed":
		err = runSeed(args)
	case "token":
		err = runToken(args)
	case "-h", "--help", "help":
		printUsage()
		return
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", command)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runServe() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return server.Start(ctx, cfg, logging.New(cfg.Log))
}

func runSeed(args []string) error {
	fs := flag.NewFlagSet("seed", flag.ExitOnError)
	file := fs.String("file", "", "YAML fixture to load instead of the built-in catalog")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}
	logger := logging.New(cfg.Log)

	fixture, err := seed.Default()
	if *file != "" {
		fixture, err = seed.Load(*file)
	}
	if err != nil {
		return err
	}

	db, err := config.InitDatabase(cfg.Database)
	if err != nil {
		return err
	}
	defer func() {
		if err := config.CloseDatabase(db); err != nil {
			logger.Error().Err(err).Msg("failed to close database")
		}
	}()

	result, err := seed.Apply(context.Background(), db, fixture)
	if err != nil {
		return err
	}
	if result.Skipped {
		logger.Info().Msg("catalog not empty, seeding skipped")
		return nil
	}
	logger.Info().Int("categories", result.Categories).Int("books", result.Books).Msg("catalog seeded")
	return nil
}

func runToken(args []string) error {
	fs := flag.NewFlagSet("token", flag.ExitOnError)
	subject := fs.String("subject", "admin", "subject claim of the token")
	ttl := fs.Duration("ttl", 24*time.Hour, "how long the token stays valid")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return err
	}

	token, err := auth.IssueToken(cfg.Auth.JWTSecret, *subject, *ttl)
	if err != nil {
		return err
	}
	fmt.Println(token)
	return nil
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Commands:\n")
	fmt.Fprintf(os.Stderr, "  serve   Start the HTTP server (default if no command given)\n")
	fmt.Fprintf(os.Stderr, "  seed    Load the sample catalog into an empty database\n")
	fmt.Fprintf(os.Stderr, "  token   Issue a bearer token for write requests (needs JWT_SECRET)\n")
	fmt.Fprintf(os.Stderr, "\nUse '%s <command> -h' for help on a specific command.\n", os.Args[0])
}

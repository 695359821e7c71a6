package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/vncsmyrnk/blog/internal/adapters/repository/postgres"
)

type migrationConfig struct {
	DSN string `env:"DATABASE_DSN,required,notEmpty"`
}

// Usage: migrations <up|down|status|reset|version|redo> [args...]
func main() {
	if len(os.Args) < 2 {
		log.Fatal("a goose command is required: up, down, status, reset, version or redo")
	}
	command, args := os.Args[1], os.Args[2:]

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	var cfg migrationConfig
	if err := env.Parse(&cfg); err != nil {
		log.Fatal(err)
	}

	ctx := context.Background()
	db, err := postgres.Open(ctx, cfg.DSN)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := postgres.Migrate(ctx, db, command, args...); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Migration command %q executed successfully.\n", command)
}

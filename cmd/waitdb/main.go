// waitdb blocks until the database accepts connections, then exits 0.
// Run it ahead of the API server in container entrypoints:
//
//	go run ./cmd/waitdb && go run ./cmd/server
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/a-osman/recipe-api/internal/infrastructure/postgres"
	"github.com/a-osman/recipe-api/internal/readiness"
	"github.com/lmittmann/tint"
)

func main() {
	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	logger := slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		TimeFormat: time.Kitchen,
	}))

	pool, err := postgres.NewPool(dbURL)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	defer pool.Close()

	readiness.NewGate(pool, logger, nil).Wait(context.Background())
}

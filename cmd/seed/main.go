// seed inserts an admin, a demo user and a handful of recipes into the
// local dev database. Run: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/a-osman/recipe-api/internal/domain"
	"github.com/a-osman/recipe-api/internal/infrastructure/postgres"
	"github.com/a-osman/recipe-api/internal/usecase"
	"github.com/shopspring/decimal"
)

const (
	adminEmail = "admin@test.local"
	seedEmail  = "chef@test.local"
	seedPass   = "changeme"
)

type recipeSpec struct {
	title   string
	minutes int
	price   string
	link    string
}

var recipes = []recipeSpec{
	{"Shakshuka", 25, "4.50", "https://example.com/shakshuka"},
	{"Lentil soup", 40, "3.25", ""},
	{"Pad thai", 30, "7.80", "https://example.com/pad-thai"},
	{"Margherita pizza", 90, "6.00", ""},
	{"Chocolate brownies", 55, "5.25", ""},
}

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set — run: direnv allow")
	}

	pool, err := postgres.NewPool(dbURL)
	if err != nil {
		log.Fatalf("db connect: %v", err)
	}
	defer pool.Close()

	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	userRepo := postgres.NewUserRepository(pool)
	recipeRepo := postgres.NewRecipeRepository(pool)
	users := usecase.NewUserUsecase(userRepo)

	// Admin account for manual poking; skipped on re-runs.
	if _, err := users.CreateSuperuser(ctx, adminEmail, seedPass); err != nil &&
		!errors.Is(err, domain.ErrEmailTaken) {
		log.Fatalf("create superuser: %v", err)
	}

	user, err := users.Create(ctx, usecase.CreateUserInput{
		Email:    seedEmail,
		Password: seedPass,
		Name:     "Seed Chef",
	})
	if errors.Is(err, domain.ErrEmailTaken) {
		user, err = userRepo.GetByEmail(ctx, seedEmail)
	}
	if err != nil {
		log.Fatalf("seed user: %v", err)
	}

	var inserted int
	for _, spec := range recipes {
		price, err := decimal.NewFromString(spec.price)
		if err != nil {
			log.Fatalf("parse price %q: %v", spec.price, err)
		}
		_, err = recipeRepo.Create(ctx, &domain.Recipe{
			UserID:      user.ID,
			Title:       spec.title,
			TimeMinutes: spec.minutes,
			Price:       price,
			Link:        spec.link,
		})
		if err != nil {
			log.Fatalf("insert recipe %s: %v", spec.title, err)
		}
		inserted++
	}

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  Admin:           %s / %s\n", adminEmail, seedPass)
	fmt.Printf("  User:            %s / %s\n", seedEmail, seedPass)
	fmt.Printf("  Recipes created: %d\n", inserted)
	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Println("  Step 1 — get a token:")
	fmt.Println()
	fmt.Printf("    curl -s -X POST http://localhost:8080/users/token \\\n")
	fmt.Printf("      -H 'Content-Type: application/json' \\\n")
	fmt.Printf("      -d '{\"email\":\"%s\",\"password\":\"%s\"}'\n", seedEmail, seedPass)
	fmt.Println()
	fmt.Println("  Step 2 — list your recipes:")
	fmt.Println()
	fmt.Println("    curl -s http://localhost:8080/recipes -H 'Authorization: Token TOKEN'")
}

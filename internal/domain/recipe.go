package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// ErrRecipeNotFound covers both a missing recipe and a recipe owned by
// someone else — callers cannot tell the two apart.
var ErrRecipeNotFound = errors.New("recipe not found")

type Recipe struct {
	ID          string
	UserID      string
	Title       string
	Description string
	TimeMinutes int
	Price       decimal.Decimal
	Link        string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

package repository

import (
	"context"

	"github.com/a-osman/recipe-api/internal/domain"
)

// UseCase depends on interface, not concrete implementation.
// This way we get: 1) can swap DB later without touching usecase 2) We can pass a mock implementation of interface in tests
type RecipeRepository interface {
	Create(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error)
	// GetByID returns domain.ErrRecipeNotFound when the recipe does not
	// exist or belongs to a different user.
	GetByID(ctx context.Context, id, userID string) (*domain.Recipe, error)
	// ListByUser returns the user's recipes, most recently created first.
	ListByUser(ctx context.Context, userID string) ([]*domain.Recipe, error)
	Update(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error)
	Delete(ctx context.Context, id, userID string) error
}

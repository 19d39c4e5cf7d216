package repository

import (
	"context"

	"github.com/a-osman/recipe-api/internal/domain"
)

type TokenRepository interface {
	// Replace stores the token hash for a user, overwriting any previous
	// token. A user holds at most one token at a time.
	Replace(ctx context.Context, userID, tokenHash string) error
	// FindUserByHash resolves a presented token hash to its owner.
	// Returns domain.ErrTokenInvalid when no such token exists.
	FindUserByHash(ctx context.Context, tokenHash string) (*domain.User, error)
}

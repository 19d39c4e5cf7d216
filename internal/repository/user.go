package repository

import (
	"context"
	"time"

	"github.com/a-osman/recipe-api/internal/domain"
)

type UserRepository interface {
	// Create persists a new user. Returns domain.ErrEmailTaken when the
	// email is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// Update persists name, password hash and capability flag changes.
	Update(ctx context.Context, user *domain.User) (*domain.User, error)
	SetLastLogin(ctx context.Context, id string, at time.Time) error
}

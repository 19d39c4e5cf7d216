package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/a-osman/recipe-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type TokenRepository struct {
	pool *pgxpool.Pool
}

func NewTokenRepository(pool *pgxpool.Pool) *TokenRepository {
	return &TokenRepository{pool: pool}
}

func (r *TokenRepository) Replace(ctx context.Context, userID, tokenHash string) error {
	// One token per user: reissuing overwrites the previous hash.
	_, err := r.pool.Exec(ctx, `
		INSERT INTO auth_tokens (token_hash, user_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO UPDATE
		SET token_hash = EXCLUDED.token_hash, created_at = NOW()`,
		tokenHash, userID)
	if err != nil {
		return fmt.Errorf("replace token: %w", err)
	}
	return nil
}

func (r *TokenRepository) FindUserByHash(ctx context.Context, tokenHash string) (*domain.User, error) {
	query := `
		SELECT u.id, u.email, u.password_hash, u.name, u.is_active, u.is_staff,
		       u.is_superuser, u.last_login, u.created_at, u.updated_at
		FROM auth_tokens t
		JOIN users u ON u.id = t.user_id
		WHERE t.token_hash = $1`

	u, err := scanUser(r.pool.QueryRow(ctx, query, tokenHash))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTokenInvalid
		}
		return nil, err
	}
	return u, nil
}

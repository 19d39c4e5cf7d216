package usecase

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"time"

	"github.com/a-osman/recipe-api/internal/domain"
	"github.com/a-osman/recipe-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// dummyHash keeps password verification constant-time when the user does not
// exist, so issuance timing cannot reveal whether an email is registered.
const dummyHash = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// AuthUsecase exchanges credentials for opaque bearer tokens and resolves
// presented tokens back to users. The client-held token is 32 random bytes,
// hex-encoded; only its SHA-256 hash is stored, and it carries no payload —
// it is a pure lookup key.
type AuthUsecase struct {
	users  repository.UserRepository
	tokens repository.TokenRepository
}

func NewAuthUsecase(users repository.UserRepository, tokens repository.TokenRepository) *AuthUsecase {
	return &AuthUsecase{users: users, tokens: tokens}
}

// IssueToken validates the credentials and returns a fresh token, replacing
// any token the user held before. Unknown email, blank password and wrong
// password all fail with domain.ErrInvalidCredentials.
func (u *AuthUsecase) IssueToken(ctx context.Context, email, password string) (string, error) {
	if password == "" {
		return "", domain.ErrInvalidCredentials
	}

	user, err := u.users.GetByEmail(ctx, NormalizeEmail(email))

	passwordHash := dummyHash
	if err == nil {
		passwordHash = user.PasswordHash
	}
	compareErr := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(password))

	if err != nil || compareErr != nil {
		return "", domain.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", domain.ErrInvalidCredentials
	}

	raw := make([]byte, 32)
	if _, err := io.ReadFull(rand.Reader, raw); err != nil {
		return "", fmt.Errorf("generate token: %w", err)
	}
	rawToken := hex.EncodeToString(raw)
	tokenHash := fmt.Sprintf("%x", sha256.Sum256([]byte(rawToken)))

	if err := u.tokens.Replace(ctx, user.ID, tokenHash); err != nil {
		return "", fmt.Errorf("store token: %w", err)
	}

	if err := u.users.SetLastLogin(ctx, user.ID, time.Now()); err != nil {
		return "", fmt.Errorf("stamp last login: %w", err)
	}

	return rawToken, nil
}

// Authenticate resolves a presented bearer token to its owning user.
func (u *AuthUsecase) Authenticate(ctx context.Context, rawToken string) (*domain.User, error) {
	if rawToken == "" {
		return nil, domain.ErrTokenInvalid
	}

	tokenHash := fmt.Sprintf("%x", sha256.Sum256([]byte(rawToken)))
	user, err := u.tokens.FindUserByHash(ctx, tokenHash)
	if err != nil {
		return nil, domain.ErrTokenInvalid
	}
	if !user.IsActive {
		return nil, domain.ErrUserInactive
	}
	return user, nil
}

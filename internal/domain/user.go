package domain

import (
	"errors"
	"time"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailTaken         = errors.New("a user with this email already exists")
	ErrInvalidCredentials = errors.New("unable to authenticate with provided credentials")
	ErrTokenInvalid       = errors.New("token is invalid")
	ErrUserInactive       = errors.New("user account is disabled")
)

// User is identified by email; there is no separate username.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	Name         string
	IsActive     bool
	IsStaff      bool
	IsSuperuser  bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// AuthToken binds an opaque bearer key to a user. The raw key is never
// stored; only its SHA-256 hash lands in the database. A user has at most
// one token — issuing a new one replaces the old.
type AuthToken struct {
	TokenHash string
	UserID    string
	CreatedAt time.Time
}

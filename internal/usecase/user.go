package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/a-osman/recipe-api/internal/domain"
	"github.com/a-osman/recipe-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 5

// UserUsecase creates and updates accounts. Passwords only ever pass through
// bcrypt before touching a repository.
type UserUsecase struct {
	users repository.UserRepository
}

func NewUserUsecase(users repository.UserRepository) *UserUsecase {
	return &UserUsecase{users: users}
}

type CreateUserInput struct {
	Email       string
	Password    string
	Name        string
	IsStaff     bool
	IsSuperuser bool
}

type UpdateUserInput struct {
	Name     *string
	Password *string
}

// NormalizeEmail lowercases the domain part of an address. The local part is
// case-sensitive per RFC 5321 and is preserved as typed.
func NormalizeEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at == -1 {
		return email
	}
	return email[:at+1] + strings.ToLower(email[at+1:])
}

func validatePassword(password string) error {
	if len(password) < minPasswordLength {
		return domain.NewValidationError("password",
			fmt.Sprintf("password must be at least %d characters long", minPasswordLength))
	}
	return nil
}

func (u *UserUsecase) Create(ctx context.Context, input CreateUserInput) (*domain.User, error) {
	if input.Email == "" {
		return nil, domain.NewValidationError("email", "user must have an email address")
	}
	if err := validatePassword(input.Password); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Email:        NormalizeEmail(input.Email),
		PasswordHash: string(hashed),
		Name:         input.Name,
		IsActive:     true,
		IsStaff:      input.IsStaff,
		IsSuperuser:  input.IsSuperuser,
	}

	created, err := u.users.Create(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return created, nil
}

// CreateSuperuser registers a privileged account with both capability flags set.
func (u *UserUsecase) CreateSuperuser(ctx context.Context, email, password string) (*domain.User, error) {
	return u.Create(ctx, CreateUserInput{
		Email:       email,
		Password:    password,
		IsStaff:     true,
		IsSuperuser: true,
	})
}

func (u *UserUsecase) GetByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.users.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	return user, nil
}

// Update applies profile changes. A password change never reaches the
// repository as field data — it is hashed first like at registration.
func (u *UserUsecase) Update(ctx context.Context, userID string, input UpdateUserInput) (*domain.User, error) {
	user, err := u.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Password != nil {
		if err := validatePassword(*input.Password); err != nil {
			return nil, err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash password: %w", err)
		}
		user.PasswordHash = string(hashed)
	}

	updated, err := u.users.Update(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}
	return updated, nil
}

package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-osman/recipe-api/internal/domain"
	"github.com/a-osman/recipe-api/internal/metrics"
	"github.com/a-osman/recipe-api/internal/usecase"
	"github.com/gin-gonic/gin"
)

// userUsecaser is the subset of UserUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type userUsecaser interface {
	Create(ctx context.Context, input usecase.CreateUserInput) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, userID string, input usecase.UpdateUserInput) (*domain.User, error)
}

type UserHandler struct {
	users  userUsecaser
	logger *slog.Logger
}

func NewUserHandler(users userUsecaser, logger *slog.Logger) *UserHandler {
	return &UserHandler{users: users, logger: logger.With("component", "user_handler")}
}

type createUserRequest struct {
	Email    string `json:"email"    binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name"`
}

type updateUserRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
}

// userResponse never carries the password hash.
type userResponse struct {
	ID    string `json:"id,omitempty"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

// POST /users/create
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Create(c.Request.Context(), usecase.CreateUserInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		var ve *domain.ValidationError
		if errors.Is(err, domain.ErrEmailTaken) || errors.As(err, &ve) {
			badRequest(c, err)
			return
		}
		h.logger.Error("create user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	metrics.UsersCreatedTotal.Inc()
	c.JSON(http.StatusCreated, userResponse{
		ID:    user.ID,
		Email: user.Email,
		Name:  user.Name,
	})
}

// GET /users/me
func (h *UserHandler) Me(c *gin.Context) {
	userID := c.GetString("userID")

	user, err := h.users.GetByID(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("get current user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, userResponse{Email: user.Email, Name: user.Name})
}

// PATCH /users/me
func (h *UserHandler) UpdateMe(c *gin.Context) {
	userID := c.GetString("userID")

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.users.Update(c.Request.Context(), userID, usecase.UpdateUserInput{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			badRequest(c, err)
			return
		}
		h.logger.Error("update current user", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, userResponse{Email: user.Email, Name: user.Name})
}

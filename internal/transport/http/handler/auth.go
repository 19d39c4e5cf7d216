package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/a-osman/recipe-api/internal/domain"
	"github.com/a-osman/recipe-api/internal/metrics"
	"github.com/gin-gonic/gin"
)

// tokenIssuer is the subset of AuthUsecase the handler needs.
type tokenIssuer interface {
	IssueToken(ctx context.Context, email, password string) (string, error)
}

type AuthHandler struct {
	auth   tokenIssuer
	logger *slog.Logger
}

func NewAuthHandler(auth tokenIssuer, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{auth: auth, logger: logger.With("component", "auth_handler")}
}

type tokenRequest struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password"`
}

// POST /users/token
// Bad and blank credentials both return 400, so a caller cannot tell an
// unknown email from a wrong password.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	var req tokenRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, err := h.auth.IssueToken(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidCredentials) {
			c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrInvalidCredentials.Error()})
			return
		}
		h.logger.Error("issue token", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	metrics.TokensIssuedTotal.Inc()
	c.JSON(http.StatusOK, gin.H{"token": token})
}

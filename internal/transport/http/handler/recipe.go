package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/a-osman/recipe-api/internal/domain"
	"github.com/a-osman/recipe-api/internal/usecase"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// recipeUsecaser is the subset of RecipeUsecase the handler needs.
type recipeUsecaser interface {
	Create(ctx context.Context, input usecase.CreateRecipeInput) (*domain.Recipe, error)
	List(ctx context.Context, userID string) ([]*domain.Recipe, error)
	GetByID(ctx context.Context, id, userID string) (*domain.Recipe, error)
	Update(ctx context.Context, id, userID string, input usecase.UpdateRecipeInput) (*domain.Recipe, error)
	Delete(ctx context.Context, id, userID string) error
}

type RecipeHandler struct {
	recipes recipeUsecaser
	logger  *slog.Logger
}

func NewRecipeHandler(recipes recipeUsecaser, logger *slog.Logger) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, logger: logger.With("component", "recipe_handler")}
}

type createRecipeRequest struct {
	Title       string           `json:"title"        binding:"required"`
	Description string           `json:"description"`
	TimeMinutes int              `json:"time_minutes" binding:"required,min=1"`
	Price       *decimal.Decimal `json:"price"        binding:"required"`
	Link        string           `json:"link"`
}

type patchRecipeRequest struct {
	Title       *string          `json:"title"`
	Description *string          `json:"description"`
	TimeMinutes *int             `json:"time_minutes"`
	Price       *decimal.Decimal `json:"price"`
	Link        *string          `json:"link"`
}

type recipeResponse struct {
	ID          string          `json:"id"`
	Title       string          `json:"title"`
	Description string          `json:"description"`
	TimeMinutes int             `json:"time_minutes"`
	Price       decimal.Decimal `json:"price"`
	Link        string          `json:"link"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

func toRecipeResponse(r *domain.Recipe) recipeResponse {
	return recipeResponse{
		ID:          r.ID,
		Title:       r.Title,
		Description: r.Description,
		TimeMinutes: r.TimeMinutes,
		Price:       r.Price,
		Link:        r.Link,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// GET /recipes
func (h *RecipeHandler) List(c *gin.Context) {
	userID := c.GetString("userID")

	recipes, err := h.recipes.List(c.Request.Context(), userID)
	if err != nil {
		h.logger.Error("list recipes", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	out := make([]recipeResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, toRecipeResponse(r))
	}
	c.JSON(http.StatusOK, out)
}

// POST /recipes
func (h *RecipeHandler) Create(c *gin.Context) {
	userID := c.GetString("userID")

	var req createRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	recipe, err := h.recipes.Create(c.Request.Context(), usecase.CreateRecipeInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		TimeMinutes: req.TimeMinutes,
		Price:       *req.Price,
		Link:        req.Link,
	})
	if err != nil {
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			badRequest(c, err)
			return
		}
		h.logger.Error("create recipe", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusCreated, toRecipeResponse(recipe))
}

// GET /recipes/:id
func (h *RecipeHandler) GetByID(c *gin.Context) {
	userID := c.GetString("userID")
	recipeID := c.Param("id")

	recipe, err := h.recipes.GetByID(c.Request.Context(), recipeID, userID)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errRecipeNotFound})
			return
		}
		h.logger.Error("get recipe", "recipe_id", recipeID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, toRecipeResponse(recipe))
}

// PUT /recipes/:id — full replacement, all writable fields required.
func (h *RecipeHandler) Update(c *gin.Context) {
	var req createRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.applyUpdate(c, usecase.UpdateRecipeInput{
		Title:       &req.Title,
		Description: &req.Description,
		TimeMinutes: &req.TimeMinutes,
		Price:       req.Price,
		Link:        &req.Link,
	})
}

// PATCH /recipes/:id — partial update, absent fields keep their values.
func (h *RecipeHandler) Patch(c *gin.Context) {
	var req patchRecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	h.applyUpdate(c, usecase.UpdateRecipeInput{
		Title:       req.Title,
		Description: req.Description,
		TimeMinutes: req.TimeMinutes,
		Price:       req.Price,
		Link:        req.Link,
	})
}

func (h *RecipeHandler) applyUpdate(c *gin.Context, input usecase.UpdateRecipeInput) {
	userID := c.GetString("userID")
	recipeID := c.Param("id")

	recipe, err := h.recipes.Update(c.Request.Context(), recipeID, userID, input)
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errRecipeNotFound})
			return
		}
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			badRequest(c, err)
			return
		}
		h.logger.Error("update recipe", "recipe_id", recipeID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.JSON(http.StatusOK, toRecipeResponse(recipe))
}

// DELETE /recipes/:id
func (h *RecipeHandler) Delete(c *gin.Context) {
	userID := c.GetString("userID")
	recipeID := c.Param("id")

	if err := h.recipes.Delete(c.Request.Context(), recipeID, userID); err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": errRecipeNotFound})
			return
		}
		h.logger.Error("delete recipe", "recipe_id", recipeID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	c.Status(http.StatusNoContent)
}

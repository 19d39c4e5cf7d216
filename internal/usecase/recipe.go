package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/a-osman/recipe-api/internal/domain"
	"github.com/a-osman/recipe-api/internal/repository"
	"github.com/shopspring/decimal"
)

// RecipeUsecase is the resource access layer for recipes. Every operation is
// scoped to the calling user; other users' recipes behave as if absent.
type RecipeUsecase struct {
	repo repository.RecipeRepository
}

func NewRecipeUsecase(repo repository.RecipeRepository) *RecipeUsecase {
	return &RecipeUsecase{repo: repo}
}

type CreateRecipeInput struct {
	UserID      string
	Title       string
	Description string
	TimeMinutes int
	Price       decimal.Decimal
	Link        string
}

type UpdateRecipeInput struct {
	Title       *string
	Description *string
	TimeMinutes *int
	Price       *decimal.Decimal
	Link        *string
}

func validateRecipe(title string, timeMinutes int, price decimal.Decimal) error {
	if title == "" {
		return domain.NewValidationError("title", "title is required")
	}
	if timeMinutes <= 0 {
		return domain.NewValidationError("time_minutes", "time_minutes must be a positive integer")
	}
	if price.IsNegative() {
		return domain.NewValidationError("price", "price must not be negative")
	}
	return nil
}

func (u *RecipeUsecase) Create(ctx context.Context, input CreateRecipeInput) (*domain.Recipe, error) {
	if err := validateRecipe(input.Title, input.TimeMinutes, input.Price); err != nil {
		return nil, err
	}

	recipe := &domain.Recipe{
		UserID:      input.UserID,
		Title:       input.Title,
		Description: input.Description,
		TimeMinutes: input.TimeMinutes,
		Price:       input.Price,
		Link:        input.Link,
	}

	created, err := u.repo.Create(ctx, recipe)
	if err != nil {
		return nil, fmt.Errorf("create recipe: %w", err)
	}
	return created, nil
}

func (u *RecipeUsecase) List(ctx context.Context, userID string) ([]*domain.Recipe, error) {
	recipes, err := u.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	return recipes, nil
}

func (u *RecipeUsecase) GetByID(ctx context.Context, id, userID string) (*domain.Recipe, error) {
	recipe, err := u.repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}
	return recipe, nil
}

// Update merges the provided fields into the stored recipe. Fields left nil
// keep their current values, so PATCH and PUT share one path.
func (u *RecipeUsecase) Update(ctx context.Context, id, userID string, input UpdateRecipeInput) (*domain.Recipe, error) {
	recipe, err := u.repo.GetByID(ctx, id, userID)
	if err != nil {
		return nil, fmt.Errorf("get recipe: %w", err)
	}

	if input.Title != nil {
		recipe.Title = *input.Title
	}
	if input.Description != nil {
		recipe.Description = *input.Description
	}
	if input.TimeMinutes != nil {
		recipe.TimeMinutes = *input.TimeMinutes
	}
	if input.Price != nil {
		recipe.Price = *input.Price
	}
	if input.Link != nil {
		recipe.Link = *input.Link
	}

	if err := validateRecipe(recipe.Title, recipe.TimeMinutes, recipe.Price); err != nil {
		return nil, err
	}

	updated, err := u.repo.Update(ctx, recipe)
	if err != nil {
		return nil, fmt.Errorf("update recipe: %w", err)
	}
	return updated, nil
}

func (u *RecipeUsecase) Delete(ctx context.Context, id, userID string) error {
	if err := u.repo.Delete(ctx, id, userID); err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return err
		}
		return fmt.Errorf("delete recipe: %w", err)
	}
	return nil
}

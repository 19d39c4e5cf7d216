package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/a-osman/recipe-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const recipeColumns = `id, user_id, title, description, time_minutes, price,
	link, created_at, updated_at`

type RecipeRepository struct {
	pool *pgxpool.Pool
}

func NewRecipeRepository(pool *pgxpool.Pool) *RecipeRepository {
	return &RecipeRepository{pool: pool}
}

func (r *RecipeRepository) Create(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	query := `
		INSERT INTO recipes (user_id, title, description, time_minutes, price, link)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + recipeColumns

	row := r.pool.QueryRow(ctx, query,
		recipe.UserID,
		recipe.Title,
		recipe.Description,
		recipe.TimeMinutes,
		recipe.Price,
		recipe.Link,
	)
	return scanRecipe(row)
}

func (r *RecipeRepository) GetByID(ctx context.Context, id, userID string) (*domain.Recipe, error) {
	// Scoping by user_id makes other owners' recipes look absent.
	query := `SELECT ` + recipeColumns + ` FROM recipes WHERE id = $1 AND user_id = $2`
	return scanRecipe(r.pool.QueryRow(ctx, query, id, userID))
}

func (r *RecipeRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Recipe, error) {
	query := `
		SELECT ` + recipeColumns + `
		FROM recipes
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list recipes: %w", err)
	}
	defer rows.Close()

	var recipes []*domain.Recipe
	for rows.Next() {
		rec, err := scanRecipe(rows)
		if err != nil {
			return nil, err
		}
		recipes = append(recipes, rec)
	}
	return recipes, rows.Err()
}

func (r *RecipeRepository) Update(ctx context.Context, recipe *domain.Recipe) (*domain.Recipe, error) {
	query := `
		UPDATE recipes
		SET    title        = $3,
		       description  = $4,
		       time_minutes = $5,
		       price        = $6,
		       link         = $7,
		       updated_at   = NOW()
		WHERE id = $1 AND user_id = $2
		RETURNING ` + recipeColumns

	row := r.pool.QueryRow(ctx, query,
		recipe.ID,
		recipe.UserID,
		recipe.Title,
		recipe.Description,
		recipe.TimeMinutes,
		recipe.Price,
		recipe.Link,
	)
	return scanRecipe(row)
}

func (r *RecipeRepository) Delete(ctx context.Context, id, userID string) error {
	tag, err := r.pool.Exec(ctx,
		`DELETE FROM recipes WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete recipe: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

// pgx.Row and pgx.Rows both implement this.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row rowScanner) (*domain.Recipe, error) {
	var rec domain.Recipe
	err := row.Scan(
		&rec.ID, &rec.UserID, &rec.Title, &rec.Description, &rec.TimeMinutes,
		&rec.Price, &rec.Link, &rec.CreatedAt, &rec.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, fmt.Errorf("scan recipe: %w", err)
	}
	return &rec, nil
}

package httptransport

import (
	"log/slog"

	"github.com/a-osman/recipe-api/internal/transport/http/handler"
	"github.com/a-osman/recipe-api/internal/transport/http/middleware"
	"github.com/gin-gonic/gin"

	sloggin "github.com/samber/slog-gin"
)

func NewRouter(logger *slog.Logger, userHandler *handler.UserHandler, authHandler *handler.AuthHandler,
	recipeHandler *handler.RecipeHandler, authMW gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	// POST /users/me must answer 405, not 404.
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Security())
	r.Use(sloggin.New(logger))
	r.Use(middleware.Metrics())

	// Public user routes
	r.POST("/users/create", userHandler.Create)
	r.POST("/users/token", authHandler.IssueToken)

	// Current-user profile
	me := r.Group("/users/me", authMW)
	me.GET("", userHandler.Me)
	me.PATCH("", userHandler.UpdateMe)

	// Protected recipe routes, scoped to the authenticated owner
	recipes := r.Group("/recipes", authMW)
	recipes.GET("", recipeHandler.List)
	recipes.POST("", recipeHandler.Create)
	recipes.GET("/:id", recipeHandler.GetByID)
	recipes.PUT("/:id", recipeHandler.Update)
	recipes.PATCH("/:id", recipeHandler.Patch)
	recipes.DELETE("/:id", recipeHandler.Delete)

	return r
}

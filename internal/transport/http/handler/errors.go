package handler

import (
	"errors"
	"net/http"

	"github.com/a-osman/recipe-api/internal/domain"
	"github.com/gin-gonic/gin"
)

const (
	errInternalServer = "Internal server error"
	errRecipeNotFound = "Recipe not found"
)

// badRequest writes a 400, attaching the field name for validation errors so
// clients get field-level detail.
func badRequest(c *gin.Context, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Message, "field": ve.Field})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

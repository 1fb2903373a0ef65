package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pageza/recipebook/internal/logger"
	"github.com/pageza/recipebook/internal/model"
)

// HealthCheck returns the health status of the API
func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "Recipe book API is running",
		"version": "v1.0.0",
	})
}

// respondError maps catalog errors onto HTTP status codes. Storage failures
// (storage.ErrIO, storage.ErrParse) and anything unknown become 500.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, model.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, model.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, model.ErrDuplicate):
		status = http.StatusConflict
	}

	body := gin.H{"error": err.Error()}
	var verr *model.ValidationError
	if errors.As(err, &verr) {
		body["field"] = verr.Field
	}
	if status >= http.StatusInternalServerError {
		logger.Error("request failed", "path", c.FullPath(), "err", err)
	}
	c.AbortWithStatusJSON(status, body)
}

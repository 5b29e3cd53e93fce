package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-group-matching/internal/domain"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Entity  string `json:"entity,omitempty"`
	ID      string `json:"id,omitempty"`
}

// respondError maps domain errors to HTTP statuses. Anything that is not a
// validation or not-found error is logged and reported without detail.
func respondError(c *gin.Context, err error) {
	var vErr *domain.ValidationError
	if errors.As(err, &vErr) {
		c.JSON(http.StatusBadRequest, errorResponse{
			Error:   "validation_error",
			Message: vErr.Error(),
		})
		return
	}

	var nfErr *domain.NotFoundError
	if errors.As(err, &nfErr) {
		c.JSON(http.StatusNotFound, errorResponse{
			Error:   "not_found",
			Message: nfErr.Error(),
			Entity:  nfErr.Entity,
			ID:      nfErr.ID,
		})
		return
	}

	slog.ErrorContext(c.Request.Context(), "request failed",
		slog.String("path", c.FullPath()),
		slog.String("error", err.Error()),
	)
	c.JSON(http.StatusInternalServerError, errorResponse{
		Error:   "internal_error",
		Message: "internal server error",
	})
}

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/money_counter/internal/apperrors"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is a generic error response structure for handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondWithError maps service errors onto status codes. Validation and
// magnitude errors carry their message to the client; anything unexpected is
// logged and reported as fallback.
func respondWithError(c *gin.Context, logger *slog.Logger, err error, fallback string) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrUnauthorized):
		logger.Warn("Unauthorized", slog.String("error", err.Error()))
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "Not found"})
	case errors.Is(err, apperrors.ErrUnprocessable):
		logger.Warn("Unprocessable input", slog.String("error", err.Error()))
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: err.Error()})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallback})
	}
}

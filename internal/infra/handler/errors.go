package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-location-remind/internal/app"
	"github.com/KasumiMercury/primind-location-remind/internal/domain"
)

func badRequest(c *gin.Context, err error) {
	slog.Warn("request validation failed",
		"error", err,
		"path", c.Request.URL.Path,
	)
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   "validation_error",
		Message: err.Error(),
		Field:   "",
	})
}

func handleError(c *gin.Context, err error) {
	var validationErr *app.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "validation_error",
			Message: validationErr.Message,
			Field:   validationErr.Field,
		})

		return
	}

	switch {
	case errors.Is(err, app.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "not_found",
			Message: domain.ErrReminderNotFound.Error(),
		})
	case errors.Is(err, app.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, ErrorResponse{
			Error:   "permission_denied",
			Message: resultMessage(err, domain.ErrPermissionDenied),
		})
	case errors.Is(err, app.ErrSettingsUnresolved):
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:   "settings_resolution_required",
			Message: domain.ErrSettingsResolutionRequired.Error(),
		})
	case errors.Is(err, app.ErrRegistrationFailed):
		c.JSON(http.StatusBadGateway, ErrorResponse{
			Error:   "registration_failed",
			Message: domain.ErrRegistrationFailed.Error(),
		})
	case errors.Is(err, app.ErrConflict):
		c.JSON(http.StatusConflict, ErrorResponse{
			Error:   "conflict",
			Message: domain.ErrRegistrationInProgress.Error(),
		})
	default:
		slog.Error("request failed",
			"error", err,
			"path", c.Request.URL.Path,
		)
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: "an internal error occurred",
		})
	}
}

// resultMessage prefers the message carried by a registry result, which
// names what is missing.
func resultMessage(err error, fallback error) string {
	var resultErr *domain.ResultError
	if errors.As(err, &resultErr) && resultErr.Message != "" {
		return resultErr.Message
	}

	return fallback.Error()
}

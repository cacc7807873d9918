package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-location-remind/internal/app"
)

type LocationHandler struct {
	useCase app.LocationUseCase
}

func NewLocationHandler(useCase app.LocationUseCase) *LocationHandler {
	return &LocationHandler{useCase: useCase}
}

// CurrentLocation answers 204 when no fix could be obtained.
func (h *LocationHandler) CurrentLocation(c *gin.Context) {
	output, err := h.useCase.CurrentLocation(c.Request.Context())
	if err != nil {
		handleError(c, err)

		return
	}

	if !output.Found {
		slog.InfoContext(c.Request.Context(), "no location available",
			"status", output.Status,
			"tries", output.Tries,
		)
		c.Status(http.StatusNoContent)

		return
	}

	c.JSON(http.StatusOK, FromLocation(output))
}

func (h *LocationHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/location/current", h.CurrentLocation)
}

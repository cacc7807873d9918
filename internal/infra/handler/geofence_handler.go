package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-location-remind/internal/app"
)

type GeofenceHandler struct {
	useCase app.GeofenceEventUseCase
}

func NewGeofenceHandler(useCase app.GeofenceEventUseCase) *GeofenceHandler {
	return &GeofenceHandler{useCase: useCase}
}

func (h *GeofenceHandler) DeliverEvent(c *gin.Context) {
	var req TransitionEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)

		return
	}

	input := app.TransitionEventInput{
		RequestIDs: req.RequestIDs,
		Transition: req.Transition,
		ErrorCode:  req.ErrorCode,
	}

	if req.Position != nil {
		input.Position = &app.PositionInput{
			Latitude:       req.Position.Latitude,
			Longitude:      req.Position.Longitude,
			AccuracyMeters: req.Position.AccuracyMeters,
		}
	}

	output, err := h.useCase.HandleTransition(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "geofence event accepted",
		"transition", req.Transition,
		"triggered", len(output.Triggered),
	)
	c.JSON(http.StatusAccepted, FromTransition(output))
}

func (h *GeofenceHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/geofence/events", h.DeliverEvent)
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-location-remind/internal/domain"
	"github.com/KasumiMercury/primind-location-remind/internal/infra/device"
)

// DeviceHandler lets the client report its location stack state.
type DeviceHandler struct {
	bridge *device.Bridge
}

func NewDeviceHandler(bridge *device.Bridge) *DeviceHandler {
	return &DeviceHandler{bridge: bridge}
}

func (h *DeviceHandler) ReportPosition(c *gin.Context) {
	var req ReportPositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)

		return
	}

	position := domain.Position{
		Latitude:       *req.Latitude,
		Longitude:      *req.Longitude,
		AccuracyMeters: req.AccuracyMeters,
	}

	if req.RecordedAt != nil {
		position.RecordedAt = req.RecordedAt.UTC()
	}

	h.bridge.ReportPosition(position)
	c.Status(http.StatusNoContent)
}

func (h *DeviceHandler) UpdateSettings(c *gin.Context) {
	var req DeviceSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)

		return
	}

	settings := device.Settings{
		LocationEnabled:     *req.LocationEnabled,
		GeofencingAvailable: true,
	}

	if req.GeofencingAvailable != nil {
		settings.GeofencingAvailable = *req.GeofencingAvailable
	}

	h.bridge.SetSettings(settings)
	c.Status(http.StatusNoContent)
}

func (h *DeviceHandler) UpdatePermissions(c *gin.Context) {
	var req DevicePermissionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)

		return
	}

	granted := make([]domain.Permission, 0, len(req.Permissions))
	for _, p := range req.Permissions {
		permission, err := domain.NewPermission(p)
		if err != nil {
			badRequest(c, err)

			return
		}

		granted = append(granted, permission)
	}

	h.bridge.SetPermissions(granted)
	c.Status(http.StatusNoContent)
}

func (h *DeviceHandler) ListGeofences(c *gin.Context) {
	c.JSON(http.StatusOK, FromRegions(h.bridge.Geofences()))
}

func (h *DeviceHandler) RegisterRoutes(router *gin.RouterGroup) {
	dev := router.Group("/device")
	{
		dev.PUT("/position", h.ReportPosition)
		dev.PUT("/settings", h.UpdateSettings)
		dev.PUT("/permissions", h.UpdatePermissions)
		dev.GET("/geofences", h.ListGeofences)
	}
}

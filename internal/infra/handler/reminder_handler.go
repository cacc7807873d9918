package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/primind-location-remind/internal/app"
)

type ReminderHandler struct {
	useCase app.ReminderUseCase
}

func NewReminderHandler(useCase app.ReminderUseCase) *ReminderHandler {
	return &ReminderHandler{
		useCase: useCase,
	}
}

func (h *ReminderHandler) SaveReminder(c *gin.Context) {
	slog.InfoContext(c.Request.Context(), "handling save reminder request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	var req SaveReminderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)

		return
	}

	input := app.SaveReminderInput{
		ID:            req.ID,
		Title:         req.Title,
		Description:   req.Description,
		LocationLabel: req.LocationLabel,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
	}

	output, err := h.useCase.SaveReminder(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "reminder saved successfully",
		"reminder_id", output.ID,
	)
	c.JSON(http.StatusCreated, FromDTO(output))
}

func (h *ReminderHandler) LoadReminders(c *gin.Context) {
	output, err := h.useCase.LoadReminders(c.Request.Context())
	if err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "reminders retrieved successfully",
		"count", output.Count,
	)
	c.JSON(http.StatusOK, FromDTOs(output))
}

func (h *ReminderHandler) GetReminder(c *gin.Context) {
	id := c.Param("id")

	output, err := h.useCase.GetReminder(c.Request.Context(), app.GetReminderInput{ID: id})
	if err != nil {
		handleError(c, err)

		return
	}

	c.JSON(http.StatusOK, FromDTO(output))
}

func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	id := c.Param("id")

	slog.InfoContext(c.Request.Context(), "handling delete reminder request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"reminder_id", id,
	)

	if err := h.useCase.DeleteReminder(c.Request.Context(), app.DeleteReminderInput{ID: id}); err != nil {
		handleError(c, err)

		return
	}

	slog.InfoContext(c.Request.Context(), "reminder deleted successfully",
		"reminder_id", id,
	)
	c.Status(http.StatusNoContent)
}

func (h *ReminderHandler) DeleteAllReminders(c *gin.Context) {
	slog.InfoContext(c.Request.Context(), "handling delete all reminders request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
	)

	if err := h.useCase.DeleteAllReminders(c.Request.Context()); err != nil {
		handleError(c, err)

		return
	}

	c.Status(http.StatusNoContent)
}

func (h *ReminderHandler) RegisterRoutes(router *gin.RouterGroup) {
	reminders := router.Group("/reminders")
	{
		reminders.POST("", h.SaveReminder)
		reminders.GET("", h.LoadReminders)
		reminders.DELETE("", h.DeleteAllReminders)
		reminders.GET("/:id", h.GetReminder)
		reminders.DELETE("/:id", h.DeleteReminder)
	}
}

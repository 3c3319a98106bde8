package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vatisha/water-reminders/internal/domain"
	"github.com/vatisha/water-reminders/internal/service/reminder"
)

type ActionHandler struct {
	actions *reminder.ActionService
}

func NewActionHandler(actions *reminder.ActionService) *ActionHandler {
	return &ActionHandler{
		actions: actions,
	}
}

type actionRequest struct {
	UserID  string `json:"user_id" binding:"required"`
	Action  string `json:"action" binding:"required"`
	PlantID string `json:"plant_id"`
}

// HandleAction applies a user action (watered, snooze_4h, snooze_tomorrow,
// dismiss) to a notification.
func (h *ActionHandler) HandleAction(c *gin.Context) {
	ctx := c.Request.Context()
	notificationID := c.Param("id")

	var req actionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "user_id and action are required")
		return
	}

	result, err := h.actions.Handle(ctx, notificationID, req.UserID, req.Action, req.PlantID, time.Now())
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotificationNotFound):
			respondError(c, http.StatusNotFound, "notification not found")
		case errors.Is(err, reminder.ErrUnknownAction):
			respondError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrInvalidStateTransition):
			respondError(c, http.StatusConflict, err.Error())
		default:
			respondError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/vatisha/water-reminders/internal/service/reminder"
)

type ReminderHandler struct {
	generator *reminder.Generator
	sweeper   *reminder.Sweeper
	actions   *reminder.ActionService
}

func NewReminderHandler(generator *reminder.Generator, sweeper *reminder.Sweeper, actions *reminder.ActionService) *ReminderHandler {
	return &ReminderHandler{
		generator: generator,
		sweeper:   sweeper,
		actions:   actions,
	}
}

// HandleRun triggers the daily reminder generation. An optional "at" query
// parameter (RFC3339) overrides the evaluation time for replays and tests.
func (h *ReminderHandler) HandleRun(c *gin.Context) {
	ctx := c.Request.Context()

	now, ok := evaluationTime(c)
	if !ok {
		return
	}

	stats, err := h.generator.Run(ctx, now)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, stats)
}

// HandleSweep wakes snoozed notifications whose snooze window has passed.
func (h *ReminderHandler) HandleSweep(c *gin.Context) {
	ctx := c.Request.Context()

	now, ok := evaluationTime(c)
	if !ok {
		return
	}

	stats, err := h.sweeper.Sweep(ctx, now)
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, stats)
}

type resumeRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

// HandleResume clears a silence pause for one plant, typically called when
// the user opens the plant detail screen.
func (h *ReminderHandler) HandleResume(c *gin.Context) {
	ctx := c.Request.Context()
	plantID := c.Param("id")

	var req resumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "user_id is required")
		return
	}

	resumed, err := h.actions.ResumeReminders(ctx, req.UserID, plantID, time.Now())
	if err != nil {
		respondError(c, http.StatusInternalServerError, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"resumed": resumed})
}

func evaluationTime(c *gin.Context) (time.Time, bool) {
	if atStr := c.Query("at"); atStr != "" {
		parsed, err := time.Parse(time.RFC3339, atStr)
		if err != nil {
			respondError(c, http.StatusBadRequest, "invalid at time format, expected RFC3339")
			return time.Time{}, false
		}
		return parsed, true
	}
	return time.Now(), true
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"error":   "processing_error",
		"message": message,
	})
}

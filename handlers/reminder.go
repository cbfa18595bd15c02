package handlers

import (
	"net/http"
	"time"

	"ysgtransport/services/reminder"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReminderHandler exposes the trigger endpoint for reminder sweeps.
type ReminderHandler struct {
	Engine reminder.Engine
	Logger *zap.Logger
}

func NewReminderHandler(engine reminder.Engine, logger *zap.Logger) *ReminderHandler {
	return &ReminderHandler{Engine: engine, Logger: logger}
}

// TriggerRemindersHandler runs one reminder sweep. Auth is enforced by the
// cron middleware on the route.
func (h *ReminderHandler) TriggerRemindersHandler(c *gin.Context) {
	outcomes := h.Engine.Run(c.Request.Context())

	summary := map[reminder.OutcomeResult]int{}
	for _, o := range outcomes {
		summary[o.Result]++
	}

	h.Logger.Info("reminder sweep done",
		zap.Int("sent", summary[reminder.OutcomeSent]),
		zap.Int("skipped", summary[reminder.OutcomeSkipped]),
		zap.Int("failed", summary[reminder.OutcomeFailed]))

	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "reminders processed",
		"timestamp": time.Now().Format(time.RFC3339),
		"summary": gin.H{
			"sent":    summary[reminder.OutcomeSent],
			"skipped": summary[reminder.OutcomeSkipped],
			"failed":  summary[reminder.OutcomeFailed],
		},
		"outcomes": outcomes,
	})
}

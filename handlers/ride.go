package handlers

import (
	"errors"
	"net/http"

	"ysgtransport/models"
	"ysgtransport/services/ride"
	"ysgtransport/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RideHandler exposes the ride request API over HTTP.
type RideHandler struct {
	Service ride.RideService
	Logger  *zap.Logger
}

func NewRideHandler(svc ride.RideService, logger *zap.Logger) *RideHandler {
	return &RideHandler{Service: svc, Logger: logger}
}

// CreateRideHandler accepts a new ride submission, persists it and emails
// the driver.
func (h *RideHandler) CreateRideHandler(c *gin.Context) {
	var input models.RideInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	record, err := h.Service.Create(c.Request.Context(), input)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{
			"success": true,
			"message": "ride created and driver notified",
			"rideId":  record.ID,
		})
	case errors.Is(err, ride.ErrValidation):
		utils.JSONError(c, http.StatusBadRequest, "missing or invalid ride data", err.Error())
	case errors.Is(err, ride.ErrNotifySend):
		// The record exists; only the email failed.
		h.Logger.Error("ride created but notification failed",
			zap.String("rideId", record.ID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "ride saved but driver email failed", record.ID)
	default:
		h.Logger.Error("ride creation failed", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to create ride", "")
	}
}

// ListRidesHandler returns upcoming rides, soonest first.
func (h *RideHandler) ListRidesHandler(c *gin.Context) {
	rides, err := h.Service.ListUpcoming(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list rides", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch rides", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"rides": rides})
}

// ListHistoryHandler returns past rides, most recent first.
func (h *RideHandler) ListHistoryHandler(c *gin.Context) {
	rides, err := h.Service.ListHistory(c.Request.Context())
	if err != nil {
		h.Logger.Error("failed to list ride history", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch ride history", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"rides": rides})
}

// GetRideHandler returns one ride by id.
func (h *RideHandler) GetRideHandler(c *gin.Context) {
	record, err := h.Service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusNotFound, "ride not found", c.Param("id"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"ride": record})
}

// UpdateRideStatusHandler changes a ride's lifecycle status. Cancelling a
// ride is what stops its reminders.
func (h *RideHandler) UpdateRideStatusHandler(c *gin.Context) {
	var input struct {
		Status models.RideStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	err := h.Service.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"success": true, "status": input.Status})
	case errors.Is(err, ride.ErrValidation):
		utils.JSONError(c, http.StatusBadRequest, "invalid status", string(input.Status))
	default:
		h.Logger.Error("status update failed",
			zap.String("rideId", c.Param("id")), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to update status", "")
	}
}

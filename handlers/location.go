package handlers

import (
	"net/http"

	locationRepo "ysgtransport/database/repository/location"
	"ysgtransport/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LocationHandler serves the saved places offered in the request form.
type LocationHandler struct {
	Repo   locationRepo.LocationRepository
	Logger *zap.Logger
}

func NewLocationHandler(repo locationRepo.LocationRepository, logger *zap.Logger) *LocationHandler {
	return &LocationHandler{Repo: repo, Logger: logger}
}

// ListLocationsHandler returns active locations, most used first.
func (h *LocationHandler) ListLocationsHandler(c *gin.Context) {
	locations, err := h.Repo.ListActive()
	if err != nil {
		h.Logger.Error("failed to list locations", zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch locations", "")
		return
	}
	c.JSON(http.StatusOK, gin.H{"locations": locations})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	apierrors "github.com/harukimori/study-log-api/internal/errors"
	"github.com/harukimori/study-log-api/internal/middleware"
	"github.com/harukimori/study-log-api/internal/services"
)

// StatsHandler serves the aggregate statistics endpoint.
type StatsHandler struct {
	statsService *services.StatsService
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(statsService *services.StatsService) *StatsHandler {
	return &StatsHandler{statsService: statsService}
}

// GetStats returns totals, category rollups and the study streak.
func (h *StatsHandler) GetStats(c *gin.Context) {
	userID, _ := middleware.GetUserID(c)

	stats, err := h.statsService.Overview(userID)
	if err != nil {
		apierrors.InternalError(c, "Failed to compute statistics", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

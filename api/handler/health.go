package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sitegauge/sitegauge/analysis"
	"github.com/sitegauge/sitegauge/models"
)

// Health returns a handler for GET /api/v1/health.
//
// Reports queue utilisation and degrades status when the pending queue is
// more than 80% full.
func Health(mgr *analysis.Manager, startTime time.Time) gin.HandlerFunc {
	return func(c *gin.Context) {
		stats := mgr.Stats()

		status := "healthy"
		if stats.Cap > 0 && stats.Depth > int(float64(stats.Cap)*0.8) {
			status = "degraded"
		}

		c.JSON(http.StatusOK, models.HealthResponse{
			Status:     status,
			Uptime:     time.Since(startTime).Round(time.Second).String(),
			QueueStats: stats,
			Version:    "0.1.0",
		})
	}
}

package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sitegauge/sitegauge/analysis"
	"github.com/sitegauge/sitegauge/models"
)

// Analyze returns a handler for POST /api/v1/analyze.
//
// Submission is asynchronous: the record is created and queued, and the
// caller immediately gets the analysis id to poll. The options object is
// accepted and ignored (reserved for future configuration).
func Analyze(mgr *analysis.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AnalyzeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": models.ErrorDetail{
					Code:    models.ErrCodeInvalidInput,
					Message: err.Error(),
				},
			})
			return
		}

		rec, err := mgr.Submit(c.Request.Context(), req.URL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": models.ErrorDetail{
					Code:    models.ErrCodeInternal,
					Message: err.Error(),
				},
			})
			return
		}

		c.JSON(http.StatusOK, models.AnalyzeResponse{
			AnalysisID: rec.ID,
			Status:     rec.Status,
			URL:        rec.URL,
			Message:    "Analysis started successfully",
		})
	}
}

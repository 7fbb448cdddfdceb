package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sitegauge/sitegauge/models"
	"github.com/sitegauge/sitegauge/store"
)

// Download returns a handler for GET /api/v1/download/:id.
//
// Serves the PDF artifact of a completed analysis. Not completed yet → 400
// NOT_READY; unknown id or artifact missing → 404. Repeated downloads return
// byte-identical payloads since the artifact is immutable once attached.
func Download(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := st.Get(c.Param("id"))
		if err != nil {
			respondStoreError(c, err)
			return
		}

		if rec.Status != models.StatusCompleted {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": models.ErrorDetail{
					Code:    models.ErrCodeNotReady,
					Message: "analysis not completed yet",
				},
			})
			return
		}

		if len(rec.ReportPDF) == 0 {
			c.JSON(http.StatusNotFound, gin.H{
				"error": models.ErrorDetail{
					Code:    models.ErrCodeNotFound,
					Message: "report file not found",
				},
			})
			return
		}

		filename := fmt.Sprintf("website_analysis_%s.pdf", shortID(rec.ID))
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
		c.Data(http.StatusOK, "application/pdf", rec.ReportPDF)
	}
}

// shortID returns the first 8 characters of an analysis id.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

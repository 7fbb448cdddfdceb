package handler

import (
	"errors"
	"net/http"
	"sort"

	"github.com/gin-gonic/gin"

	"github.com/sitegauge/sitegauge/models"
	"github.com/sitegauge/sitegauge/store"
)

// Status returns a handler for GET /api/v1/analysis/:id.
// The response mirrors the stored record without the report bytes; an
// unknown id yields 404 with no partial data.
func Status(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		rec, err := st.Get(c.Param("id"))
		if err != nil {
			respondStoreError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.NewStatusResponse(rec))
	}
}

// List returns a handler for GET /api/v1/analyses: a summary per stored
// record, ordered newest first.
func List(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		records, err := st.List()
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": models.ErrorDetail{
					Code:    models.ErrCodeInternal,
					Message: err.Error(),
				},
			})
			return
		}

		summaries := make([]models.AnalysisSummary, 0, len(records))
		for _, rec := range records {
			s := models.AnalysisSummary{
				ID:        rec.ID,
				URL:       rec.URL,
				Status:    rec.Status,
				Progress:  rec.Progress,
				StartedAt: rec.StartedAt,
			}
			if rec.Results != nil {
				overall := rec.Results.OverallScore
				s.OverallScore = &overall
			}
			summaries = append(summaries, s)
		}
		sort.Slice(summaries, func(i, j int) bool {
			return summaries[i].StartedAt.After(summaries[j].StartedAt)
		})

		c.JSON(http.StatusOK, models.ListResponse{
			Count:    len(summaries),
			Analyses: summaries,
		})
	}
}

// Delete returns a handler for DELETE /api/v1/analysis/:id, the explicit
// maintenance operation removing one record.
func Delete(st store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		existed, err := st.Delete(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": models.ErrorDetail{
					Code:    models.ErrCodeInternal,
					Message: err.Error(),
				},
			})
			return
		}
		if !existed {
			c.JSON(http.StatusNotFound, gin.H{
				"error": models.ErrorDetail{
					Code:    models.ErrCodeNotFound,
					Message: "analysis not found",
				},
			})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": true})
	}
}

// respondStoreError maps store lookup errors to API responses.
func respondStoreError(c *gin.Context, err error) {
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{
			"error": models.ErrorDetail{
				Code:    models.ErrCodeNotFound,
				Message: "analysis not found",
			},
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": models.ErrorDetail{
			Code:    models.ErrCodeInternal,
			Message: err.Error(),
		},
	})
}

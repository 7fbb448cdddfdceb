package api

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sitegauge/sitegauge/analysis"
	"github.com/sitegauge/sitegauge/api/handler"
	"github.com/sitegauge/sitegauge/api/middleware"
	"github.com/sitegauge/sitegauge/config"
	"github.com/sitegauge/sitegauge/store"
)

// NewRouter creates a configured Gin engine with all routes and middleware.
//
// Middleware chain:
//
//	Global:  Recovery → Logger
//	API:     Auth (if enabled) → RateLimit
//
// Health endpoint is intentionally outside auth so monitoring probes always work.
func NewRouter(mgr *analysis.Manager, st store.Store, cfg *config.Config, startTime time.Time) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(gin.Logger())

	v1 := r.Group("/api/v1")

	// Health — no auth required.
	v1.GET("/health", handler.Health(mgr, startTime))

	// Protected group — auth + rate limit.
	protected := v1.Group("")
	if cfg.Auth.Enabled {
		protected.Use(middleware.Auth(cfg.Auth.APIKeys))
	}
	protected.Use(middleware.RateLimit(cfg.RateLimit))

	// Submission
	protected.POST("/analyze", handler.Analyze(mgr))

	// Status polling + maintenance
	protected.GET("/analysis/:id", handler.Status(st))
	protected.DELETE("/analysis/:id", handler.Delete(st))
	protected.GET("/analyses", handler.List(st))

	// Report artifact
	protected.GET("/download/:id", handler.Download(st))

	return r
}

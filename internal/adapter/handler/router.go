package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/leadinsights/fireflies-analyzer/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg                *config.Config
	analysisController *AnalysisController
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, analysisController *AnalysisController) *Router {
	return &Router{
		cfg:                cfg,
		analysisController: analysisController,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	e.GET("/health", rt.healthCheck)

	v1 := e.Group("/v1")
	rt.setupAnalysisRoutes(v1)
}

// setupAnalysisRoutes configures the analysis endpoints
func (rt *Router) setupAnalysisRoutes(g *echo.Group) {
	g.POST("/analyze", rt.analysisController.Analyze)
	g.GET("/hosts", rt.analysisController.Hosts)
	g.GET("/config/status", rt.analysisController.ConfigStatus)
	g.GET("/exports/:file", rt.analysisController.DownloadExport)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": rt.cfg.Server.Environment,
	})
}

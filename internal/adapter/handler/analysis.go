package handler

import (
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/leadinsights/fireflies-analyzer/errors"
	"github.com/leadinsights/fireflies-analyzer/internal/adapter/export"
	"github.com/leadinsights/fireflies-analyzer/internal/domain/entities"
	"github.com/leadinsights/fireflies-analyzer/internal/usecase/analysis"
	"github.com/leadinsights/fireflies-analyzer/pkg/config"
)

// AnalysisController exposes the analysis pipeline over HTTP
type AnalysisController struct {
	svc      analysis.Service
	exporter *export.Exporter
	cfg      *config.Config
	logger   *zap.Logger
}

// NewAnalysisController creates a new analysis controller
func NewAnalysisController(svc analysis.Service, exporter *export.Exporter, cfg *config.Config, logger *zap.Logger) *AnalysisController {
	return &AnalysisController{svc: svc, exporter: exporter, cfg: cfg, logger: logger}
}

// AnalyzeRequest selects the meetings to analyze and the export target
type AnalyzeRequest struct {
	Period       string   `json:"period" validate:"required"`
	HostEmail    string   `json:"host_email"`
	ExcludeHosts []string `json:"exclude_hosts"`
	ExportFormat string   `json:"export_format" validate:"omitempty,oneof=markdown json excel none"`
	WithSummary  bool     `json:"with_summary"`
	Limit        int      `json:"limit" validate:"omitempty,min=1"`
}

// AnalyzeResponse carries the run outcome
type AnalyzeResponse struct {
	Result     *entities.AnalysisResult `json:"result"`
	ExportPath string                   `json:"export_path,omitempty"`
	Summary    string                   `json:"summary,omitempty"`
}

// Analyze runs the full pipeline and optionally exports the result
func (ac *AnalysisController) Analyze(c echo.Context) error {
	var req AnalyzeRequest
	if err := c.Bind(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument("invalid request body"))
	}
	if err := c.Validate(&req); err != nil {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument(err.Error()))
	}

	ctx := c.Request().Context()

	result, err := ac.svc.Run(ctx, analysis.RunOptions{
		Period:       req.Period,
		HostEmail:    req.HostEmail,
		ExcludeHosts: req.ExcludeHosts,
		Limit:        req.Limit,
	})
	if err != nil {
		return HandleError(ac.logger, c, err)
	}

	resp := AnalyzeResponse{Result: result}

	switch req.ExportFormat {
	case "markdown":
		resp.ExportPath, err = ac.exporter.ToMarkdown(result, "")
	case "json":
		resp.ExportPath, err = ac.exporter.ToJSON(result, "")
	case "excel":
		resp.ExportPath, err = ac.exporter.ToExcel(result, "")
	}
	if err != nil {
		return HandleError(ac.logger, c, err)
	}

	if req.WithSummary {
		summary, err := ac.svc.Summarize(ctx, result)
		if err != nil {
			// The run itself succeeded; report the result without summary
			ac.logger.Warn("analysis.summary.failed", zap.Error(err))
		} else {
			resp.Summary = summary
		}
	}

	return HandleSuccess(ac.logger, c, resp)
}

// Hosts lists distinct meeting hosts in a time period
func (ac *AnalysisController) Hosts(c echo.Context) error {
	period := c.QueryParam("period")
	if period == "" {
		period = "letzte_3_monate"
	}

	hosts, err := ac.svc.Hosts(c.Request().Context(), period)
	if err != nil {
		return HandleError(ac.logger, c, err)
	}

	return HandleSuccess(ac.logger, c, map[string]interface{}{
		"period": period,
		"hosts":  hosts,
	})
}

// ConfigStatus reports configuration readiness
func (ac *AnalysisController) ConfigStatus(c echo.Context) error {
	return HandleSuccess(ac.logger, c, ac.cfg.Validate())
}

// DownloadExport serves a previously written export file
func (ac *AnalysisController) DownloadExport(c echo.Context) error {
	name := c.Param("file")
	// Only plain filenames inside the export dir are served
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return HandleError(ac.logger, c, errors.ErrInvalidArgument("invalid export filename"))
	}
	return c.Attachment(filepath.Join(ac.exporter.Dir(), name), name)
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	apperrors "github.com/leadinsights/fireflies-analyzer/errors"
	"github.com/leadinsights/fireflies-analyzer/internal/adapter/export"
	"github.com/leadinsights/fireflies-analyzer/internal/domain/entities"
	"github.com/leadinsights/fireflies-analyzer/internal/usecase/analysis"
	"github.com/leadinsights/fireflies-analyzer/pkg/config"
	pkgvalidator "github.com/leadinsights/fireflies-analyzer/pkg/validator"
)

type stubService struct {
	result     *entities.AnalysisResult
	runErr     error
	summary    string
	summaryErr error
	hosts      []string
	hostsErr   error

	lastOpts analysis.RunOptions
}

func (s *stubService) Run(ctx context.Context, opts analysis.RunOptions) (*entities.AnalysisResult, error) {
	s.lastOpts = opts
	return s.result, s.runErr
}

func (s *stubService) Summarize(ctx context.Context, result *entities.AnalysisResult) (string, error) {
	return s.summary, s.summaryErr
}

func (s *stubService) Hosts(ctx context.Context, period string) ([]string, error) {
	return s.hosts, s.hostsErr
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = pkgvalidator.New()
	return e
}

func newTestController(t *testing.T, svc analysis.Service) *AnalysisController {
	t.Helper()
	exporter, err := export.NewExporter(t.TempDir())
	if err != nil {
		t.Fatalf("NewExporter failed: %v", err)
	}
	cfg := &config.Config{
		Fireflies: config.FirefliesConfig{APIKey: "ff"},
		AI:        config.AIConfig{Provider: "anthropic", AnthropicAPIKey: "sk"},
	}
	return NewAnalysisController(svc, exporter, cfg, zap.NewNop())
}

func TestAnalyzeEndpoint(t *testing.T) {
	svc := &stubService{result: entities.NewAnalysisResult(2, 30)}
	controller := newTestController(t, svc)
	e := newTestEcho()

	body := `{"period": "letzte_woche", "export_format": "json", "exclude_hosts": ["Max"]}`
	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := controller.Analyze(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Analyze failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	if svc.lastOpts.Period != "letzte_woche" {
		t.Errorf("period = %q", svc.lastOpts.Period)
	}
	if len(svc.lastOpts.ExcludeHosts) != 1 || svc.lastOpts.ExcludeHosts[0] != "Max" {
		t.Errorf("exclude_hosts = %v", svc.lastOpts.ExcludeHosts)
	}

	var resp struct {
		Data AnalyzeResponse `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Data.Result == nil || resp.Data.Result.MeetingsAnalyzed != 2 {
		t.Errorf("result = %+v", resp.Data.Result)
	}
	if resp.Data.ExportPath == "" {
		t.Error("export path missing for export_format=json")
	}
}

func TestAnalyzeMissingPeriod(t *testing.T) {
	controller := newTestController(t, &stubService{})
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := controller.Analyze(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAnalyzeInvalidExportFormat(t *testing.T) {
	controller := newTestController(t, &stubService{})
	e := newTestEcho()

	body := `{"period": "heute", "export_format": "pdf"}`
	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := controller.Analyze(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAnalyzeNoMeetings(t *testing.T) {
	controller := newTestController(t, &stubService{runErr: apperrors.ErrNoMeetings()})
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(`{"period": "heute"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := controller.Analyze(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404", rec.Code)
	}

	var body struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("bad error body: %v", err)
	}
	if body.Code != int(apperrors.ErrorCode_NO_MEETINGS) {
		t.Errorf("code = %d", body.Code)
	}
}

func TestAnalyzeSummaryFailureIsNotFatal(t *testing.T) {
	svc := &stubService{
		result:     entities.NewAnalysisResult(1, 10),
		summaryErr: apperrors.ErrAIAnalysisFailed(nil),
	}
	controller := newTestController(t, svc)
	e := newTestEcho()

	body := `{"period": "heute", "with_summary": true}`
	req := httptest.NewRequest(http.MethodPost, "/v1/analyze", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	if err := controller.Analyze(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Analyze returned error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Errorf("summary failure must not fail the request, status = %d", rec.Code)
	}
}

func TestHostsEndpoint(t *testing.T) {
	svc := &stubService{hosts: []string{"alice@agency.example"}}
	controller := newTestController(t, svc)
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/v1/hosts", nil)
	rec := httptest.NewRecorder()

	if err := controller.Hosts(e.NewContext(req, rec)); err != nil {
		t.Fatalf("Hosts failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var resp struct {
		Data struct {
			Period string   `json:"period"`
			Hosts  []string `json:"hosts"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if resp.Data.Period != "letzte_3_monate" {
		t.Errorf("default period = %q", resp.Data.Period)
	}
	if len(resp.Data.Hosts) != 1 {
		t.Errorf("hosts = %v", resp.Data.Hosts)
	}
}

func TestConfigStatusEndpoint(t *testing.T) {
	controller := newTestController(t, &stubService{})
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/v1/config/status", nil)
	rec := httptest.NewRecorder()

	if err := controller.ConfigStatus(e.NewContext(req, rec)); err != nil {
		t.Fatalf("ConfigStatus failed: %v", err)
	}

	var resp struct {
		Data config.Status `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("bad response body: %v", err)
	}
	if !resp.Data.Ready {
		t.Errorf("status = %+v", resp.Data)
	}
}

func TestDownloadExportRejectsTraversal(t *testing.T) {
	controller := newTestController(t, &stubService{})
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, "/v1/exports/x", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("file")
	c.SetParamValues("../secret.txt")

	if err := controller.DownloadExport(c); err != nil {
		t.Fatalf("DownloadExport returned error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

package export

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	apperrors "github.com/leadinsights/fireflies-analyzer/errors"
	"github.com/leadinsights/fireflies-analyzer/internal/domain/entities"
)

// filePrefix is the default basename for generated exports
const filePrefix = "analyse"

// Exporter writes analysis results to the export directory
type Exporter struct {
	dir string
}

// NewExporter creates an exporter rooted at dir, creating it if needed
func NewExporter(dir string) (*Exporter, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, apperrors.ErrExportFailed("", err)
	}
	return &Exporter{dir: dir}, nil
}

// Dir returns the export directory
func (e *Exporter) Dir() string {
	return e.dir
}

// generateFilename builds a timestamp-suffixed path inside the export dir
func (e *Exporter) generateFilename(prefix, extension string) string {
	timestamp := time.Now().Format("20060102_150405")
	return filepath.Join(e.dir, fmt.Sprintf("%s_%s.%s", prefix, timestamp, extension))
}

// resolvePath uses the caller's filename or generates one
func (e *Exporter) resolvePath(filename, extension string) string {
	if filename != "" {
		return filename
	}
	return e.generateFilename(filePrefix, extension)
}

// ToJSON writes the result as a JSON document and returns the file path
func (e *Exporter) ToJSON(result *entities.AnalysisResult, filename string) (string, error) {
	path := e.resolvePath(filename, "json")

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", apperrors.ErrExportFailed("json", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return "", apperrors.ErrExportFailed("json", err)
	}
	return path, nil
}

// ToMarkdown writes the result as a Markdown report and returns the file path
func (e *Exporter) ToMarkdown(result *entities.AnalysisResult, filename string) (string, error) {
	path := e.resolvePath(filename, "md")

	if err := os.WriteFile(path, []byte(BuildMarkdown(result)), 0o644); err != nil {
		return "", apperrors.ErrExportFailed("markdown", err)
	}
	return path, nil
}

// Package main provides the analyzer CLI entry point.
// analyzer fetches meeting transcripts from Fireflies.ai, analyzes the lead
// statements with an LLM provider and exports the resulting report.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/leadinsights/fireflies-analyzer/internal/adapter/export"
	"github.com/leadinsights/fireflies-analyzer/internal/infrastructure/cache"
	"github.com/leadinsights/fireflies-analyzer/internal/infrastructure/external/fireflies"
	"github.com/leadinsights/fireflies-analyzer/internal/usecase/analysis"
	pkgai "github.com/leadinsights/fireflies-analyzer/pkg/ai"
	"github.com/leadinsights/fireflies-analyzer/pkg/config"
	pkglogger "github.com/leadinsights/fireflies-analyzer/pkg/logger"
)

// CommandDeps holds injectable dependencies for the CLI commands
type CommandDeps struct {
	LoadConfig   func() (*config.Config, error)
	BuildService func(cfg *config.Config) (analysis.Service, error)
	BuildExport  func(cfg *config.Config) (*export.Exporter, error)
}

// DefaultDeps returns the production wiring
func DefaultDeps() *CommandDeps {
	return &CommandDeps{
		LoadConfig: config.Load,
		BuildService: func(cfg *config.Config) (analysis.Service, error) {
			logger, err := pkglogger.New(cfg.Server.Environment)
			if err != nil {
				return nil, err
			}
			provider, err := pkgai.NewProvider(&cfg.AI)
			if err != nil {
				return nil, err
			}
			client := fireflies.NewClient(&cfg.Fireflies)
			meetings := cache.NewMeetingStore(cfg.CacheTTL())
			return analysis.NewService(client, provider, meetings, cfg, logger), nil
		},
		BuildExport: func(cfg *config.Config) (*export.Exporter, error) {
			return export.NewExporter(cfg.Export.Dir)
		},
	}
}

func newRootCommand(deps *CommandDeps) *cobra.Command {
	root := &cobra.Command{
		Use:   "analyzer",
		Short: "Analysiert Meeting-Transkripte von Fireflies.ai",
		Long: `analyzer fetches meeting transcripts from Fireflies.ai, filters out the
host statements, runs an LLM analysis over the remaining lead statements
and exports the report as Markdown, JSON or Excel.

Examples:
  analyzer analyze --zeitraum letzte_woche --format markdown
  analyzer analyze -z letzter_monat -e "Max Mustermann" -f excel
  analyzer hosts --zeitraum letzte_3_monate
  analyzer config`,
		SilenceUsage: true,
	}

	root.AddCommand(newAnalyzeCommand(deps))
	root.AddCommand(newHostsCommand(deps))
	root.AddCommand(newConfigCommand(deps))
	return root
}

func main() {
	if err := newRootCommand(DefaultDeps()).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Fehler:", err)
		os.Exit(1)
	}
}

func mustLoad(deps *CommandDeps) *config.Config {
	cfg, err := deps.LoadConfig()
	if err != nil {
		log.Fatalf("Konfiguration konnte nicht geladen werden: %v", err)
	}
	return cfg
}

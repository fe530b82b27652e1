package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leadinsights/fireflies-analyzer/internal/domain/entities"
	"github.com/leadinsights/fireflies-analyzer/internal/usecase/analysis"
)

func newAnalyzeCommand(deps *CommandDeps) *cobra.Command {
	var (
		period       string
		hostEmail    string
		excludeHosts string
		exportFormat string
		output       string
		withSummary  bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Meetings abrufen, Lead-Aussagen analysieren und Report exportieren",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := mustLoad(deps)

			if status := cfg.Validate(); !status.Ready {
				for _, msg := range status.Messages {
					fmt.Fprintln(cmd.ErrOrStderr(), "⚠ ", msg)
				}
				return fmt.Errorf("Konfiguration unvollständig")
			}

			svc, err := deps.BuildService(cfg)
			if err != nil {
				return err
			}
			exporter, err := deps.BuildExport(cfg)
			if err != nil {
				return err
			}

			var exclude []string
			for _, name := range strings.Split(excludeHosts, ",") {
				if n := strings.TrimSpace(name); n != "" {
					exclude = append(exclude, n)
				}
			}

			fmt.Fprintln(cmd.OutOrStdout(), "Lade Meetings und analysiere Transkripte...")
			result, err := svc.Run(cmd.Context(), analysis.RunOptions{
				Period:       period,
				HostEmail:    hostEmail,
				ExcludeHosts: exclude,
			})
			if err != nil {
				return err
			}

			printResultSummary(cmd, result)

			var path string
			switch exportFormat {
			case "markdown":
				path, err = exporter.ToMarkdown(result, output)
			case "json":
				path, err = exporter.ToJSON(result, output)
			case "excel":
				path, err = exporter.ToExcel(result, output)
			case "none":
			default:
				return fmt.Errorf("unbekanntes Export-Format: %s", exportFormat)
			}
			if err != nil {
				return err
			}
			if path != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "\nReport exportiert: %s\n", path)
			}

			if withSummary {
				summary, err := svc.Summarize(cmd.Context(), result)
				if err != nil {
					fmt.Fprintln(cmd.ErrOrStderr(), "⚠  Executive Summary fehlgeschlagen:", err)
				} else {
					fmt.Fprintf(cmd.OutOrStdout(), "\n--- Executive Summary ---\n%s\n", summary)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&period, "zeitraum", "z", "letzte_woche",
		"Zeitraum: heute, letzte_woche, letzter_monat, letzte_3_monate")
	cmd.Flags().StringVar(&hostEmail, "host", "", "Filter nach Host-E-Mail")
	cmd.Flags().StringVarP(&excludeHosts, "exclude", "e", "", "Host-Namen zum Ausschließen (kommasepariert)")
	cmd.Flags().StringVarP(&exportFormat, "format", "f", "markdown", "Export-Format: markdown, excel, json, none")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output-Dateiname")
	cmd.Flags().BoolVar(&withSummary, "summary", false, "Executive Summary generieren")

	return cmd
}

// printResultSummary renders the run outcome as a compact console table
func printResultSummary(cmd *cobra.Command, result *entities.AnalysisResult) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out)
	fmt.Fprintln(out, "=== Analyse abgeschlossen ===")
	fmt.Fprintf(out, "Analysierte Meetings:  %d\n", result.MeetingsAnalyzed)
	fmt.Fprintf(out, "Lead-Aussagen:         %d\n", result.TotalLeadStatements)
	fmt.Fprintf(out, "Pain Points:           %d\n", len(result.PainPoints))
	fmt.Fprintf(out, "Fragen:                %d\n", len(result.Questions))
	fmt.Fprintf(out, "Einwände:              %d\n", len(result.Objections))
	fmt.Fprintf(out, "Sprachmuster:          %d\n", len(result.LanguagePatterns))

	if len(result.TopPainCategories) > 0 {
		categories := make([]string, 0, len(result.TopPainCategories))
		for cat := range result.TopPainCategories {
			categories = append(categories, cat)
		}
		sort.Slice(categories, func(i, j int) bool {
			if result.TopPainCategories[categories[i]] != result.TopPainCategories[categories[j]] {
				return result.TopPainCategories[categories[i]] > result.TopPainCategories[categories[j]]
			}
			return categories[i] < categories[j]
		})

		fmt.Fprintln(out, "\nTop Pain-Point-Kategorien:")
		for _, cat := range categories {
			fmt.Fprintf(out, "  %-20s %d\n", cat, result.TopPainCategories[cat])
		}
	}
}

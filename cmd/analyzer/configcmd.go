package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newConfigCommand(deps *CommandDeps) *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Konfigurationsstatus anzeigen",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := mustLoad(deps)
			status := cfg.Validate()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "=== Konfiguration ===")
			fmt.Fprintf(out, "Fireflies API:  %s\n", checkmark(status.FirefliesAPI))
			fmt.Fprintf(out, "AI Provider:    %s (%s)\n", checkmark(status.AIProvider), cfg.AI.Provider)
			fmt.Fprintf(out, "Export-Ordner:  %s\n", cfg.Export.Dir)
			fmt.Fprintf(out, "Bereit:         %s\n", checkmark(status.Ready))

			for _, msg := range status.Messages {
				fmt.Fprintln(out, "⚠ ", msg)
			}
			return nil
		},
	}
}

func checkmark(ok bool) string {
	if ok {
		return "✓"
	}
	return "✗"
}

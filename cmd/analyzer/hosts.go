package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHostsCommand(deps *CommandDeps) *cobra.Command {
	var period string

	cmd := &cobra.Command{
		Use:   "hosts",
		Short: "Alle Meeting-Hosts im Zeitraum auflisten",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := mustLoad(deps)

			svc, err := deps.BuildService(cfg)
			if err != nil {
				return err
			}

			hosts, err := svc.Hosts(cmd.Context(), period)
			if err != nil {
				return err
			}

			if len(hosts) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "Keine Hosts im gewählten Zeitraum gefunden.")
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Hosts (%s):\n", period)
			for _, h := range hosts {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s\n", h)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&period, "zeitraum", "z", "letzte_3_monate",
		"Zeitraum: heute, letzte_woche, letzter_monat, letzte_3_monate")

	return cmd
}

package main

import (
	"fmt"

	"internist/internal/config"

	"github.com/spf13/cobra"
)

// domainsCommand lists the keys of the configured registry.
func domainsCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "domains",
		Short: "Lists the domains known to the registry",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, d := range getRegistry(cmd.Context(), cfg).Domains() {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), d)
			}
		},
	}
}

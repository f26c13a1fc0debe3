package main

import (
	"fmt"

	"github.com/aussiebroadwan/hrms/pkg/hrmsapi"
	"github.com/spf13/cobra"
)

func newHealthCmd() *cobra.Command {
	var url string
	cmd := &cobra.Command{
		Use:   "health",
		Short: "Check a running server's readiness",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			h, err := hrmsapi.NewClient(url).Readyz(cmd.Context())
			if h != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s uptime=%s\n", h.Status, h.Version, h.Uptime)
			}
			return err
		},
	}
	cmd.Flags().StringVar(&url, "url", "http://localhost:8080", "server base URL")
	return cmd
}

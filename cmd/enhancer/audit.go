package main

import (
	"encoding/json"
	"fmt"
	"time"

	"portfolio-enhancer-api/core/audit"
	coreconfig "portfolio-enhancer-api/core/config"
	"portfolio-enhancer-api/core/interfaces"
	stdhttp "portfolio-enhancer-api/infrastructure/http/standard"

	"github.com/spf13/cobra"
)

// NewAuditCmd creates the audit command.
func NewAuditCmd() *cobra.Command {
	var (
		targetURL string
		keywords  []string
	)

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Audit a live page for SEO metadata and keyword density",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)

			deps := interfaces.Dependencies{
				Logger:     logger,
				HTTPClient: stdhttp.NewClient(30 * time.Second),
			}

			tracked := keywords
			if len(tracked) == 0 {
				tracked = coreconfig.DefaultOptions().Keywords
			}

			service := audit.NewService(deps, tracked)
			result, err := service.AuditPage(cmd.Context(), targetURL)
			if err != nil {
				return fmt.Errorf("audit failed: %w", err)
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))

			return nil
		},
	}

	cmd.Flags().StringVar(&targetURL, "url", "", "Page URL to audit (required)")
	cmd.Flags().StringSliceVar(&keywords, "keywords", nil, "Keywords to track (defaults to the built-in list)")
	_ = cmd.MarkFlagRequired("url")

	return cmd
}

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	coreconfig "portfolio-enhancer-api/core/config"
	"portfolio-enhancer-api/core/enhancer"
	"portfolio-enhancer-api/core/interfaces"
	"portfolio-enhancer-api/core/schema"
	"portfolio-enhancer-api/core/sitemap"
	stdhttp "portfolio-enhancer-api/infrastructure/http/standard"
	logrusadapter "portfolio-enhancer-api/infrastructure/logger/logrus"
	"portfolio-enhancer-api/infrastructure/notify/ping"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"
)

// NewEnhanceCmd creates the enhance command.
func NewEnhanceCmd() *cobra.Command {
	var (
		inPath     string
		outPath    string
		siteURL    string
		sitemapOut string
		feedURL    string
		doPing     bool
		skipHidden bool
	)

	cmd := &cobra.Command{
		Use:   "enhance",
		Short: "Run the enhancement pass over an HTML file",
		Long: `Enhance reads an HTML file, runs the full annotation sequence, and writes
the enhanced markup. With --sitemap-out it also generates an XML sitemap
from the page's links, optionally merged with a site feed. With --ping it
dispatches a fire-and-forget sitemap notification to Google.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(cmd)

			raw, err := os.ReadFile(inPath)
			if err != nil {
				return fmt.Errorf("failed to read %s: %w", inPath, err)
			}

			doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(raw)))
			if err != nil {
				return fmt.Errorf("failed to parse %s: %w", inPath, err)
			}

			deps := interfaces.Dependencies{
				Logger:     logger,
				HTTPClient: stdhttp.NewClient(30 * time.Second),
			}
			if doPing && siteURL != "" {
				deps.Notifier = ping.NewNotifier(deps.HTTPClient, logger)
			}

			opts := coreconfig.NewOptions(coreconfig.WithSiteURL(siteURL))
			if skipHidden {
				coreconfig.WithoutHiddenContent()(&opts)
			}

			service := enhancer.NewService(deps, opts)
			report, err := service.Enhance(cmd.Context(), doc)
			if err != nil {
				return err
			}

			// Structured-data emissions are independent top-level calls with
			// no ordering dependency on the pass above.
			schemaService := schema.NewService(deps)
			schemaService.InjectPerson(doc, schema.DefaultPerson(siteURL))
			schemaService.InjectBreadcrumbs(doc, schema.DefaultBreadcrumbs(siteURL))
			schemaService.InjectFAQ(doc, schema.DefaultFAQ())

			enhanced, err := doc.Html()
			if err != nil {
				return fmt.Errorf("failed to serialize enhanced page: %w", err)
			}

			if err := writeOutput(outPath, []byte(enhanced)); err != nil {
				return err
			}

			if sitemapOut != "" {
				if err := writeSitemap(cmd, deps, doc, siteURL, feedURL, sitemapOut); err != nil {
					return err
				}
			}

			summary, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), string(summary))

			return nil
		},
	}

	cmd.Flags().StringVar(&inPath, "in", "", "Input HTML file (required)")
	cmd.Flags().StringVar(&outPath, "out", "-", "Output file, - for stdout")
	cmd.Flags().StringVar(&siteURL, "site-url", "", "Absolute site origin, e.g. https://example.com")
	cmd.Flags().StringVar(&sitemapOut, "sitemap-out", "", "Write an XML sitemap to this path")
	cmd.Flags().StringVar(&feedURL, "feed", "", "Site feed URL to merge into the sitemap")
	cmd.Flags().BoolVar(&doPing, "ping", false, "Dispatch the sitemap ping (requires --site-url)")
	cmd.Flags().BoolVar(&skipHidden, "skip-hidden", false, "Skip the hidden promotional block")
	_ = cmd.MarkFlagRequired("in")

	return cmd
}

// newLogger builds the CLI logger honoring the global verbose flag
func newLogger(cmd *cobra.Command) *logrusadapter.Logger {
	level := "info"
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}
	return logrusadapter.NewWithOutput(cmd.ErrOrStderr(), level)
}

// writeOutput writes data to path, or stdout when path is "-"
func writeOutput(path string, data []byte) error {
	if path == "-" {
		_, err := os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// writeSitemap builds and writes the XML sitemap for the page's links
func writeSitemap(cmd *cobra.Command, deps interfaces.Dependencies, doc *goquery.Document, siteURL, feedURL, outPath string) error {
	if siteURL == "" {
		return fmt.Errorf("--sitemap-out requires --site-url")
	}

	service := sitemap.NewService(deps)
	set, err := service.Build(siteURL, enhancer.CollectLinks(doc))
	if err != nil {
		return err
	}

	if feedURL != "" {
		if err := service.MergeFeed(cmd.Context(), set, feedURL); err != nil {
			deps.Logger.Warn("Feed merge failed", map[string]interface{}{
				"feed_url": feedURL,
				"error":    err.Error(),
			})
		}
	}

	body, err := sitemap.Marshal(set)
	if err != nil {
		return err
	}

	return writeOutput(outPath, body)
}

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the enhancer.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "enhancer",
		Short: "SEO metadata injector for static portfolio pages",
		Long: `Enhancer runs a fixed sequence of best-effort annotation passes over a
loaded HTML page: structural ARIA/microdata annotation, hidden-content
injection, lazy-loading rewrites, an in-page sitemap block, JSON-LD
structured data, and a fire-and-forget search-engine ping.

The pass never alters what a human visitor sees and degrades gracefully
when expected elements are absent.`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	cmd.AddCommand(NewEnhanceCmd())
	cmd.AddCommand(NewAuditCmd())
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

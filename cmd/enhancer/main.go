// Package main provides the entry point for the portfolio page enhancer CLI.
//
// The enhancer injects SEO metadata and accessibility hints into static
// portfolio pages: microdata annotation, lazy-loading rewrites, hidden
// sitemap blocks, JSON-LD structured data, and a best-effort search-engine
// ping.
//
// Usage:
//
//	enhancer enhance --in index.html --out enhanced.html
//	enhancer audit --url https://example.com
//	enhancer serve
//
// See --help for all available options.
package main

// main is the entry point for the enhancer CLI.
func main() {
	Execute()
}

// ABOUTME: Domain models for the page enhancement pass
// ABOUTME: Transient report values derived from the live document at run time

package domain

// EnhancementReport summarizes a single enhancement pass over a page.
// The report is informational only; nothing in the system acts on it.
type EnhancementReport struct {
	// Title is the document title at the time of the pass
	Title string `json:"title"`

	// PortfolioEntries is the number of portfolio entries annotated
	PortfolioEntries int `json:"portfolio_entries"`

	// ImagesDeferred is the number of images rewritten for lazy loading
	ImagesDeferred int `json:"images_deferred"`

	// SitemapLinks is the number of unique hrefs in the generated sitemap block
	SitemapLinks int `json:"sitemap_links"`

	// PrioritySections lists the section ids that were present and tagged
	PrioritySections []string `json:"priority_sections"`

	// KeywordCounts maps each tracked keyword to its occurrence count in
	// the page's visible text. Diagnostic only; it has no consumer.
	KeywordCounts map[string]int `json:"keyword_counts"`

	// Notified reports whether an indexing signal was dispatched
	Notified bool `json:"notified"`
}

// ABOUTME: Request DTOs for the enhance and sitemap endpoints
// ABOUTME: Validates inbound payloads before they reach the core services

package requests

import "portfolio-enhancer-api/core/errors"

// EnhanceRequest is the payload for POST /enhance
type EnhanceRequest struct {
	// HTML is the page markup to enhance
	HTML string `json:"html"`

	// SiteURL is the absolute site origin; optional, enables the
	// indexing signal and absolute structured-data URLs
	SiteURL string `json:"site_url,omitempty"`

	// SkipHiddenContent disables the off-screen promotional block
	SkipHiddenContent bool `json:"skip_hidden_content,omitempty"`
}

// Validate checks the request payload
func (r *EnhanceRequest) Validate() error {
	if r.HTML == "" {
		return &errors.ValidationError{Field: "html", Message: "cannot be empty"}
	}
	if len(r.HTML) > 5*1024*1024 {
		return &errors.ValidationError{Field: "html", Message: "exceeds the 5MB limit"}
	}
	return nil
}

// SitemapRequest is the payload for POST /sitemap
type SitemapRequest struct {
	// HTML is the page markup whose links seed the sitemap
	HTML string `json:"html"`

	// SiteURL is the absolute site origin links are resolved against
	SiteURL string `json:"site_url"`

	// FeedURL optionally merges the site feed's item URLs
	FeedURL string `json:"feed_url,omitempty"`
}

// Validate checks the request payload
func (r *SitemapRequest) Validate() error {
	if r.HTML == "" {
		return &errors.ValidationError{Field: "html", Message: "cannot be empty"}
	}
	if r.SiteURL == "" {
		return &errors.ValidationError{Field: "site_url", Message: "cannot be empty"}
	}
	return nil
}

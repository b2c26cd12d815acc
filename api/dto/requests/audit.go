package requests

import (
	"net/url"

	"portfolio-enhancer-api/core/errors"
)

// AuditRequest is the payload for POST /audit
type AuditRequest struct {
	// URL is the live page to audit
	URL string `json:"url"`
}

// Validate checks the request payload
func (r *AuditRequest) Validate() error {
	if r.URL == "" {
		return &errors.ValidationError{Field: "url", Message: "cannot be empty"}
	}

	parsed, err := url.Parse(r.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return &errors.ValidationError{Field: "url", Message: "must be absolute"}
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return &errors.ValidationError{Field: "url", Message: "scheme must be http or https"}
	}

	return nil
}

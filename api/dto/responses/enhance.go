// ABOUTME: Response DTOs for the enhancer API
// ABOUTME: Shapes the wire representation of core results

package responses

import "portfolio-enhancer-api/core/domain"

// EnhanceResponse is the body returned by POST /enhance
type EnhanceResponse struct {
	// HTML is the enhanced page markup
	HTML string `json:"html"`

	// Report summarizes the enhancement pass
	Report *domain.EnhancementReport `json:"report"`

	// Cached reports whether the result came from cache
	Cached bool `json:"cached"`
}

// ErrorResponse is the standard error body
type ErrorResponse struct {
	Error string `json:"error"`
}

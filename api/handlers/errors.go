// ABOUTME: Shared response helpers for API handlers
// ABOUTME: JSON encoding and error body writing

package handlers

import (
	"encoding/json"
	"net/http"

	"portfolio-enhancer-api/api/dto/responses"
)

// writeJSON writes v as a JSON response with the given status
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes a standard JSON error body
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, responses.ErrorResponse{Error: message})
}

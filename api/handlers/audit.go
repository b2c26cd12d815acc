// ABOUTME: HTTP handler exposing the remote page audit service
// ABOUTME: Fetches a live URL and returns its SEO audit result

package handlers

import (
	"encoding/json"
	"net/http"

	"portfolio-enhancer-api/api/dto/requests"
	"portfolio-enhancer-api/core/audit"
	coreerrors "portfolio-enhancer-api/core/errors"
	"portfolio-enhancer-api/core/interfaces"
)

// AuditHandler handles page audit requests
type AuditHandler struct {
	service *audit.Service
	logger  interfaces.Logger
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(service *audit.Service, logger interfaces.Logger) *AuditHandler {
	return &AuditHandler{
		service: service,
		logger:  logger,
	}
}

// ServeHTTP handles POST /audit
func (h *AuditHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req requests.AuditRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.service.AuditPage(r.Context(), req.URL)
	if err != nil {
		if h.logger != nil {
			h.logger.Warn("Audit failed", map[string]interface{}{
				"url":   req.URL,
				"error": err.Error(),
			})
		}
		status := http.StatusInternalServerError
		if coreerrors.IsExternalAPI(err) {
			status = http.StatusBadGateway
		}
		writeError(w, status, "failed to audit page")
		return
	}

	writeJSON(w, http.StatusOK, result)
}

// ABOUTME: Tests for the audit HTTP handler
// ABOUTME: Covers request validation and upstream failure mapping

package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"portfolio-enhancer-api/core/audit"
	"portfolio-enhancer-api/core/interfaces"
)

func newAuditHandler() *AuditHandler {
	logger := &mockLogger{}
	service := audit.NewService(interfaces.Dependencies{Logger: logger}, []string{"seo"})
	return NewAuditHandler(service, logger)
}

func TestAuditHandler_RejectsRelativeURL(t *testing.T) {
	handler := newAuditHandler()

	req := httptest.NewRequest(http.MethodPost, "/audit", strings.NewReader(`{"url":"/about"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestAuditHandler_UnreachableTarget(t *testing.T) {
	handler := newAuditHandler()

	req := httptest.NewRequest(http.MethodPost, "/audit", strings.NewReader(`{"url":"http://127.0.0.1:1/"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}

func TestAuditHandler_MethodNotAllowed(t *testing.T) {
	handler := newAuditHandler()

	req := httptest.NewRequest(http.MethodGet, "/audit", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

// ABOUTME: Tests for the enhance HTTP handler
// ABOUTME: Covers enhancement output, validation errors, and cache behavior

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"portfolio-enhancer-api/api/dto/responses"
	"portfolio-enhancer-api/core/interfaces"
	"portfolio-enhancer-api/infrastructure/cache/memory"
)

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, fields map[string]interface{}) {}
func (m *mockLogger) Info(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Warn(msg string, fields map[string]interface{})  {}
func (m *mockLogger) Error(msg string, fields map[string]interface{}) {}

const testPage = `<html><head><title>Mansoor Ahmad</title></head><body>
<main><h1>SEO Specialist</h1></main>
<nav><a href="/about">About</a><a href="/contact">Contact</a></nav>
<img src="/hero.jpg" alt="Hero">
<div id="about"></div>
</body></html>`

func postEnhance(t *testing.T, handler http.Handler, payload map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/enhance", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestEnhanceHandler_EnhancesPage(t *testing.T) {
	deps := interfaces.Dependencies{Logger: &mockLogger{}}
	handler := NewEnhanceHandler(deps)

	rec := postEnhance(t, handler, map[string]interface{}{
		"html":     testPage,
		"site_url": "https://example.com",
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", rec.Code, rec.Body.String())
	}

	var resp responses.EnhanceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Report == nil {
		t.Fatal("response should include a report")
	}
	if resp.Report.Title != "Mansoor Ahmad" {
		t.Errorf("report title = %q, want %q", resp.Report.Title, "Mansoor Ahmad")
	}
	if resp.Cached {
		t.Error("first response should not be marked cached")
	}

	// The serialized markup carries every enhancement pass.
	for _, want := range []string{
		`data-seo-enhanced="true"`,
		`role="main"`,
		`data-src="/hero.jpg"`,
		`<noscript><img src="/hero.jpg"`,
		`class="dynamic-sitemap"`,
		`data-priority="1"`,
		`class="seo-boost"`,
	} {
		if !strings.Contains(resp.HTML, want) {
			t.Errorf("enhanced HTML missing %q", want)
		}
	}

	if got := strings.Count(resp.HTML, `application/ld+json`); got != 3 {
		t.Errorf("ld+json blocks = %d, want 3", got)
	}
}

func TestEnhanceHandler_SkipHiddenContent(t *testing.T) {
	deps := interfaces.Dependencies{Logger: &mockLogger{}}
	handler := NewEnhanceHandler(deps)

	rec := postEnhance(t, handler, map[string]interface{}{
		"html":                testPage,
		"site_url":            "https://example.com",
		"skip_hidden_content": true,
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var resp responses.EnhanceResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if strings.Contains(resp.HTML, `class="seo-boost"`) {
		t.Error("promo block should be absent when skip_hidden_content is set")
	}
}

func TestEnhanceHandler_CacheHit(t *testing.T) {
	deps := interfaces.Dependencies{
		Logger: &mockLogger{},
		Cache:  memory.NewMemoryCache(time.Minute, time.Minute),
	}
	handler := NewEnhanceHandler(deps)

	payload := map[string]interface{}{
		"html":     testPage,
		"site_url": "https://example.com",
	}

	first := postEnhance(t, handler, payload)
	if first.Code != http.StatusOK {
		t.Fatalf("first request status = %d, want 200", first.Code)
	}

	second := postEnhance(t, handler, payload)
	if second.Code != http.StatusOK {
		t.Fatalf("second request status = %d, want 200", second.Code)
	}

	var resp responses.EnhanceResponse
	if err := json.Unmarshal(second.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if !resp.Cached {
		t.Error("second identical request should be served from cache")
	}
}

func TestEnhanceHandler_MethodNotAllowed(t *testing.T) {
	handler := NewEnhanceHandler(interfaces.Dependencies{Logger: &mockLogger{}})

	req := httptest.NewRequest(http.MethodGet, "/enhance", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want 405", rec.Code)
	}
}

func TestEnhanceHandler_InvalidBody(t *testing.T) {
	handler := NewEnhanceHandler(interfaces.Dependencies{Logger: &mockLogger{}})

	req := httptest.NewRequest(http.MethodPost, "/enhance", strings.NewReader("{not json"))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestEnhanceHandler_EmptyHTML(t *testing.T) {
	handler := NewEnhanceHandler(interfaces.Dependencies{Logger: &mockLogger{}})

	rec := postEnhance(t, handler, map[string]interface{}{"html": ""})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

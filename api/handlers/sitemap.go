// ABOUTME: HTTP handler generating XML sitemaps from submitted page markup
// ABOUTME: Optionally merges the site feed's item URLs into the urlset

package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"portfolio-enhancer-api/api/dto/requests"
	"portfolio-enhancer-api/core/enhancer"
	"portfolio-enhancer-api/core/interfaces"
	"portfolio-enhancer-api/core/sitemap"

	"github.com/PuerkitoBio/goquery"
)

// SitemapHandler handles sitemap generation requests
type SitemapHandler struct {
	deps interfaces.Dependencies
}

// NewSitemapHandler creates a new sitemap handler
func NewSitemapHandler(deps interfaces.Dependencies) *SitemapHandler {
	return &SitemapHandler{
		deps: deps,
	}
}

// ServeHTTP handles POST /sitemap
func (h *SitemapHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req requests.SitemapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(req.HTML))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to parse html")
		return
	}

	service := sitemap.NewService(h.deps)
	set, err := service.Build(req.SiteURL, enhancer.CollectLinks(doc))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if req.FeedURL != "" {
		if err := service.MergeFeed(r.Context(), set, req.FeedURL); err != nil {
			// Feed entries are an enrichment; the page-derived sitemap
			// is still valid without them.
			if h.deps.Logger != nil {
				h.deps.Logger.Warn("Feed merge failed", map[string]interface{}{
					"feed_url": req.FeedURL,
					"error":    err.Error(),
				})
			}
		}
	}

	body, err := sitemap.Marshal(set)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to serialize sitemap")
		return
	}

	w.Header().Set("Content-Type", "application/xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// ABOUTME: HTTP handler exposing the page enhancement pass
// ABOUTME: Accepts page markup and returns enhanced markup plus a report

package handlers

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"portfolio-enhancer-api/api/dto/requests"
	"portfolio-enhancer-api/api/dto/responses"
	"portfolio-enhancer-api/core/config"
	"portfolio-enhancer-api/core/enhancer"
	"portfolio-enhancer-api/core/interfaces"
	"portfolio-enhancer-api/core/schema"

	"github.com/PuerkitoBio/goquery"
)

const enhanceCacheTTL = 1 * time.Hour

// EnhanceHandler handles page enhancement requests
type EnhanceHandler struct {
	deps interfaces.Dependencies
}

// NewEnhanceHandler creates a new enhance handler
func NewEnhanceHandler(deps interfaces.Dependencies) *EnhanceHandler {
	return &EnhanceHandler{
		deps: deps,
	}
}

// ServeHTTP handles POST /enhance
func (h *EnhanceHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req requests.EnhanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := req.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	ctx := r.Context()
	cacheKey := enhanceCacheKey(&req)

	if h.deps.Cache != nil {
		if data, err := h.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var cached responses.EnhanceResponse
			if err := json.Unmarshal(data, &cached); err == nil {
				cached.Cached = true
				writeJSON(w, http.StatusOK, cached)
				return
			}
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(req.HTML))
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to parse html")
		return
	}

	opts := config.NewOptions(config.WithSiteURL(req.SiteURL))
	if req.SkipHiddenContent {
		config.WithoutHiddenContent()(&opts)
	}

	service := enhancer.NewService(h.deps, opts)
	report, err := service.Enhance(ctx, doc)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "enhancement failed")
		return
	}

	// Structured-data emissions are independent top-level calls.
	schemaService := schema.NewService(h.deps)
	schemaService.InjectPerson(doc, schema.DefaultPerson(req.SiteURL))
	schemaService.InjectBreadcrumbs(doc, schema.DefaultBreadcrumbs(req.SiteURL))
	schemaService.InjectFAQ(doc, schema.DefaultFAQ())

	enhanced, err := doc.Html()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to serialize html")
		return
	}

	resp := responses.EnhanceResponse{
		HTML:   enhanced,
		Report: report,
	}

	if h.deps.Cache != nil {
		if data, err := json.Marshal(resp); err == nil {
			_ = h.deps.Cache.Set(ctx, cacheKey, data, enhanceCacheTTL)
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

// enhanceCacheKey derives a stable cache key from the request content
func enhanceCacheKey(req *requests.EnhanceRequest) string {
	h := sha256.New()
	h.Write([]byte(req.HTML))
	h.Write([]byte(req.SiteURL))
	if req.SkipHiddenContent {
		h.Write([]byte("skip-hidden"))
	}
	return "enhance:" + hex.EncodeToString(h.Sum(nil))
}

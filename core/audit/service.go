// ABOUTME: Remote page audit service fetching a live URL with colly
// ABOUTME: Produces metadata presence checks and a keyword density report

package audit

import (
	"bytes"
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"portfolio-enhancer-api/core/density"
	"portfolio-enhancer-api/core/domain"
	coreerrors "portfolio-enhancer-api/core/errors"
	"portfolio-enhancer-api/core/interfaces"

	readability "github.com/go-shiori/go-readability"
	"github.com/gocolly/colly"
)

const (
	auditUserAgent = "PortfolioEnhancer/1.0 (+https://github.com/portfolio-enhancer-api)"
	auditCacheTTL  = 1 * time.Hour
)

// Service audits live pages for SEO metadata and keyword density
type Service struct {
	deps     interfaces.Dependencies
	keywords []string
}

// NewService creates a new audit service tracking the given keywords
func NewService(deps interfaces.Dependencies, keywords []string) *Service {
	return &Service{
		deps:     deps,
		keywords: keywords,
	}
}

// AuditPage fetches targetURL and returns its audit result.
// Results are cached through the Cache port when one is configured.
func (s *Service) AuditPage(ctx context.Context, targetURL string) (*domain.AuditResult, error) {
	if s.deps.Cache != nil {
		cacheKey := "audit:" + targetURL
		if data, err := s.deps.Cache.Get(ctx, cacheKey); err == nil && data != nil {
			var result domain.AuditResult
			if err := json.Unmarshal(data, &result); err == nil {
				return &result, nil
			}
		}
	}

	result, err := s.fetchAndAnalyze(targetURL)
	if err != nil {
		return nil, err
	}

	if s.deps.Cache != nil {
		cacheKey := "audit:" + targetURL
		if data, err := json.Marshal(result); err == nil {
			_ = s.deps.Cache.Set(ctx, cacheKey, data, auditCacheTTL)
		}
	}

	return result, nil
}

// fetchAndAnalyze performs the actual page fetch and analysis
func (s *Service) fetchAndAnalyze(targetURL string) (*domain.AuditResult, error) {
	c := colly.NewCollector(
		colly.UserAgent(auditUserAgent),
		colly.MaxBodySize(5*1024*1024),
		colly.Async(false),
		colly.AllowURLRevisit(),
	)
	c.SetRequestTimeout(15 * time.Second)

	result := &domain.AuditResult{
		URL:           targetURL,
		KeywordCounts: map[string]int{},
	}

	c.OnHTML("head", func(e *colly.HTMLElement) {
		result.Title = strings.TrimSpace(e.DOM.Find("title").First().Text())

		if desc, exists := e.DOM.Find(`meta[name="description"]`).First().Attr("content"); exists {
			result.Description = desc
		}

		if og, exists := e.DOM.Find(`meta[property="og:image"]`).First().Attr("content"); exists {
			result.OGImage = og
		}
	})

	c.OnHTML("img", func(e *colly.HTMLElement) {
		result.ImageCount++
		if strings.TrimSpace(e.Attr("alt")) == "" {
			result.ImagesMissingAlt++
		}
	})

	c.OnResponse(func(r *colly.Response) {
		pageURL, err := url.Parse(targetURL)
		if err != nil {
			return
		}

		article, err := readability.FromReader(bytes.NewReader(r.Body), pageURL)
		if err != nil {
			if s.deps.Logger != nil {
				s.deps.Logger.Debug("Readability extraction failed", map[string]interface{}{
					"url":   targetURL,
					"error": err.Error(),
				})
			}
			return
		}

		result.WordCount = density.WordCount(article.TextContent)
		result.KeywordCounts = density.Count(article.TextContent, s.keywords)
	})

	var visitErr error
	c.OnError(func(r *colly.Response, err error) {
		visitErr = &coreerrors.ExternalAPIError{
			StatusCode: r.StatusCode,
			Message:    err.Error(),
			API:        "page fetch",
		}
	})

	if err := c.Visit(targetURL); err != nil {
		if visitErr != nil {
			return nil, visitErr
		}
		return nil, &coreerrors.ExternalAPIError{Message: err.Error(), API: "page fetch"}
	}
	if visitErr != nil {
		return nil, visitErr
	}

	return result, nil
}

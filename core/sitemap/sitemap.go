// ABOUTME: XML sitemap generation from collected page links and site feeds
// ABOUTME: Standard urlset serialization pinged to crawlers by the enhancer

package sitemap

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/url"
	"strings"

	"portfolio-enhancer-api/core/interfaces"

	"github.com/mmcdole/gofeed"
)

// xmlns is the sitemap protocol namespace.
const xmlns = "http://www.sitemaps.org/schemas/sitemap/0.9"

// URLSet represents the structure of an XML sitemap.
type URLSet struct {
	XMLName xml.Name `xml:"urlset"`
	Xmlns   string   `xml:"xmlns,attr"`
	URLs    []URL    `xml:"url"`
}

// URL represents a single URL entry in the sitemap.
type URL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

// Service builds XML sitemaps for a site.
type Service struct {
	deps interfaces.Dependencies
}

// NewService creates a new sitemap service
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{
		deps: deps,
	}
}

// Build resolves the given hrefs against siteURL and returns a urlset of
// the on-site pages among them, deduplicated in first-occurrence order.
// Fragment-only and off-site links are skipped; malformed hrefs are skipped
// without failing the build.
func (s *Service) Build(siteURL string, hrefs []string) (*URLSet, error) {
	base, err := url.Parse(siteURL)
	if err != nil || base.Host == "" {
		return nil, fmt.Errorf("invalid site URL %q", siteURL)
	}

	set := &URLSet{Xmlns: xmlns}
	seen := make(map[string]struct{})

	add := func(loc string) {
		if _, dup := seen[loc]; dup {
			return
		}
		seen[loc] = struct{}{}
		set.URLs = append(set.URLs, URL{Loc: loc, ChangeFreq: "monthly"})
	}

	add(strings.TrimRight(base.String(), "/") + "/")

	for _, href := range hrefs {
		ref, err := url.Parse(href)
		if err != nil {
			if s.deps.Logger != nil {
				s.deps.Logger.Debug("Skipping malformed href", map[string]interface{}{
					"href": href,
				})
			}
			continue
		}

		// Same-page fragments do not get their own sitemap entry.
		if ref.Path == "" && ref.Host == "" {
			continue
		}

		resolved := base.ResolveReference(ref)
		if resolved.Host != base.Host {
			continue
		}
		resolved.Fragment = ""

		add(resolved.String())
	}

	return set, nil
}

// MergeFeed fetches the site's RSS/Atom feed and appends its item URLs to
// the urlset, deduplicated against existing entries. Feed fetch or parse
// failures leave the set unchanged and are reported to the caller.
func (s *Service) MergeFeed(ctx context.Context, set *URLSet, feedURL string) error {
	if set == nil {
		return fmt.Errorf("urlset cannot be nil")
	}

	parser := gofeed.NewParser()
	feed, err := parser.ParseURLWithContext(feedURL, ctx)
	if err != nil {
		return fmt.Errorf("failed to parse feed %s: %w", feedURL, err)
	}

	seen := make(map[string]struct{}, len(set.URLs))
	for _, u := range set.URLs {
		seen[u.Loc] = struct{}{}
	}

	for _, item := range feed.Items {
		if item.Link == "" {
			continue
		}
		if _, dup := seen[item.Link]; dup {
			continue
		}
		seen[item.Link] = struct{}{}

		entry := URL{Loc: item.Link, ChangeFreq: "weekly"}
		if item.PublishedParsed != nil {
			entry.LastMod = item.PublishedParsed.Format("2006-01-02")
		}
		set.URLs = append(set.URLs, entry)
	}

	return nil
}

// Marshal serializes the urlset as a standalone XML document.
func Marshal(set *URLSet) ([]byte, error) {
	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sitemap: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

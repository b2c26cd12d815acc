// ABOUTME: Priority tagging and indexing signal dispatch passes
// ABOUTME: Marks known sections and fires the best-effort sitemap ping

package enhancer

import (
	"context"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// enhancedFlagAttr marks the document root once the signal step has run.
const enhancedFlagAttr = "data-seo-enhanced"

// dispatchIndexingSignal fires a fire-and-forget notification carrying the
// site's sitemap URL, when a notifier is available and a site origin is
// configured. Either being absent is a silent skip, not an error. The
// document root is flagged as enhanced in both cases.
// Returns whether a notification was dispatched.
func (s *Service) dispatchIndexingSignal(ctx context.Context, doc *goquery.Document) bool {
	doc.Find("html").First().SetAttr(enhancedFlagAttr, "true")

	if s.deps.Notifier == nil || s.opts.SiteURL == "" {
		return false
	}

	sitemapURL := strings.TrimRight(s.opts.SiteURL, "/") + s.opts.SitemapPath
	s.deps.Notifier.Notify(ctx, sitemapURL)

	return true
}

// tagPrioritySections marks each configured section id, when present, with
// a priority attribute and a live-region accessibility attribute. Sections
// not present are silently skipped. Returns the ids that were tagged.
func (s *Service) tagPrioritySections(doc *goquery.Document) []string {
	var tagged []string

	for i, id := range s.opts.PrioritySections {
		section := doc.Find("#" + id)
		if section.Length() == 0 {
			continue
		}

		section.SetAttr("data-priority", strconv.Itoa(i+1))
		section.SetAttr("aria-live", "polite")
		tagged = append(tagged, id)
	}

	return tagged
}

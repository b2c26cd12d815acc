// ABOUTME: Structural annotation pass setting ARIA roles and microdata types
// ABOUTME: Annotates the content region, navigation region and portfolio entries

package enhancer

import (
	"strings"

	coreerrors "portfolio-enhancer-api/core/errors"

	"github.com/PuerkitoBio/goquery"
)

const (
	schemaWebPageType      = "https://schema.org/WebPage"
	schemaNavigationType   = "https://schema.org/SiteNavigationElement"
	schemaCreativeWorkType = "https://schema.org/CreativeWork"
)

// annotateStructure sets accessibility roles and microdata types on the
// primary content and navigation containers, then annotates every portfolio
// entry with a content type and a label derived from its heading. Missing
// containers are skipped; an entry without a heading gets an empty label.
// Returns the number of portfolio entries annotated.
func (s *Service) annotateStructure(doc *goquery.Document) int {
	content := doc.Find(s.opts.ContentSelector).First()
	if content.Length() > 0 {
		content.SetAttr("role", "main")
		content.SetAttr("itemscope", "")
		content.SetAttr("itemtype", schemaWebPageType)
	} else {
		s.logMissing(s.opts.ContentSelector)
	}

	nav := doc.Find(s.opts.NavSelector).First()
	if nav.Length() > 0 {
		nav.SetAttr("role", "navigation")
		nav.SetAttr("itemscope", "")
		nav.SetAttr("itemtype", schemaNavigationType)
	} else {
		s.logMissing(s.opts.NavSelector)
	}

	annotated := 0
	doc.Find(s.opts.PortfolioSelector).Each(func(_ int, entry *goquery.Selection) {
		entry.SetAttr("itemscope", "")
		entry.SetAttr("itemtype", schemaCreativeWorkType)

		// First heading inside the entry; empty selection yields "".
		heading := strings.TrimSpace(entry.Find("h1,h2,h3,h4,h5,h6").First().Text())
		entry.SetAttr("aria-label", heading)

		annotated++
	})

	return annotated
}

// logMissing records a skipped container at debug level
func (s *Service) logMissing(selector string) {
	if s.deps.Logger == nil {
		return
	}
	err := &coreerrors.MissingElementError{Selector: selector}
	s.deps.Logger.Debug("Skipping structural annotation", map[string]interface{}{
		"error": err.Error(),
	})
}

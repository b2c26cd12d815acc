// ABOUTME: Structured-data emission service injecting JSON-LD blocks into the head
// ABOUTME: Person, BreadcrumbList and FAQPage records with authored fixed content

package schema

import (
	"encoding/json"
	"fmt"

	"portfolio-enhancer-api/core/domain"
	"portfolio-enhancer-api/core/interfaces"

	"github.com/PuerkitoBio/goquery"
)

// Service injects JSON-LD records into a page head. Each injection is an
// independent top-level call with no ordering dependency on the others or
// on the enhancement pass.
type Service struct {
	deps interfaces.Dependencies
}

// NewService creates a new structured-data service
func NewService(deps interfaces.Dependencies) *Service {
	return &Service{
		deps: deps,
	}
}

// InjectPerson inserts the site owner's Person record into the head.
func (s *Service) InjectPerson(doc *goquery.Document, person domain.Person) {
	s.injectRecord(doc, "Person", person)
}

// InjectBreadcrumbs inserts the navigation trail record into the head.
func (s *Service) InjectBreadcrumbs(doc *goquery.Document, breadcrumbs domain.BreadcrumbList) {
	s.injectRecord(doc, "BreadcrumbList", breadcrumbs)
}

// InjectFAQ inserts the authored FAQ record into the head.
func (s *Service) InjectFAQ(doc *goquery.Document, faq domain.FAQPage) {
	s.injectRecord(doc, "FAQPage", faq)
}

// injectRecord serializes record and appends it to the head as a
// machine-readable script block. Serialization failure is contained: the
// record is skipped and the rest of the pass is unaffected.
func (s *Service) injectRecord(doc *goquery.Document, kind string, record interface{}) {
	data, err := json.Marshal(record)
	if err != nil {
		if s.deps.Logger != nil {
			s.deps.Logger.Warn("Skipping structured data record", map[string]interface{}{
				"type":  kind,
				"error": err.Error(),
			})
		}
		return
	}

	block := fmt.Sprintf(`<script type="application/ld+json">%s</script>`, data)
	doc.Find("head").First().AppendHtml(block)
}

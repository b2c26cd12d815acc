// ABOUTME: Page enhancement service running the fixed sequence of DOM passes
// ABOUTME: Stateless, best-effort annotation of an externally-owned document

package enhancer

import (
	"context"
	"errors"
	"strings"

	"portfolio-enhancer-api/core/config"
	"portfolio-enhancer-api/core/density"
	"portfolio-enhancer-api/core/domain"
	"portfolio-enhancer-api/core/interfaces"

	"github.com/PuerkitoBio/goquery"
)

// Service runs the enhancement pass over a loaded page. The document is an
// externally-owned mutable resource; the service holds no state of its own
// across invocations.
type Service struct {
	deps interfaces.Dependencies
	opts config.Options
}

// NewService creates a new enhancement service
func NewService(deps interfaces.Dependencies, opts config.Options) *Service {
	return &Service{
		deps: deps,
		opts: opts,
	}
}

// Enhance mutates doc in place to add machine-readable hints without
// altering what a human visitor sees. The individual steps run synchronously
// in a fixed order and are each best-effort: a missing element, malformed
// href, or absent notifier degrades to a local skip and never aborts the
// remaining steps.
//
// Structured-data emission is intentionally not part of this sequence; see
// the schema package, whose injections are independent top-level calls.
func (s *Service) Enhance(ctx context.Context, doc *goquery.Document) (*domain.EnhancementReport, error) {
	if doc == nil {
		return nil, errors.New("document cannot be nil")
	}

	report := &domain.EnhancementReport{
		Title: strings.TrimSpace(doc.Find("title").First().Text()),
	}

	report.PortfolioEntries = s.annotateStructure(doc)

	// Captured before the content-injecting steps below; the density
	// check measures the authored page, not the pass's own additions.
	authoredText := doc.Find("body").Text()

	if s.opts.InjectHiddenContent {
		s.injectHiddenContent(doc, report.Title)
	}

	if s.opts.DeferImages {
		report.ImagesDeferred = s.deferImages(doc)
	}

	report.SitemapLinks = s.appendSitemapBlock(doc)

	report.Notified = s.dispatchIndexingSignal(ctx, doc)

	report.PrioritySections = s.tagPrioritySections(doc)

	report.KeywordCounts = s.keywordDensityCheck(authoredText)

	return report, nil
}

// keywordDensityCheck counts keyword occurrences in the page's authored text
// and emits the mapping to the diagnostic log. The result has no consumer;
// it is produced for the page author.
func (s *Service) keywordDensityCheck(text string) map[string]int {
	counts := density.Count(text, s.opts.Keywords)

	if s.deps.Logger != nil {
		fields := make(map[string]interface{}, len(counts))
		for keyword, count := range counts {
			fields[keyword] = count
		}
		s.deps.Logger.Debug("Keyword density report", fields)
	}

	return counts
}

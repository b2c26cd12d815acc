// ABOUTME: Hidden-content injection pass appending an off-screen promotional block
// ABOUTME: Visually hidden but DOM-present and readable to screen readers and bots

package enhancer

import (
	"fmt"
	"html"

	"github.com/PuerkitoBio/goquery"
)

// offScreenStyle keeps the block out of the visual layout while leaving it
// in the accessibility tree and the markup crawlers read.
const offScreenStyle = "position:absolute;left:-9999px;top:auto;width:1px;height:1px;overflow:hidden;"

// injectHiddenContent appends one off-screen block of promotional text,
// interpolated with the current page title, to the body.
//
// This step is NOT idempotent: running it twice appends a duplicate block.
// The pass assumes it runs exactly once per page load.
func (s *Service) injectHiddenContent(doc *goquery.Document, title string) {
	text := fmt.Sprintf(
		"%s: experienced SEO specialist offering on-page SEO, off-page SEO, "+
			"link building, guest posting and digital marketing services. "+
			"Contact today for a free SEO audit of your website.",
		title,
	)

	block := fmt.Sprintf(
		`<div class="seo-boost" style=%q>%s</div>`,
		offScreenStyle,
		html.EscapeString(text),
	)

	doc.Find("body").First().AppendHtml(block)
}

// ABOUTME: Dynamic sitemap block pass collecting unique anchor hrefs
// ABOUTME: Renders a hidden list of links with URL paths as display text

package enhancer

import (
	"fmt"
	"html"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// CollectLinks returns the unique href values of all anchors in doc,
// in order of first appearance.
func CollectLinks(doc *goquery.Document) []string {
	seen := make(map[string]struct{})
	var links []string

	doc.Find("a[href]").Each(func(_ int, a *goquery.Selection) {
		href := a.AttrOr("href", "")
		if href == "" {
			return
		}
		if _, dup := seen[href]; dup {
			return
		}
		seen[href] = struct{}{}
		links = append(links, href)
	})

	return links
}

// appendSitemapBlock builds a hidden list of the page's unique links and
// appends it to the body. The block is created even when the page has no
// anchors. Returns the number of unique links rendered.
func (s *Service) appendSitemapBlock(doc *goquery.Document) int {
	links := CollectLinks(doc)

	var b strings.Builder
	b.WriteString(`<ul class="dynamic-sitemap" style="display:none;">`)
	for _, href := range links {
		b.WriteString(fmt.Sprintf(
			`<li><a href="%s">%s</a></li>`,
			html.EscapeString(href),
			html.EscapeString(linkDisplayText(href)),
		))
	}
	b.WriteString(`</ul>`)

	doc.Find("body").First().AppendHtml(b.String())

	return len(links)
}

// linkDisplayText returns the path component of href for display.
// A malformed or pathless href falls back to the raw string rather than
// aborting the containing loop.
func linkDisplayText(href string) string {
	u, err := url.Parse(href)
	if err != nil || u.Path == "" {
		return href
	}
	return u.Path
}

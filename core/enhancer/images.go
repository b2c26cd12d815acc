// ABOUTME: Media loading optimization pass rewriting images for deferred loading
// ABOUTME: Moves src to data-src and inserts no-script fallbacks before each image

package enhancer

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// lazyClass marks rewritten images for an external lazy-loading script.
const lazyClass = "lazyload"

// deferImages rewrites every image that lacks a native lazy-loading marker:
// the source URL moves to data-src, the visible src is cleared, the element
// is tagged with the deferred-loading class, and a no-script fallback with
// the original source is inserted immediately before it. Images that already
// carry a loading attribute, or have no source, are left alone.
// Returns the number of images rewritten.
func (s *Service) deferImages(doc *goquery.Document) int {
	deferred := 0

	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		if _, native := img.Attr("loading"); native {
			return
		}

		src, ok := img.Attr("src")
		if !ok || src == "" {
			return
		}

		alt := strings.TrimSpace(img.AttrOr("alt", ""))
		if alt == "" {
			alt = s.opts.DefaultImageAlt
		}

		img.SetAttr("data-src", src)
		img.RemoveAttr("src")
		img.AddClass(lazyClass)
		img.BeforeNodes(noscriptFallback(src, alt))

		deferred++
	})

	return deferred
}

// noscriptFallback builds <noscript><img src=... alt=...></noscript> so the
// page keeps a visual fallback in environments without script execution.
func noscriptFallback(src, alt string) *html.Node {
	img := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Img,
		Data:     "img",
		Attr: []html.Attribute{
			{Key: "src", Val: src},
			{Key: "alt", Val: alt},
		},
	}

	noscript := &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Noscript,
		Data:     "noscript",
	}
	noscript.AppendChild(img)

	return noscript
}

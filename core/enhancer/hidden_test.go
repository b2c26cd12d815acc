package enhancer

import (
	"context"
	"strings"
	"testing"

	"portfolio-enhancer-api/core/config"
	"portfolio-enhancer-api/core/interfaces"
)

func TestInjectHiddenContent_AppendsBlockWithTitle(t *testing.T) {
	doc := parseDoc(t, `<html><head><title>Mansoor Ahmad</title></head><body></body></html>`)
	service := NewService(interfaces.Dependencies{}, config.DefaultOptions())

	service.injectHiddenContent(doc, "Mansoor Ahmad")

	block := doc.Find("body > div.seo-boost")
	if block.Length() != 1 {
		t.Fatalf("hidden blocks = %d, want 1", block.Length())
	}
	if !strings.Contains(block.Text(), "Mansoor Ahmad") {
		t.Error("hidden block does not contain the page title")
	}
	if style, _ := block.Attr("style"); !strings.Contains(style, "-9999px") {
		t.Errorf("hidden block style = %q, want off-screen positioning", style)
	}
}

// Running the injection twice appends a duplicate block. That is the
// documented behavior, not a bug: the pass assumes it runs exactly once
// per page load and makes no idempotency guarantee.
func TestInjectHiddenContent_TwiceAppendsDuplicate(t *testing.T) {
	doc := parseDoc(t, `<html><head><title>Home</title></head><body></body></html>`)
	service := NewService(interfaces.Dependencies{}, config.DefaultOptions())

	service.injectHiddenContent(doc, "Home")
	service.injectHiddenContent(doc, "Home")

	if n := doc.Find("div.seo-boost").Length(); n != 2 {
		t.Errorf("hidden blocks after two runs = %d, want 2", n)
	}
}

func TestEnhance_HiddenContentCanBeDisabled(t *testing.T) {
	doc := parseDoc(t, `<html><head><title>Home</title></head><body></body></html>`)
	opts := config.NewOptions(config.WithoutHiddenContent())
	service := NewService(interfaces.Dependencies{}, opts)

	_, err := service.Enhance(context.Background(), doc)
	if err != nil {
		t.Fatalf("Enhance returned error: %v", err)
	}

	if n := doc.Find("div.seo-boost").Length(); n != 0 {
		t.Errorf("hidden blocks = %d, want 0 when disabled", n)
	}
}

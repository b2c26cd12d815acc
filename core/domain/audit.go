// ABOUTME: Domain model for remote page audit results
// ABOUTME: Captures metadata presence checks and keyword density for a fetched page

package domain

// AuditResult holds the outcome of auditing a single live page.
type AuditResult struct {
	// URL is the audited page URL
	URL string `json:"url"`

	// Title is the document title, empty if absent
	Title string `json:"title"`

	// Description is the meta description content, empty if absent
	Description string `json:"description"`

	// OGImage is the Open Graph image URL, empty if absent
	OGImage string `json:"og_image,omitempty"`

	// ImageCount is the total number of image elements on the page
	ImageCount int `json:"image_count"`

	// ImagesMissingAlt is the number of images without alt text
	ImagesMissingAlt int `json:"images_missing_alt"`

	// WordCount is the approximate word count of the readable text
	WordCount int `json:"word_count"`

	// KeywordCounts maps each tracked keyword to its occurrence count
	KeywordCounts map[string]int `json:"keyword_counts"`
}

// HasDescription reports whether the page carries a meta description.
func (r *AuditResult) HasDescription() bool {
	return r.Description != ""
}

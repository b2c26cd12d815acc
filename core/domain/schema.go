// ABOUTME: JSON-LD structured data records injected into the page head
// ABOUTME: Fixed-shape Person, BreadcrumbList and FAQPage models per schema.org

package domain

// SchemaContext is the JSON-LD context shared by all emitted records.
const SchemaContext = "https://schema.org"

// Person describes the site owner for external indexing systems.
type Person struct {
	Context    string   `json:"@context"`
	Type       string   `json:"@type"`
	Name       string   `json:"name"`
	JobTitle   string   `json:"jobTitle"`
	URL        string   `json:"url,omitempty"`
	Email      string   `json:"email,omitempty"`
	SameAs     []string `json:"sameAs,omitempty"`
	KnowsAbout []string `json:"knowsAbout,omitempty"`
}

// BreadcrumbList describes the page's navigation trail.
type BreadcrumbList struct {
	Context         string     `json:"@context"`
	Type            string     `json:"@type"`
	ItemListElement []ListItem `json:"itemListElement"`
}

// ListItem is a single breadcrumb entry.
type ListItem struct {
	Type     string `json:"@type"`
	Position int    `json:"position"`
	Name     string `json:"name"`
	Item     string `json:"item,omitempty"`
}

// FAQPage describes an authored question and answer list.
type FAQPage struct {
	Context    string     `json:"@context"`
	Type       string     `json:"@type"`
	MainEntity []Question `json:"mainEntity"`
}

// Question is a single FAQ entry.
type Question struct {
	Type           string `json:"@type"`
	Name           string `json:"name"`
	AcceptedAnswer Answer `json:"acceptedAnswer"`
}

// Answer is the accepted answer of a Question.
type Answer struct {
	Type string `json:"@type"`
	Text string `json:"text"`
}

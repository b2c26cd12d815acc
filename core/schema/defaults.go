// ABOUTME: Fixed structured-data content for the portfolio site
// ABOUTME: Default Person, breadcrumb trail and FAQ records

package schema

import "portfolio-enhancer-api/core/domain"

// DefaultPerson returns the site owner's profile record. siteURL may be
// empty; the url field is simply omitted from the output.
func DefaultPerson(siteURL string) domain.Person {
	return domain.Person{
		Context:  domain.SchemaContext,
		Type:     "Person",
		Name:     "Mansoor Ahmad",
		JobTitle: "SEO Specialist",
		URL:      siteURL,
		SameAs: []string{
			"https://www.linkedin.com/in/mansoor-ahmad-seo",
			"https://twitter.com/mansoorahmadseo",
		},
		KnowsAbout: []string{
			"Search Engine Optimization",
			"Link Building",
			"Content Marketing",
			"Digital Marketing",
		},
	}
}

// DefaultBreadcrumbs returns the site's navigation trail record.
func DefaultBreadcrumbs(siteURL string) domain.BreadcrumbList {
	pages := []struct {
		name string
		path string
	}{
		{"Home", "/"},
		{"About", "/#about"},
		{"Portfolio", "/#portfolio"},
		{"Services", "/#services"},
		{"Contact", "/#contact"},
	}

	items := make([]domain.ListItem, 0, len(pages))
	for i, p := range pages {
		item := domain.ListItem{
			Type:     "ListItem",
			Position: i + 1,
			Name:     p.name,
		}
		if siteURL != "" {
			item.Item = siteURL + p.path
		}
		items = append(items, item)
	}

	return domain.BreadcrumbList{
		Context:         domain.SchemaContext,
		Type:            "BreadcrumbList",
		ItemListElement: items,
	}
}

// DefaultFAQ returns the authored FAQ record.
func DefaultFAQ() domain.FAQPage {
	return domain.FAQPage{
		Context: domain.SchemaContext,
		Type:    "FAQPage",
		MainEntity: []domain.Question{
			{
				Type: "Question",
				Name: "What does an SEO specialist do?",
				AcceptedAnswer: domain.Answer{
					Type: "Answer",
					Text: "An SEO specialist improves a website's visibility in search engines through on-page optimization, link building, content strategy and technical fixes.",
				},
			},
			{
				Type: "Question",
				Name: "How long does SEO take to show results?",
				AcceptedAnswer: domain.Answer{
					Type: "Answer",
					Text: "Most websites see measurable improvement within three to six months, depending on competition and the current state of the site.",
				},
			},
			{
				Type: "Question",
				Name: "Do you offer link building and guest posting services?",
				AcceptedAnswer: domain.Answer{
					Type: "Answer",
					Text: "Yes. Outreach-based link building and guest posting on relevant, high-authority websites are core services.",
				},
			},
		},
	}
}

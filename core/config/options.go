// ABOUTME: Enhancement configuration for service-level control of the DOM pass
// ABOUTME: Provides selectors, fixed keyword list and site settings with defaults

package config

// Options controls the behavior of a page enhancement pass.
type Options struct {
	// ContentSelector matches the single primary content container
	ContentSelector string

	// NavSelector matches the single primary navigation container
	NavSelector string

	// PortfolioSelector matches elements flagged as portfolio entries
	PortfolioSelector string

	// PrioritySections is the fixed list of section ids to tag, in priority order
	PrioritySections []string

	// Keywords is the fixed keyword list for the density self-check
	Keywords []string

	// SiteURL is the absolute site origin used to derive the sitemap
	// location for the indexing signal. Empty disables the signal.
	SiteURL string

	// SitemapPath is the path of the sitemap at the site origin
	SitemapPath string

	// DefaultImageAlt is the alt text used for no-script image fallbacks
	// when the original image carries none
	DefaultImageAlt string

	// InjectHiddenContent controls the off-screen promotional block
	InjectHiddenContent bool

	// DeferImages controls the lazy-loading rewrite
	DeferImages bool
}

// DefaultOptions returns the default enhancement configuration.
func DefaultOptions() Options {
	return Options{
		ContentSelector:   "main",
		NavSelector:       "nav",
		PortfolioSelector: ".portfolio-item",
		PrioritySections:  []string{"about", "portfolio", "services", "testimonials"},
		Keywords: []string{
			"seo specialist",
			"seo expert",
			"digital marketing",
			"link building",
			"on-page seo",
			"off-page seo",
			"guest posting",
		},
		SitemapPath:         "/sitemap.xml",
		DefaultImageAlt:     "Portfolio image",
		InjectHiddenContent: true,
		DeferImages:         true,
	}
}

// Option is a functional option for configuring an enhancement pass
type Option func(*Options)

// WithSiteURL sets the absolute site origin
func WithSiteURL(siteURL string) Option {
	return func(o *Options) {
		o.SiteURL = siteURL
	}
}

// WithKeywords replaces the tracked keyword list
func WithKeywords(keywords []string) Option {
	return func(o *Options) {
		o.Keywords = keywords
	}
}

// WithPortfolioSelector overrides the portfolio entry selector
func WithPortfolioSelector(selector string) Option {
	return func(o *Options) {
		o.PortfolioSelector = selector
	}
}

// WithoutHiddenContent disables the off-screen promotional block
func WithoutHiddenContent() Option {
	return func(o *Options) {
		o.InjectHiddenContent = false
	}
}

// WithoutImageDeferral disables the lazy-loading rewrite
func WithoutImageDeferral() Option {
	return func(o *Options) {
		o.DeferImages = false
	}
}

// NewOptions creates an enhancement configuration with the given options applied
func NewOptions(opts ...Option) Options {
	options := DefaultOptions()

	for _, opt := range opts {
		opt(&options)
	}

	return options
}

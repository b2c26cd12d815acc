package interfaces

import "context"

// Notifier defines the interface for best-effort crawler notifications.
// Implementations send a fire-and-forget signal to an external indexing
// service pointing at a site's sitemap. The call must not block the caller
// and must not surface transport failures; a notification that is lost is
// simply lost.
//
// The enhancer treats the notifier as an optional collaborator: a nil
// Notifier in the Dependencies container means the runtime offers no
// background-send capability and the indexing signal is silently skipped.
type Notifier interface {
	// Notify dispatches a non-blocking notification carrying the absolute
	// sitemap URL. It returns immediately; delivery is not acknowledged.
	Notify(ctx context.Context, sitemapURL string)
}

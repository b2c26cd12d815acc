// ABOUTME: Fire-and-forget search-engine ping notifier
// ABOUTME: Dispatches sitemap notifications in the background, never surfacing failures

package ping

import (
	"context"
	"net/url"
	"time"

	"portfolio-enhancer-api/core/interfaces"
)

// GooglePingEndpoint is the well-known sitemap ping endpoint.
const GooglePingEndpoint = "https://www.google.com/ping"

const notifyTimeout = 10 * time.Second

// Notifier implements the Notifier interface with a background HTTP GET.
type Notifier struct {
	client   interfaces.HTTPClient
	logger   interfaces.Logger
	endpoint string
}

// NewNotifier creates a notifier targeting the Google ping endpoint
func NewNotifier(client interfaces.HTTPClient, logger interfaces.Logger) *Notifier {
	return &Notifier{
		client:   client,
		logger:   logger,
		endpoint: GooglePingEndpoint,
	}
}

// NewNotifierWithEndpoint creates a notifier targeting a custom endpoint
func NewNotifierWithEndpoint(client interfaces.HTTPClient, logger interfaces.Logger, endpoint string) *Notifier {
	return &Notifier{
		client:   client,
		logger:   logger,
		endpoint: endpoint,
	}
}

// Notify sends the ping in a background goroutine and returns immediately.
// Delivery is not acknowledged and failures are logged at debug level only.
// The request runs on its own timeout rather than the caller's context so
// that an already-finished caller does not cancel the send.
func (n *Notifier) Notify(_ context.Context, sitemapURL string) {
	if n.client == nil {
		return
	}

	target := n.endpoint + "?sitemap=" + url.QueryEscape(sitemapURL)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
		defer cancel()

		resp, err := n.client.Get(ctx, target)
		if err != nil {
			if n.logger != nil {
				n.logger.Debug("Sitemap ping failed", map[string]interface{}{
					"target": target,
					"error":  err.Error(),
				})
			}
			return
		}
		resp.Body().Close()

		if n.logger != nil {
			n.logger.Debug("Sitemap ping dispatched", map[string]interface{}{
				"target": target,
				"status": resp.StatusCode(),
			})
		}
	}()
}
